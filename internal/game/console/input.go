// Package console connects a round controller to line-oriented text streams.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// MaxLineBytes is how much of one input line is kept. Longer lines are cut
// here and still delivered, so they are rejected like any other bad token.
const MaxLineBytes = 64 * 1024

type line struct {
	text string
	err  error
}

// LineInput yields one token per input line.
//
// Lines are read by a single background goroutine so a pending read can be
// abandoned when the caller's context ends. The goroutine stops at end of
// input or on a read error.
type LineInput struct {
	r     io.Reader
	once  sync.Once
	lines chan line
}

// NewLineInput returns a LineInput reading from r.
func NewLineInput(r io.Reader) *LineInput {
	return &LineInput{r: r, lines: make(chan line)}
}

// Next returns the next line without its terminator. It returns io.EOF once
// input is exhausted, or ctx.Err() if ctx ends first.
func (in *LineInput) Next(ctx context.Context) (string, error) {
	in.once.Do(func() { go in.read() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-in.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

func (in *LineInput) read() {
	defer close(in.lines)
	if in.r == nil {
		return
	}
	br := bufio.NewReader(in.r)
	for {
		text, err := readLine(br, MaxLineBytes)
		if err == nil {
			in.lines <- line{text: text}
			continue
		}
		if errors.Is(err, io.EOF) {
			if text != "" {
				in.lines <- line{text: text}
			}
			return
		}
		in.lines <- line{err: fmt.Errorf("read input: %w", err)}
		return
	}
}

// readLine reads through the next newline, keeping at most limit bytes and
// dropping the terminator.
func readLine(br *bufio.Reader, limit int) (string, error) {
	var buf []byte
	for {
		chunk, err := br.ReadSlice('\n')
		if room := limit - len(buf); room > 0 {
			buf = append(buf, chunk[:min(len(chunk), room)]...)
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		text := strings.TrimSuffix(string(buf), "\n")
		return strings.TrimSuffix(text, "\r"), err
	}
}
