// Package commit implements the commit-reveal scheme that binds the computer
// to its move before the player answers.
//
// A round publishes Commit(move, key) first and reveals key only after the
// player's move is locked in. Anyone holding the revealed key and move can
// recompute the tag and compare it with the published one.
package commit

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/fairrps/internal/platform/errors"
)

// MinKeySize is the smallest accepted key length in bytes (256 bits).
const MinKeySize = 32

// TagSize is the length of a decoded tag in bytes.
const TagSize = sha256.Size

// Key is the secret that keys a commitment tag.
type Key []byte

// String returns the hex encoding shown to the player on reveal.
func (k Key) String() string {
	return hex.EncodeToString(k)
}

// ParseKey decodes a revealed hex key.
func ParseKey(s string) (Key, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidKey, "key must be hex encoded", err)
	}
	if len(raw) == 0 {
		return nil, apperrors.New(apperrors.CodeInvalidKey, "key is required")
	}
	return Key(raw), nil
}

// Service generates keys and computes commitment tags.
type Service struct {
	// Reader supplies key bytes. Defaults to crypto/rand.
	Reader io.Reader
	// KeySize is the key length in bytes. Defaults to MinKeySize.
	KeySize int
}

// NewService returns a Service that reads keySize bytes from crypto/rand.
func NewService(keySize int) (*Service, error) {
	if keySize == 0 {
		keySize = MinKeySize
	}
	if keySize < MinKeySize {
		return nil, apperrors.WithMetadata(apperrors.CodeInvalidConfig,
			fmt.Sprintf("key size must be at least %d bytes", MinKeySize),
			map[string]string{"KeySize": strconv.Itoa(keySize)})
	}
	return &Service{Reader: rand.Reader, KeySize: keySize}, nil
}

// GenerateKey returns a fresh random key.
func (s *Service) GenerateKey() (Key, error) {
	size := s.KeySize
	if size < MinKeySize {
		size = MinKeySize
	}
	reader := s.Reader
	if reader == nil {
		reader = rand.Reader
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(reader, buf); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeEntropyUnavailable, "generate key: read random bytes", err)
	}
	return Key(buf), nil
}

// Commit returns the hex HMAC-SHA256 of move's UTF-8 bytes under key.
func (s *Service) Commit(move string, key Key) string {
	return Commit(move, key)
}

// Commit returns the hex HMAC-SHA256 of move's UTF-8 bytes under key.
func Commit(move string, key Key) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(move))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether tag is the commitment of move under key.
// Hex case is ignored; malformed tags never verify.
func Verify(move string, key Key, tag string) bool {
	published, err := hex.DecodeString(strings.TrimSpace(tag))
	if err != nil || len(published) != TagSize {
		return false
	}
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(move))
	return subtle.ConstantTimeCompare(mac.Sum(nil), published) == 1
}
