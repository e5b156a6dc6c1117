// Package errors provides structured, coded errors for the game and its tools.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Startup errors
	CodeInvalidMoveSet Code = "INVALID_MOVE_SET"
	CodeInvalidConfig  Code = "INVALID_CONFIG"

	// Round errors
	CodeInvalidInputToken  Code = "INVALID_INPUT_TOKEN"
	CodeInputIdleTimeout   Code = "INPUT_IDLE_TIMEOUT"
	CodeEntropyUnavailable Code = "ENTROPY_UNAVAILABLE"

	// Commitment errors
	CodeInvalidKey         Code = "INVALID_KEY"
	CodeCommitmentMismatch Code = "COMMITMENT_MISMATCH"
)

// Exit codes returned by command entry points.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitCode maps domain codes to process exit codes.
func (c Code) ExitCode() int {
	switch c {
	// Usage - the process was started with arguments it cannot play with
	case CodeInvalidMoveSet,
		CodeInvalidConfig,
		CodeInvalidKey:
		return ExitUsage

	default:
		return ExitFailure
	}
}

// Recoverable reports whether an error with this code is handled inside a
// round without ending the game.
func (c Code) Recoverable() bool {
	return c == CodeInvalidInputToken
}
