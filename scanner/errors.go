package scanner

import (
	"errors"
	"fmt"
)

// Control sentinels for the reserved built-in tokens. They are not failures;
// the top-level caller intercepts them and renders help or version output.
var (
	// ErrHelp is returned when --help or -h is encountered anywhere in the
	// token stream.
	ErrHelp = errors.New("help requested")

	// ErrVersion is returned when --version is encountered anywhere in the
	// token stream.
	ErrVersion = errors.New("version requested")
)

// UnknownOptionError is returned for a leading-dash token that matches no
// declared option name or alias.
type UnknownOptionError struct {
	// Token is the offending token as it appeared in argv, dashes included.
	Token string

	// Suggestion is the closest declared name, or "" when nothing is close.
	Suggestion string
}

func (e *UnknownOptionError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown option %q (did you mean %q?)", e.Token, "--"+e.Suggestion)
	}
	return fmt.Sprintf("unknown option %q", e.Token)
}

// MissingValueError is returned when an option that takes a value appears as
// the final token, or a bare flag is given an inline value.
type MissingValueError struct {
	Option string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("option --%s requires a value", e.Option)
}
