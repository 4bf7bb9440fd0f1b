package coerce

import (
	"fmt"
	"strings"
)

// InvalidNumberError is returned when a token declared as a number does not
// parse as one.
type InvalidNumberError struct {
	// Subject is the option or positional name the token was bound to.
	Subject string
	Value   string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number %q for %s", e.Value, e.Subject)
}

// InvalidEnumError is returned when an enum option's value is not among its
// declared choices. The message enumerates every choice.
type InvalidEnumError struct {
	Option  string
	Value   string
	Choices []string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid value %q for --%s: expected one of %s",
		e.Value, e.Option, strings.Join(e.Choices, ", "))
}

// MissingPositionalError is returned when a required positional slot gets no
// token and has no default.
type MissingPositionalError struct {
	Index int
	Name  string
}

func (e *MissingPositionalError) Error() string {
	return fmt.Sprintf("missing required argument %q at position %d", e.Name, e.Index)
}
