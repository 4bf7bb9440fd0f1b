package schema

import "fmt"

// Error reports a malformed descriptor. It is raised at construction time,
// before any argv is parsed.
type Error struct {
	// Subject is the name of the offending option or positional, or "" when
	// the collection itself is malformed.
	Subject string
	Detail  string
}

func (e *Error) Error() string {
	if e.Subject == "" {
		return fmt.Sprintf("schema: %s", e.Detail)
	}
	return fmt.Sprintf("schema: %s: %s", e.Subject, e.Detail)
}

func errf(subject, format string, args ...any) *Error {
	return &Error{Subject: subject, Detail: fmt.Sprintf(format, args...)}
}
