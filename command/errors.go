package command

import (
	"fmt"

	"github.com/vk/cmdtree/schema"
)

// UnknownCommandError is returned when a leading token matches no child of
// a command group and the group declares no default child.
type UnknownCommandError struct {
	// Token is the unmatched argv token.
	Token string

	// Command is the name of the group the token was matched against.
	Command string

	// Suggestion is the closest child name, or "" when nothing is close.
	Suggestion string
}

func (e *UnknownCommandError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown command %q for %q (did you mean %q?)", e.Token, e.Command, e.Suggestion)
	}
	return fmt.Sprintf("unknown command %q for %q", e.Token, e.Command)
}

// MissingCommandError is returned when a command group is reached with no
// token left to select a child and no default child to fall through to.
type MissingCommandError struct {
	Command string
}

func (e *MissingCommandError) Error() string {
	return fmt.Sprintf("%q requires a command", e.Command)
}

// HelpRequest is the control signal produced when a reserved help token is
// seen. It carries the node the resolver had reached, so the caller can
// render contextual help. It is not a failure.
type HelpRequest struct {
	Command *Command
	Path    []string

	// Options is the merged option schema at the point of the request,
	// inherited globals included.
	Options *schema.Options
}

func (e *HelpRequest) Error() string { return "help requested" }

// VersionRequest is the control signal produced when the reserved --version
// token is seen. It is not a failure.
type VersionRequest struct{}

func (e *VersionRequest) Error() string { return "version requested" }

// PathError wraps a parse failure with the resolution context it happened
// in, so the caller can render usage for the right node. Its message is the
// wrapped error's message, unchanged.
type PathError struct {
	Command *Command
	Path    []string
	Options *schema.Options
	Err     error
}

func (e *PathError) Error() string { return e.Err.Error() }

func (e *PathError) Unwrap() error { return e.Err }
