package cli

import (
	"context"
	"errors"

	"github.com/vk/cmdtree/command"
	"github.com/vk/cmdtree/internal/ctxlog"
)

// Kind tags the possible outcomes of one parse call.
type Kind int

const (
	// Success means a command was resolved and its typed result assembled.
	Success Kind = iota

	// HelpRequested means a reserved help token short-circuited parsing.
	// It is a clean outcome, not a failure.
	HelpRequested

	// VersionRequested means the reserved --version token short-circuited
	// parsing. It is a clean outcome, not a failure.
	VersionRequested

	// Failure means parsing aborted with an error identifying the
	// offending option, positional or command.
	Failure
)

// Outcome is the explicit, tagged result of Parse. Exactly one of Result,
// Help and Err is populated, matching Kind; VersionRequested carries
// nothing.
type Outcome struct {
	Kind   Kind
	Result *command.Result
	Help   *command.HelpRequest
	Err    error
}

// Parse resolves argv against the tree and classifies what happened. It
// does not invoke the resolved handler, render anything, or terminate the
// process, which makes it the right entry point for embeddings that need a
// distinguishable failure outcome instead of an exit code.
func Parse(ctx context.Context, root *command.Command, args []string) Outcome {
	logger := ctxlog.FromContext(ctx)

	if err := root.Validate(); err != nil {
		return Outcome{Kind: Failure, Err: err}
	}

	res, err := command.Resolve(ctx, root, args)
	if err == nil {
		return Outcome{Kind: Success, Result: res}
	}

	var help *command.HelpRequest
	if errors.As(err, &help) {
		logger.Debug("Help requested.", "command", help.Command.Name)
		return Outcome{Kind: HelpRequested, Help: help}
	}
	var ver *command.VersionRequest
	if errors.As(err, &ver) {
		logger.Debug("Version requested.")
		return Outcome{Kind: VersionRequested}
	}

	return Outcome{Kind: Failure, Err: err}
}
