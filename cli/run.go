package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vk/cmdtree/command"
	"github.com/vk/cmdtree/help"
	"github.com/vk/cmdtree/internal/version"
)

// ExitError is a failure that should terminate the process with a specific
// exit code. The embedding's main function is expected to print Message and
// exit with Code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Run parses argv against the tree and acts on the outcome: help and
// version render to outW and return nil, a parse failure renders contextual
// usage to outW and returns an *ExitError with code 2, and a successful
// resolution invokes the handler, whose error is returned to the caller
// unmodified.
func Run(ctx context.Context, root *command.Command, args []string, outW io.Writer) error {
	out := Parse(ctx, root, args)

	switch out.Kind {
	case HelpRequested:
		help.Render(outW, out.Help.Command, out.Help.Path, out.Help.Options)
		return nil

	case VersionRequested:
		fmt.Fprintln(outW, version.Detect(root.Version))
		return nil

	case Failure:
		node, path, opts := root, []string{root.Name}, root.Options
		var pathErr *command.PathError
		if errors.As(out.Err, &pathErr) {
			node, path, opts = pathErr.Command, pathErr.Path, pathErr.Options
		}
		help.Render(outW, node, path, opts)
		return &ExitError{Code: 2, Message: out.Err.Error()}

	default:
		if run := out.Result.Command.Run; run != nil {
			return run(ctx, out.Result)
		}
		return nil
	}
}
