package command

import (
	"context"
	"errors"
	"strings"

	"github.com/vk/cmdtree/coerce"
	"github.com/vk/cmdtree/internal/ctxlog"
	"github.com/vk/cmdtree/internal/suggest"
	"github.com/vk/cmdtree/scanner"
	"github.com/vk/cmdtree/schema"
)

// Resolve walks the tree from root, selects the target command, and parses
// the remaining tokens against its merged schemas into a fresh Result. It
// does not invoke the handler; Execute does.
//
// Control signals surface as *HelpRequest and *VersionRequest error values.
// Parse failures are wrapped in a *PathError carrying the node the resolver
// had reached, with the underlying typed error unchanged underneath.
func Resolve(ctx context.Context, root *Command, args []string) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	node := root
	path := []string{root.Name}
	merged := root.Options
	i := 0

	for {
		if i < len(args) {
			// The reserved tokens are checked at every depth, before any
			// structural matching.
			switch args[i] {
			case "--help", "-h":
				return nil, &HelpRequest{Command: node, Path: path, Options: merged}
			case "--version":
				return nil, &VersionRequest{}
			}
			if child, ok := node.Children[args[i]]; ok {
				node = child
				path = append(path, child.Name)
				merged = schema.MergeOptions(merged, child.Options)
				i++
				logger.Debug("Descending into child command.", "command", child.Name)
				continue
			}
		}
		if node.Default != "" {
			// Fall through to the default child without consuming a token.
			child := node.Children[node.Default]
			node = child
			path = append(path, child.Name)
			merged = schema.MergeOptions(merged, child.Options)
			logger.Debug("Descending into default command.", "command", child.Name)
			continue
		}
		break
	}

	rest := args[i:]
	fail := func(err error) error {
		return &PathError{Command: node, Path: path, Options: merged, Err: err}
	}

	if node.group() {
		if err := reservedIn(rest); err != nil {
			return nil, controlSignal(err, node, path, merged)
		}
		if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
			return nil, fail(&UnknownCommandError{
				Token:      rest[0],
				Command:    node.Name,
				Suggestion: suggest.Nearest(rest[0], node.childNames()),
			})
		}
		return nil, fail(&MissingCommandError{Command: node.Name})
	}

	raw, posTokens, err := scanner.Scan(ctx, rest, merged)
	if err != nil {
		if sig := controlSignal(err, node, path, merged); sig != err {
			return nil, sig
		}
		return nil, fail(err)
	}

	values, err := coerce.Values(ctx, raw, merged)
	if err != nil {
		return nil, fail(err)
	}
	positionals, err := coerce.Positionals(ctx, posTokens, node.Positionals)
	if err != nil {
		return nil, fail(err)
	}

	logger.Debug("Command resolved.", "path", strings.Join(path, " "))
	return &Result{
		Command:     node,
		Path:        path,
		Positionals: positionals,
		Values:      values,
	}, nil
}

// Execute resolves argv and, when the resolved node declares a handler,
// invokes it with the assembled Result, awaiting its completion. A handler
// failure propagates unmodified; it is never swallowed here.
func Execute(ctx context.Context, root *Command, args []string) (*Result, error) {
	res, err := Resolve(ctx, root, args)
	if err != nil {
		return nil, err
	}
	if res.Command.Run != nil {
		if err := res.Command.Run(ctx, res); err != nil {
			return res, err
		}
	}
	return res, nil
}

// reservedIn scans leftover tokens for the built-in help/version tokens,
// stopping at the positional terminator.
func reservedIn(tokens []string) error {
	for _, tok := range tokens {
		if tok == "--" {
			return nil
		}
		switch tok {
		case "--help", "-h":
			return scanner.ErrHelp
		case "--version":
			return scanner.ErrVersion
		}
	}
	return nil
}

// controlSignal upgrades the scanner's control sentinels to their
// context-carrying forms. Other errors pass through unchanged.
func controlSignal(err error, node *Command, path []string, merged *schema.Options) error {
	switch {
	case errors.Is(err, scanner.ErrHelp):
		return &HelpRequest{Command: node, Path: path, Options: merged}
	case errors.Is(err, scanner.ErrVersion):
		return &VersionRequest{}
	}
	return err
}
