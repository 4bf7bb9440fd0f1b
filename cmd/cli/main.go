package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/vk/cmdtree/cli"
	"github.com/vk/cmdtree/command"
	"github.com/vk/cmdtree/internal/ctxlog"
	"github.com/vk/cmdtree/manifest"
	"github.com/vk/cmdtree/registry"
	"github.com/vk/cmdtree/schema"
)

// main is the entrypoint for the cmdtree host binary.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the host logic for easier testing and error handling.
// The host's own flags are declared with the same schema machinery it
// exists to demonstrate: it loads a manifest-defined command tree and
// resolves the trailing argv tokens against it.
func run(outW io.Writer, args []string) error {
	root := &command.Command{
		Name:        "cmdtree",
		Description: "Resolve argv against a command tree declared in HCL manifests and print the typed result.",
		Options: schema.MustOptions(
			&schema.Option{
				Name:        "manifest",
				Kind:        schema.OptionString,
				Short:       "m",
				Default:     cty.StringVal("cli.hcl"),
				Description: "Path to a manifest file or directory of manifests.",
			},
			&schema.Option{
				Name:        "log-level",
				Kind:        schema.OptionEnum,
				Choices:     []string{"debug", "info", "warn", "error"},
				Default:     cty.StringVal("info"),
				Description: "Logging level.",
			},
			&schema.Option{
				Name:        "log-format",
				Kind:        schema.OptionEnum,
				Choices:     []string{"text", "json"},
				Default:     cty.StringVal("text"),
				Description: "Log output format.",
			},
		),
		Positionals: schema.MustPositionals(
			&schema.Positional{
				Name:        "argv",
				Kind:        schema.PositionalVariadic,
				Description: "Tokens to resolve against the manifest tree. Place them after a -- terminator when they contain flags.",
			},
		),
	}
	root.Run = func(ctx context.Context, res *command.Result) error {
		return inspect(ctx, res, outW)
	}

	return cli.Run(context.Background(), root, args, outW)
}

// inspect loads the manifest tree and resolves the captured argv against
// it, acting on the tagged outcome instead of terminating, which is the
// embedding contract in miniature.
func inspect(ctx context.Context, hostRes *command.Result, outW io.Writer) error {
	logger := cli.NewLogger(hostRes.String("log-level"), hostRes.String("log-format"), os.Stderr)
	ctx = ctxlog.WithLogger(ctx, logger)

	reg := registry.New()
	reg.Register("print", func(ctx context.Context, res *command.Result) error {
		return printResult(outW, res)
	})

	tree, err := manifest.Load(ctx, hostRes.String("manifest"), reg)
	if err != nil {
		return &cli.ExitError{Code: 1, Message: err.Error()}
	}

	// Leaves without a manifest-bound handler fall back to printing their
	// resolved result, so every path through the tree shows something.
	attachPrinter(tree, outW)

	return cli.Run(ctx, tree, argvTokens(hostRes), outW)
}

// argvTokens unpacks the host's trailing variadic positional back into a
// plain token slice.
func argvTokens(res *command.Result) []string {
	val, ok := res.Positional(0)
	if !ok || !val.CanIterateElements() {
		return nil
	}
	tokens := make([]string, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		tokens = append(tokens, elem.AsString())
	}
	return tokens
}

// attachPrinter gives every handler-less leaf a printing handler. Groups
// are left alone: a group must stay handler-less to keep routing to its
// children.
func attachPrinter(cmd *command.Command, outW io.Writer) {
	if cmd.Run == nil && len(cmd.Children) == 0 {
		cmd.Run = func(ctx context.Context, res *command.Result) error {
			return printResult(outW, res)
		}
	}
	for _, child := range cmd.Children {
		attachPrinter(child, outW)
	}
}

// printResult renders the resolved command path and its typed values.
func printResult(w io.Writer, res *command.Result) error {
	fmt.Fprintf(w, "command: %s\n", strings.Join(res.Path, " "))

	opts := cty.EmptyObjectVal
	if len(res.Values) > 0 {
		opts = cty.ObjectVal(res.Values)
	}
	buf, err := ctyjson.Marshal(opts, opts.Type())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "options: %s\n", buf)

	if len(res.Positionals) == 0 {
		return nil
	}
	elems := make([]cty.Value, len(res.Positionals))
	for i, v := range res.Positionals {
		if v == cty.NilVal {
			v = cty.NullVal(cty.String)
		}
		elems[i] = v
	}
	tup := cty.TupleVal(elems)
	buf, err = ctyjson.Marshal(tup, tup.Type())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "arguments: %s\n", buf)
	return nil
}
