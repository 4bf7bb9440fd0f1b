package help

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/cmdtree/command"
	"github.com/vk/cmdtree/schema"
)

// Assertions use Contains throughout so they hold with or without ANSI
// styling in the output.

func TestRender_Leaf(t *testing.T) {
	t.Parallel()

	cmd := &command.Command{
		Name:        "add",
		Description: "Adds a remote to the configuration.",
		Options: schema.MustOptions(
			&schema.Option{Name: "fetch", Kind: schema.OptionBool, Short: "f", Description: "Fetch after adding"},
			&schema.Option{Name: "branch", Kind: schema.OptionString, Default: cty.StringVal("main")},
		),
		Positionals: schema.MustPositionals(
			&schema.Positional{Name: "name", Kind: schema.PositionalString, Required: true},
			&schema.Positional{Name: "url", Kind: schema.PositionalString},
		),
	}

	var buf bytes.Buffer
	Render(&buf, cmd, []string{"git", "remote", "add"}, cmd.Options)
	out := buf.String()

	assert.Contains(t, out, "Adds a remote to the configuration.")
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "git remote add [options] <name> [url]")
	assert.Contains(t, out, "Arguments:")
	assert.Contains(t, out, "name")
	assert.Contains(t, out, "(required)")
	assert.Contains(t, out, "Options:")
	assert.Contains(t, out, "-f, --fetch")
	assert.Contains(t, out, "Fetch after adding")
	assert.Contains(t, out, "--branch <string>")
	assert.Contains(t, out, "(default: main)")
	assert.Contains(t, out, "-h, --help")
	assert.Contains(t, out, "--version")
}

func TestRender_Group(t *testing.T) {
	t.Parallel()

	cmd := &command.Command{
		Name: "remote",
		Children: map[string]*command.Command{
			"add":    {Name: "add", Description: "Add a remote"},
			"remove": {Name: "remove", Description: "Remove a remote"},
			"list":   {Name: "list", Description: "List remotes"},
		},
		Default: "list",
	}

	var buf bytes.Buffer
	Render(&buf, cmd, []string{"git", "remote"}, nil)
	out := buf.String()

	assert.Contains(t, out, "git remote <command>")
	assert.Contains(t, out, "Commands:")
	assert.Contains(t, out, "Add a remote")
	assert.Contains(t, out, "List remotes (default)")

	// Sorted listing.
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Add a remote")), bytes.Index(buf.Bytes(), []byte("List remotes")))
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("List remotes")), bytes.Index(buf.Bytes(), []byte("Remove a remote")))
}

func TestRender_EnumAndVariadic(t *testing.T) {
	t.Parallel()

	cmd := &command.Command{
		Name: "run",
		Options: schema.MustOptions(
			&schema.Option{Name: "level", Kind: schema.OptionEnum,
				Choices: []string{"low", "medium", "high"}, Default: cty.StringVal("low")},
		),
		Positionals: schema.MustPositionals(
			&schema.Positional{Name: "scripts", Kind: schema.PositionalVariadic, Elem: schema.ElemString},
		),
	}

	var buf bytes.Buffer
	Render(&buf, cmd, nil, nil)
	out := buf.String()

	assert.Contains(t, out, "run [options] [scripts...]")
	assert.Contains(t, out, "(choices: low, medium, high, default: low)")
}

func TestRender_FallbacksWithoutPathOrOptions(t *testing.T) {
	t.Parallel()

	cmd := &command.Command{Name: "tool"}

	var buf bytes.Buffer
	Render(&buf, cmd, nil, nil)
	out := buf.String()

	// Path falls back to the command name, options to the built-ins only.
	assert.Contains(t, out, "  tool\n")
	assert.Contains(t, out, "-h, --help")
}
