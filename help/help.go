package help

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/gookit/color"
	"github.com/mitchellh/go-wordwrap"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/cmdtree/command"
	"github.com/vk/cmdtree/schema"
)

const wrapWidth = 80

// Render writes the help text for the given node. path is the command path
// from the root, and opts is the merged option schema at that node;
// inherited globals are listed alongside the node's own options. When opts
// is nil the node's own schema is used.
func Render(w io.Writer, cmd *command.Command, path []string, opts *schema.Options) {
	if opts == nil {
		opts = cmd.Options
	}
	if len(path) == 0 {
		path = []string{cmd.Name}
	}

	if cmd.Description != "" {
		fmt.Fprintln(w, wordwrap.WrapString(cmd.Description, wrapWidth))
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, color.Bold.Sprint("Usage:"))
	fmt.Fprintf(w, "  %s\n", usageLine(cmd, path, opts))

	if len(cmd.Children) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, color.Bold.Sprint("Commands:"))
		renderCommands(w, cmd)
	}

	if cmd.Positionals.Len() > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, color.Bold.Sprint("Arguments:"))
		renderPositionals(w, cmd.Positionals)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, color.Bold.Sprint("Options:"))
	renderOptions(w, opts)
}

func usageLine(cmd *command.Command, path []string, opts *schema.Options) string {
	parts := []string{strings.Join(path, " ")}
	if opts.Len() > 0 {
		parts = append(parts, "[options]")
	}
	if len(cmd.Children) > 0 {
		parts = append(parts, "<command>")
	}
	for _, p := range cmd.Positionals.List() {
		switch {
		case p.Kind == schema.PositionalVariadic:
			parts = append(parts, fmt.Sprintf("[%s...]", p.Name))
		case p.Required:
			parts = append(parts, fmt.Sprintf("<%s>", p.Name))
		default:
			parts = append(parts, fmt.Sprintf("[%s]", p.Name))
		}
	}
	return strings.Join(parts, " ")
}

func renderCommands(w io.Writer, cmd *command.Command) {
	names := make([]string, 0, len(cmd.Children))
	for name := range cmd.Children {
		names = append(names, name)
	}
	slices.Sort(names)

	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}
	for _, name := range names {
		child := cmd.Children[name]
		desc := child.Description
		if name == cmd.Default {
			desc = strings.TrimSpace(desc + " (default)")
		}
		fmt.Fprintf(w, "  %s  %s\n", color.Cyan.Sprint(pad(name, width)), desc)
	}
}

func renderPositionals(w io.Writer, specs *schema.Positionals) {
	width := 0
	for _, p := range specs.List() {
		width = max(width, len(p.Name))
	}
	for _, p := range specs.List() {
		fmt.Fprintf(w, "  %s  %s\n", pad(p.Name, width), strings.TrimSpace(p.Description+positionalNotes(p)))
	}
}

func positionalNotes(p *schema.Positional) string {
	var notes []string
	if p.Required {
		notes = append(notes, "required")
	}
	if p.HasDefault() {
		notes = append(notes, "default: "+formatValue(p.Default))
	}
	if len(notes) == 0 {
		return ""
	}
	return " (" + strings.Join(notes, ", ") + ")"
}

func renderOptions(w io.Writer, opts *schema.Options) {
	type row struct {
		left, right string
	}
	rows := make([]row, 0, opts.Len()+2)
	for _, opt := range opts.List() {
		rows = append(rows, row{optionLeft(opt), strings.TrimSpace(opt.Description + optionNotes(opt))})
	}
	rows = append(rows,
		row{"-h, --help", "Show help for the current command"},
		row{"    --version", "Show the version"},
	)

	width := 0
	for _, r := range rows {
		width = max(width, len(r.left))
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %s  %s\n", pad(r.left, width), r.right)
	}
}

func optionLeft(opt *schema.Option) string {
	var b strings.Builder
	if short := opt.ShortForm(); short != "" {
		b.WriteString("-" + short + ", ")
	} else {
		b.WriteString("    ")
	}
	b.WriteString("--" + opt.Name)
	if opt.TakesValue() {
		b.WriteString(" <" + opt.Kind.String() + ">")
	}
	return b.String()
}

func optionNotes(opt *schema.Option) string {
	var notes []string
	if len(opt.Choices) > 0 {
		notes = append(notes, "choices: "+strings.Join(opt.Choices, ", "))
	}
	if opt.HasDefault() {
		notes = append(notes, "default: "+formatValue(opt.Default))
	}
	if len(notes) == 0 {
		return ""
	}
	return " (" + strings.Join(notes, ", ") + ")"
}

// formatValue renders a cty value the way a user would have typed it.
func formatValue(val cty.Value) string {
	if val.CanIterateElements() {
		var elems []string
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			elems = append(elems, formatValue(elem))
		}
		return "[" + strings.Join(elems, ", ") + "]"
	}
	s, err := convert.Convert(val, cty.String)
	if err != nil {
		return val.GoString()
	}
	return s.AsString()
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", width-len(s))
}
