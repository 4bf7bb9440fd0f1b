package command

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Result is the typed outcome of one parse call. It is created fresh per
// invocation, handed to the resolved handler if one exists, and never
// retained by the framework.
type Result struct {
	// Command is the resolved node; the root itself for schema-only CLIs
	// without subcommands.
	Command *Command

	// Path holds the command names walked from the root to the resolved
	// node, root included.
	Path []string

	// Positionals holds one typed value per declared slot, in order.
	// cty.NilVal marks an optional slot that received no token and has no
	// default. A trailing variadic slot is a single list value.
	Positionals []cty.Value

	// Values maps option name to typed value, own definitions merged over
	// inherited globals. Options that are absent with no default do not
	// appear.
	Values map[string]cty.Value
}

// Has reports whether the named option resolved to a value at all.
func (r *Result) Has(name string) bool {
	_, ok := r.Values[name]
	return ok
}

// String returns the named option as a Go string, or "" if absent.
func (r *Result) String(name string) string {
	v, ok := r.Values[name]
	if !ok {
		return ""
	}
	s, err := convert.Convert(v, cty.String)
	if err != nil {
		return ""
	}
	return s.AsString()
}

// Bool returns the named option as a Go bool, or false if absent.
func (r *Result) Bool(name string) bool {
	v, ok := r.Values[name]
	if !ok {
		return false
	}
	return v.True()
}

// Int returns the named option as a Go int, or 0 if absent. Count options
// read naturally through this accessor.
func (r *Result) Int(name string) int {
	v, ok := r.Values[name]
	if !ok {
		return 0
	}
	var n int
	if err := gocty.FromCtyValue(v, &n); err != nil {
		return 0
	}
	return n
}

// Float returns the named option as a Go float64, or 0 if absent.
func (r *Result) Float(name string) float64 {
	v, ok := r.Values[name]
	if !ok {
		return 0
	}
	var f float64
	if err := gocty.FromCtyValue(v, &f); err != nil {
		return 0
	}
	return f
}

// Strings returns the named array option as a Go string slice, or nil if
// absent.
func (r *Result) Strings(name string) []string {
	v, ok := r.Values[name]
	if !ok || !v.CanIterateElements() {
		return nil
	}
	out := make([]string, 0, v.LengthInt())
	for it := v.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		s, err := convert.Convert(elem, cty.String)
		if err != nil {
			return nil
		}
		out = append(out, s.AsString())
	}
	return out
}

// Positional returns the typed value of the positional slot at the given
// index. The second return is false when the slot is out of range or was
// left undefined.
func (r *Result) Positional(index int) (cty.Value, bool) {
	if index < 0 || index >= len(r.Positionals) {
		return cty.NilVal, false
	}
	v := r.Positionals[index]
	return v, v != cty.NilVal
}
