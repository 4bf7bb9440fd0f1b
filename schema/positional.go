package schema

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// PositionalKind identifies the value type of a positional descriptor.
type PositionalKind int

const (
	PositionalString PositionalKind = iota
	PositionalNumber

	// PositionalVariadic captures every remaining positional token as one
	// sequence. Only the last descriptor of a schema may be variadic.
	PositionalVariadic
)

// String returns the keyword used for this kind in manifests and help output.
func (k PositionalKind) String() string {
	switch k {
	case PositionalString:
		return "string"
	case PositionalNumber:
		return "number"
	case PositionalVariadic:
		return "variadic"
	default:
		return "invalid"
	}
}

// Positional describes a single positional slot.
type Positional struct {
	Name string
	Kind PositionalKind

	// Required makes an absent slot a parse error. For a variadic slot it
	// means at least one token must be captured.
	Required bool

	// Default is used when no token reaches the slot. cty.NilVal means no
	// default.
	Default cty.Value

	// Elem is the element kind for PositionalVariadic.
	Elem ElemKind

	// Description is free text for help output.
	Description string
}

// HasDefault reports whether a default value was declared.
func (p *Positional) HasDefault() bool {
	return p.Default != cty.NilVal
}

// Positionals is an immutable, ordered sequence of positional descriptors.
type Positionals struct {
	list []*Positional
}

// NewPositionals validates the given descriptors and freezes them into an
// ordered sequence. Only the last descriptor may be variadic, and a required
// descriptor may not follow one that has a default.
func NewPositionals(specs ...*Positional) (*Positionals, error) {
	seen := make(map[string]struct{}, len(specs))
	defaulted := false
	for i, p := range specs {
		if err := validatePositional(p); err != nil {
			return nil, err
		}
		if _, dup := seen[p.Name]; dup {
			return nil, errf(p.Name, "positional name already used")
		}
		seen[p.Name] = struct{}{}

		if p.Kind == PositionalVariadic && i != len(specs)-1 {
			return nil, errf(p.Name, "variadic positional must be the last descriptor")
		}
		if p.Required && defaulted {
			return nil, errf(p.Name, "required positional may not follow one with a default")
		}
		if p.HasDefault() {
			defaulted = true
		}
	}
	return &Positionals{list: specs}, nil
}

// MustPositionals is NewPositionals that panics on a schema error.
func MustPositionals(specs ...*Positional) *Positionals {
	s, err := NewPositionals(specs...)
	if err != nil {
		panic(err)
	}
	return s
}

// List returns the descriptors in declaration order. The returned slice must
// not be modified.
func (s *Positionals) List() []*Positional {
	if s == nil {
		return nil
	}
	return s.list
}

// Len returns the number of declared positional slots.
func (s *Positionals) Len() int {
	if s == nil {
		return 0
	}
	return len(s.list)
}

func validatePositional(p *Positional) error {
	if p.Name == "" {
		return errf("", "positional name must not be empty")
	}
	switch p.Kind {
	case PositionalString, PositionalNumber, PositionalVariadic:
	default:
		return errf(p.Name, "invalid positional kind %d", p.Kind)
	}

	if !p.HasDefault() {
		return nil
	}
	switch p.Kind {
	case PositionalString:
		return checkDefaultType(p.Name, p.Default, cty.String)
	case PositionalNumber:
		return checkDefaultType(p.Name, p.Default, cty.Number)
	case PositionalVariadic:
		if _, err := convert.Convert(p.Default, cty.List(p.Elem.CtyType())); err != nil {
			return errf(p.Name, "default value is not a valid list of %s: %s", p.Elem, err)
		}
	}
	return nil
}
