package schema

import (
	"github.com/zclconf/go-cty/cty"
)

// OptionKind identifies the value type of an option descriptor.
type OptionKind int

const (
	// OptionString takes a single raw value unchanged.
	OptionString OptionKind = iota

	// OptionNumber takes a single value parsed as a number.
	OptionNumber

	// OptionBool is a bare flag; presence means true and no value is consumed.
	OptionBool

	// OptionEnum takes a single value that must be one of the declared choices.
	OptionEnum

	// OptionArray accumulates every occurrence, each coerced to Elem.
	OptionArray

	// OptionCount yields the number of occurrences as a number.
	OptionCount
)

// String returns the keyword used for this kind in manifests and help output.
func (k OptionKind) String() string {
	switch k {
	case OptionString:
		return "string"
	case OptionNumber:
		return "number"
	case OptionBool:
		return "bool"
	case OptionEnum:
		return "enum"
	case OptionArray:
		return "list"
	case OptionCount:
		return "count"
	default:
		return "invalid"
	}
}

// ElemKind identifies the element type of an array option or a variadic
// positional.
type ElemKind int

const (
	ElemString ElemKind = iota
	ElemNumber
)

// String returns the keyword used for this element kind.
func (k ElemKind) String() string {
	if k == ElemNumber {
		return "number"
	}
	return "string"
}

// CtyType returns the cty type elements of this kind coerce to.
func (k ElemKind) CtyType() cty.Type {
	if k == ElemNumber {
		return cty.Number
	}
	return cty.String
}

// Option describes a single named option. The zero value is not usable;
// descriptors are handed to NewOptions which validates them and freezes the
// collection.
type Option struct {
	// Name is the long form, matched as --name.
	Name string

	Kind OptionKind

	// Aliases are alternative long forms. The first single-character entry
	// becomes the short form unless Short is set explicitly.
	Aliases []string

	// Short is the explicit single-character short form, matched as -x.
	Short string

	// Default is used when the option is absent from argv. cty.NilVal means
	// no default: an absent option then stays absent from the result.
	Default cty.Value

	// Choices is the closed value set for OptionEnum.
	Choices []string

	// Elem is the element kind for OptionArray.
	Elem ElemKind

	// Description is free text for help output.
	Description string
}

// HasDefault reports whether a default value was declared.
func (o *Option) HasDefault() bool {
	return o.Default != cty.NilVal
}

// ShortForm returns the effective single-character alias, or "" if none. An
// explicit Short wins; otherwise the first single-character alias is used.
func (o *Option) ShortForm() string {
	if o.Short != "" {
		return o.Short
	}
	for _, a := range o.Aliases {
		if len(a) == 1 {
			return a
		}
	}
	return ""
}

// TakesValue reports whether the option consumes a value token. Bool and
// count flags are presence-only.
func (o *Option) TakesValue() bool {
	return o.Kind != OptionBool && o.Kind != OptionCount
}
