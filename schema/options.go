package schema

import (
	"slices"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Reserved tokens recognized independently of any user schema. They may not
// be claimed as option names or aliases.
var reservedNames = []string{"help", "h", "version"}

// Options is an immutable, ordered collection of option descriptors. The
// declaration order is significant: coercion evaluates options in this order
// and fails fast on the first bad one.
type Options struct {
	list  []*Option
	index map[string]*Option
}

// NewOptions validates the given descriptors and freezes them into an
// ordered collection. It returns a *Error describing the first problem
// found.
func NewOptions(opts ...*Option) (*Options, error) {
	s := &Options{
		list:  make([]*Option, 0, len(opts)),
		index: make(map[string]*Option, len(opts)),
	}
	for _, opt := range opts {
		if err := validateOption(opt); err != nil {
			return nil, err
		}
		for _, key := range optionKeys(opt) {
			if slices.Contains(reservedNames, key) {
				return nil, errf(opt.Name, "%q is reserved for built-in help/version handling", key)
			}
			if _, taken := s.index[key]; taken {
				return nil, errf(opt.Name, "name or alias %q already used by another option", key)
			}
			s.index[key] = opt
		}
		s.list = append(s.list, opt)
	}
	return s, nil
}

// MustOptions is NewOptions that panics on a schema error. Intended for
// static declarations where a malformed descriptor is a programming bug.
func MustOptions(opts ...*Option) *Options {
	s, err := NewOptions(opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// List returns the descriptors in declaration order. The returned slice must
// not be modified.
func (s *Options) List() []*Option {
	if s == nil {
		return nil
	}
	return s.list
}

// Len returns the number of declared options.
func (s *Options) Len() int {
	if s == nil {
		return 0
	}
	return len(s.list)
}

// Lookup resolves a long name, alias, or short form to its descriptor.
func (s *Options) Lookup(key string) (*Option, bool) {
	if s == nil {
		return nil, false
	}
	opt, ok := s.index[key]
	return opt, ok
}

// Names returns every recognized long name and alias, for suggestion
// purposes.
func (s *Options) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.index))
	for key := range s.index {
		names = append(names, key)
	}
	slices.Sort(names)
	return names
}

// MergeOptions overlays child options onto inherited parent options. An
// option defined locally replaces the inherited definition of the same name,
// including its aliases. Descriptor pointers are shared, not copied, so a
// value resolved against an ancestor descriptor is the same value seen by
// every descendant.
func MergeOptions(parent, child *Options) *Options {
	if parent.Len() == 0 {
		return child
	}
	if child.Len() == 0 {
		return parent
	}

	merged := &Options{index: make(map[string]*Option)}
	for _, opt := range parent.list {
		if _, overridden := child.byName(opt.Name); overridden {
			continue
		}
		merged.list = append(merged.list, opt)
	}
	merged.list = append(merged.list, child.list...)
	for _, opt := range merged.list {
		for _, key := range optionKeys(opt) {
			merged.index[key] = opt
		}
	}
	return merged
}

func (s *Options) byName(name string) (*Option, bool) {
	for _, opt := range s.list {
		if opt.Name == name {
			return opt, true
		}
	}
	return nil, false
}

func optionKeys(opt *Option) []string {
	keys := []string{opt.Name}
	for _, a := range opt.Aliases {
		keys = append(keys, a)
	}
	if short := opt.Short; short != "" && !slices.Contains(keys, short) {
		keys = append(keys, short)
	}
	return keys
}

func validateOption(opt *Option) error {
	if opt.Name == "" {
		return errf("", "option name must not be empty")
	}
	if opt.Name[0] == '-' {
		return errf(opt.Name, "option name must not start with a dash")
	}
	if len(opt.Short) > 1 {
		return errf(opt.Name, "short alias %q must be a single character", opt.Short)
	}
	for _, a := range opt.Aliases {
		if a == "" {
			return errf(opt.Name, "alias must not be empty")
		}
	}

	switch opt.Kind {
	case OptionEnum:
		if len(opt.Choices) == 0 {
			return errf(opt.Name, "enum option must declare at least one choice")
		}
	case OptionString, OptionNumber, OptionBool, OptionArray, OptionCount:
		if len(opt.Choices) > 0 {
			return errf(opt.Name, "choices are only valid on enum options")
		}
	default:
		return errf(opt.Name, "invalid option kind %d", opt.Kind)
	}

	if !opt.HasDefault() {
		return nil
	}
	switch opt.Kind {
	case OptionString:
		return checkDefaultType(opt.Name, opt.Default, cty.String)
	case OptionNumber, OptionCount:
		return checkDefaultType(opt.Name, opt.Default, cty.Number)
	case OptionBool:
		return checkDefaultType(opt.Name, opt.Default, cty.Bool)
	case OptionEnum:
		val, err := convert.Convert(opt.Default, cty.String)
		if err != nil {
			return errf(opt.Name, "default value is not a valid string: %s", err)
		}
		if !slices.Contains(opt.Choices, val.AsString()) {
			return errf(opt.Name, "default %q is not one of the declared choices", val.AsString())
		}
	case OptionArray:
		return checkDefaultType(opt.Name, opt.Default, cty.List(opt.Elem.CtyType()))
	}
	return nil
}

func checkDefaultType(name string, val cty.Value, want cty.Type) error {
	if _, err := convert.Convert(val, want); err != nil {
		return errf(name, "default value is not a valid %s: %s", want.FriendlyName(), err)
	}
	return nil
}
