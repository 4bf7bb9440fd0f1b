package coerce

import (
	"context"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/cmdtree/internal/ctxlog"
	"github.com/vk/cmdtree/scanner"
	"github.com/vk/cmdtree/schema"
)

// Values converts the raw per-option values collected by the scanner into
// typed cty values, keyed by option name. Options are evaluated
// independently, in schema declaration order; the first failure aborts and
// the error names that option.
//
// An option that is absent and has no default is absent from the result.
func Values(ctx context.Context, raw *scanner.RawOptions, opts *schema.Options) (map[string]cty.Value, error) {
	logger := ctxlog.FromContext(ctx)
	out := make(map[string]cty.Value, opts.Len())

	for _, opt := range opts.List() {
		val, err := option(raw, opt)
		if err != nil {
			return nil, err
		}
		if val != cty.NilVal {
			out[opt.Name] = val
		}
	}

	logger.Debug("Option coercion complete.", "values", len(out))
	return out, nil
}

func option(raw *scanner.RawOptions, opt *schema.Option) (cty.Value, error) {
	switch opt.Kind {
	case schema.OptionBool:
		// Presence means true. Absence stays absent unless a default was
		// declared: an omitted bool is never coerced to false.
		if raw.Seen(opt.Name) {
			return cty.True, nil
		}
		return opt.Default, nil

	case schema.OptionCount:
		// The value is the number of occurrences, not a bool. Zero
		// occurrences fall back to the default, or to zero.
		if n := raw.Count(opt.Name); n > 0 {
			return cty.NumberIntVal(int64(n)), nil
		}
		if opt.HasDefault() {
			return opt.Default, nil
		}
		return cty.Zero, nil

	case schema.OptionString:
		if v, ok := lastValue(raw, opt); ok {
			return cty.StringVal(v), nil
		}
		return opt.Default, nil

	case schema.OptionNumber:
		if v, ok := lastValue(raw, opt); ok {
			num, err := cty.ParseNumberVal(v)
			if err != nil {
				return cty.NilVal, &InvalidNumberError{Subject: "--" + opt.Name, Value: v}
			}
			return num, nil
		}
		return opt.Default, nil

	case schema.OptionEnum:
		if v, ok := lastValue(raw, opt); ok {
			for _, choice := range opt.Choices {
				if v == choice {
					return cty.StringVal(v), nil
				}
			}
			return cty.NilVal, &InvalidEnumError{Option: opt.Name, Value: v, Choices: opt.Choices}
		}
		return opt.Default, nil

	case schema.OptionArray:
		vals := raw.Values(opt.Name)
		if len(vals) == 0 {
			// Zero occurrences yield the default as declared; any
			// occurrence replaces the default entirely, never merges.
			return opt.Default, nil
		}
		elems := make([]cty.Value, 0, len(vals))
		for _, v := range vals {
			elem, err := element(opt.Name, opt.Elem, v)
			if err != nil {
				return cty.NilVal, err
			}
			elems = append(elems, elem)
		}
		return cty.ListVal(elems), nil
	}

	return cty.NilVal, nil
}

// lastValue returns the effective raw value of a scalar option: when the
// flag is repeated, the last occurrence wins.
func lastValue(raw *scanner.RawOptions, opt *schema.Option) (string, bool) {
	vals := raw.Values(opt.Name)
	if len(vals) == 0 {
		return "", false
	}
	return vals[len(vals)-1], true
}

func element(subject string, kind schema.ElemKind, value string) (cty.Value, error) {
	if kind == schema.ElemNumber {
		num, err := cty.ParseNumberVal(value)
		if err != nil {
			return cty.NilVal, &InvalidNumberError{Subject: "--" + subject, Value: value}
		}
		return num, nil
	}
	return cty.StringVal(value), nil
}
