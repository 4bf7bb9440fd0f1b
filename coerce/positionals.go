package coerce

import (
	"context"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/cmdtree/internal/ctxlog"
	"github.com/vk/cmdtree/schema"
)

// Positionals aligns the leftover positional tokens to the declared slots.
// The output preserves 1:1 index correspondence with the schema, except for
// a final variadic slot which captures every remaining token as a single
// list value.
//
// For each non-variadic slot the precedence is strict: a present token is
// coerced; otherwise a declared default is emitted; otherwise a required
// slot fails with *MissingPositionalError; otherwise the slot becomes
// cty.NilVal.
func Positionals(ctx context.Context, tokens []string, specs *schema.Positionals) ([]cty.Value, error) {
	logger := ctxlog.FromContext(ctx)
	out := make([]cty.Value, 0, specs.Len())

	for i, p := range specs.List() {
		if p.Kind == schema.PositionalVariadic {
			val, err := variadic(p, i, rest(tokens, i))
			if err != nil {
				return nil, err
			}
			out = append(out, val)
			// NewPositionals guarantees a variadic slot is last.
			break
		}

		switch {
		case i < len(tokens):
			val, err := positionalValue(p, tokens[i])
			if err != nil {
				return nil, err
			}
			out = append(out, val)
		case p.HasDefault():
			out = append(out, p.Default)
		case p.Required:
			return nil, &MissingPositionalError{Index: i, Name: p.Name}
		default:
			out = append(out, cty.NilVal)
		}
	}

	logger.Debug("Positional coercion complete.", "slots", len(out), "tokens", len(tokens))
	return out, nil
}

func positionalValue(p *schema.Positional, token string) (cty.Value, error) {
	if p.Kind == schema.PositionalNumber {
		num, err := cty.ParseNumberVal(token)
		if err != nil {
			return cty.NilVal, &InvalidNumberError{Subject: p.Name, Value: token}
		}
		return num, nil
	}
	return cty.StringVal(token), nil
}

func variadic(p *schema.Positional, index int, tokens []string) (cty.Value, error) {
	if len(tokens) == 0 {
		if p.HasDefault() {
			return p.Default, nil
		}
		if p.Required {
			return cty.NilVal, &MissingPositionalError{Index: index, Name: p.Name}
		}
		return cty.ListValEmpty(p.Elem.CtyType()), nil
	}

	elems := make([]cty.Value, 0, len(tokens))
	for _, tok := range tokens {
		if p.Elem == schema.ElemNumber {
			num, err := cty.ParseNumberVal(tok)
			if err != nil {
				return cty.NilVal, &InvalidNumberError{Subject: p.Name, Value: tok}
			}
			elems = append(elems, num)
			continue
		}
		elems = append(elems, cty.StringVal(tok))
	}
	return cty.ListVal(elems), nil
}

func rest(tokens []string, from int) []string {
	if from >= len(tokens) {
		return nil
	}
	return tokens[from:]
}
