// This file parses manifest type expressions (e.g. `string`, `list(number)`,
// `variadic(string)`) into descriptor kinds.

package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/vk/cmdtree/schema"
)

// typeSpec is the neutral form of a parsed type expression, mapped onto
// option or positional kinds by the block decoders.
type typeSpec struct {
	keyword string // string, number, bool, enum, count, list, variadic
	elem    schema.ElemKind
}

// parseTypeExpr converts a manifest type expression into a typeSpec. The
// grammar mirrors what the block decoders accept: bare keywords for scalar
// kinds and one-argument constructor calls for sequence kinds.
func parseTypeExpr(expr hcl.Expression) (typeSpec, error) {
	switch v := expr.(type) {
	case *hclsyntax.FunctionCallExpr:
		if len(v.Args) != 1 {
			return typeSpec{}, fmt.Errorf("type constructor %q requires exactly one argument, got %d", v.Name, len(v.Args))
		}
		elem, err := parseElemExpr(v.Args[0])
		if err != nil {
			return typeSpec{}, err
		}
		switch v.Name {
		case "list", "variadic":
			return typeSpec{keyword: v.Name, elem: elem}, nil
		default:
			return typeSpec{}, fmt.Errorf("unknown type constructor %q", v.Name)
		}

	case *hclsyntax.ScopeTraversalExpr:
		if len(v.Traversal) != 1 {
			return typeSpec{}, fmt.Errorf("invalid type keyword: not a single identifier")
		}
		keyword := v.Traversal.RootName()
		switch keyword {
		case "string", "number", "bool", "enum", "count":
			return typeSpec{keyword: keyword}, nil
		default:
			return typeSpec{}, fmt.Errorf("unknown type keyword %q", keyword)
		}

	default:
		return typeSpec{}, fmt.Errorf("unsupported expression for type definition: %T", v)
	}
}

// parseElemExpr restricts constructor arguments to the element kinds the
// coercer supports.
func parseElemExpr(expr hcl.Expression) (schema.ElemKind, error) {
	trav, ok := expr.(*hclsyntax.ScopeTraversalExpr)
	if !ok || len(trav.Traversal) != 1 {
		return schema.ElemString, fmt.Errorf("element type must be the keyword string or number")
	}
	switch trav.Traversal.RootName() {
	case "string":
		return schema.ElemString, nil
	case "number":
		return schema.ElemNumber, nil
	default:
		return schema.ElemString, fmt.Errorf("unknown element type %q", trav.Traversal.RootName())
	}
}

// optionKind maps a parsed typeSpec onto an option kind.
func (t typeSpec) optionKind() (schema.OptionKind, error) {
	switch t.keyword {
	case "string":
		return schema.OptionString, nil
	case "number":
		return schema.OptionNumber, nil
	case "bool":
		return schema.OptionBool, nil
	case "enum":
		return schema.OptionEnum, nil
	case "count":
		return schema.OptionCount, nil
	case "list":
		return schema.OptionArray, nil
	default:
		return 0, fmt.Errorf("type %q is not valid for an option", t.keyword)
	}
}

// positionalKind maps a parsed typeSpec onto a positional kind.
func (t typeSpec) positionalKind() (schema.PositionalKind, error) {
	switch t.keyword {
	case "string":
		return schema.PositionalString, nil
	case "number":
		return schema.PositionalNumber, nil
	case "variadic":
		return schema.PositionalVariadic, nil
	default:
		return 0, fmt.Errorf("type %q is not valid for a positional", t.keyword)
	}
}
