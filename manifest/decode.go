package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/cmdtree/command"
	"github.com/vk/cmdtree/internal/suggest"
	"github.com/vk/cmdtree/registry"
	"github.com/vk/cmdtree/schema"
)

// commandBodySchema is the HCL schema for the body of a `cli` or `command`
// block.
var commandBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "description"},
		{Name: "version"},
		{Name: "run"},
		{Name: "default"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "option", LabelNames: []string{"name"}},
		{Type: "positional", LabelNames: []string{"name"}},
		{Type: "command", LabelNames: []string{"name"}},
	},
}

var optionBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "type"},
		{Name: "description"},
		{Name: "default"},
		{Name: "aliases"},
		{Name: "short"},
		{Name: "choices"},
	},
}

var positionalBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "type"},
		{Name: "description"},
		{Name: "default"},
		{Name: "required"},
	},
}

// decoder carries the load-wide state a recursive decode needs.
type decoder struct {
	reg *registry.Registry

	// used records which handler names manifests actually referenced, for
	// the parity report after loading.
	used map[string]bool
}

// decodeCommand turns one `cli` or `command` block into a command node,
// recursing into nested command blocks. isRoot gates root-only attributes.
func (d *decoder) decodeCommand(block *hcl.Block, isRoot bool) (*command.Command, hcl.Diagnostics) {
	cmd := &command.Command{
		Name:     block.Labels[0],
		Children: map[string]*command.Command{},
	}

	content, diags := block.Body.Content(commandBodySchema)

	if attr, ok := content.Attributes["description"]; ok {
		cmd.Description = stringAttr(attr, &diags)
	}
	if attr, ok := content.Attributes["version"]; ok {
		if isRoot {
			cmd.Version = stringAttr(attr, &diags)
		} else {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Version on subcommand",
				Detail:   "The version attribute is only valid on the root cli block.",
				Subject:  attr.Range.Ptr(),
			})
		}
	}
	if attr, ok := content.Attributes["default"]; ok {
		cmd.Default = stringAttr(attr, &diags)
	}
	if attr, ok := content.Attributes["run"]; ok {
		d.bindHandler(cmd, attr, &diags)
	}

	var opts []*schema.Option
	for _, b := range content.Blocks.OfType("option") {
		opt, moreDiags := decodeOption(b)
		diags = append(diags, moreDiags...)
		if opt != nil {
			opts = append(opts, opt)
		}
	}
	var positionals []*schema.Positional
	for _, b := range content.Blocks.OfType("positional") {
		p, moreDiags := decodePositional(b)
		diags = append(diags, moreDiags...)
		if p != nil {
			positionals = append(positionals, p)
		}
	}

	for _, b := range content.Blocks.OfType("command") {
		child, moreDiags := d.decodeCommand(b, false)
		diags = append(diags, moreDiags...)
		if child == nil {
			continue
		}
		if _, dup := cmd.Children[child.Name]; dup {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate command",
				Detail:   fmt.Sprintf("A command named %q has already been defined under %q.", child.Name, cmd.Name),
				Subject:  b.DefRange.Ptr(),
			})
			continue
		}
		cmd.Children[child.Name] = child
	}

	if diags.HasErrors() {
		return nil, diags
	}

	optSchema, err := schema.NewOptions(opts...)
	if err != nil {
		return nil, append(diags, schemaDiag(err, block))
	}
	posSchema, err := schema.NewPositionals(positionals...)
	if err != nil {
		return nil, append(diags, schemaDiag(err, block))
	}
	cmd.Options = optSchema
	cmd.Positionals = posSchema
	return cmd, diags
}

// bindHandler resolves a run attribute through the registry. A dangling
// handler name is an error here, before any argv is ever parsed.
func (d *decoder) bindHandler(cmd *command.Command, attr *hcl.Attribute, diags *hcl.Diagnostics) {
	name := stringAttr(attr, diags)
	if name == "" {
		return
	}
	handler, ok := d.reg.Lookup(name)
	if !ok {
		detail := fmt.Sprintf("No handler named %q is registered.", name)
		if near := suggest.Nearest(name, d.reg.Names()); near != "" {
			detail = fmt.Sprintf("%s Did you mean %q?", detail, near)
		}
		*diags = append(*diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unknown handler",
			Detail:   detail,
			Subject:  attr.Range.Ptr(),
		})
		return
	}
	cmd.Run = handler
	d.used[name] = true
}

func decodeOption(block *hcl.Block) (*schema.Option, hcl.Diagnostics) {
	opt := &schema.Option{Name: block.Labels[0]}

	content, diags := block.Body.Content(optionBodySchema)

	attr, ok := content.Attributes["type"]
	if !ok {
		return nil, append(diags, missingType(block))
	}
	spec, err := parseTypeExpr(attr.Expr)
	if err == nil {
		opt.Kind, err = spec.optionKind()
	}
	if err != nil {
		return nil, append(diags, exprDiag("Invalid option type", err, attr))
	}
	opt.Elem = spec.elem

	if attr, ok := content.Attributes["description"]; ok {
		opt.Description = stringAttr(attr, &diags)
	}
	if attr, ok := content.Attributes["short"]; ok {
		opt.Short = stringAttr(attr, &diags)
	}
	if attr, ok := content.Attributes["aliases"]; ok {
		opt.Aliases = stringListAttr(attr, &diags)
	}
	if attr, ok := content.Attributes["choices"]; ok {
		opt.Choices = stringListAttr(attr, &diags)
	}
	if attr, ok := content.Attributes["default"]; ok {
		opt.Default = defaultAttr(attr, optionDefaultType(opt), &diags)
	}

	if diags.HasErrors() {
		return nil, diags
	}
	return opt, diags
}

func decodePositional(block *hcl.Block) (*schema.Positional, hcl.Diagnostics) {
	p := &schema.Positional{Name: block.Labels[0]}

	content, diags := block.Body.Content(positionalBodySchema)

	attr, ok := content.Attributes["type"]
	if !ok {
		return nil, append(diags, missingType(block))
	}
	spec, err := parseTypeExpr(attr.Expr)
	if err == nil {
		p.Kind, err = spec.positionalKind()
	}
	if err != nil {
		return nil, append(diags, exprDiag("Invalid positional type", err, attr))
	}
	p.Elem = spec.elem

	if attr, ok := content.Attributes["description"]; ok {
		p.Description = stringAttr(attr, &diags)
	}
	if attr, ok := content.Attributes["required"]; ok {
		p.Required = boolAttr(attr, &diags)
	}
	if attr, ok := content.Attributes["default"]; ok {
		p.Default = defaultAttr(attr, positionalDefaultType(p), &diags)
	}

	if diags.HasErrors() {
		return nil, diags
	}
	return p, diags
}

func optionDefaultType(opt *schema.Option) cty.Type {
	switch opt.Kind {
	case schema.OptionNumber, schema.OptionCount:
		return cty.Number
	case schema.OptionBool:
		return cty.Bool
	case schema.OptionArray:
		return cty.List(opt.Elem.CtyType())
	default:
		return cty.String
	}
}

func positionalDefaultType(p *schema.Positional) cty.Type {
	switch p.Kind {
	case schema.PositionalNumber:
		return cty.Number
	case schema.PositionalVariadic:
		return cty.List(p.Elem.CtyType())
	default:
		return cty.String
	}
}

// stringAttr evaluates an attribute expression as a literal string.
func stringAttr(attr *hcl.Attribute, diags *hcl.Diagnostics) string {
	val, ok := evalAttr(attr, cty.String, diags)
	if !ok {
		return ""
	}
	return val.AsString()
}

func boolAttr(attr *hcl.Attribute, diags *hcl.Diagnostics) bool {
	val, ok := evalAttr(attr, cty.Bool, diags)
	if !ok {
		return false
	}
	return val.True()
}

func stringListAttr(attr *hcl.Attribute, diags *hcl.Diagnostics) []string {
	val, ok := evalAttr(attr, cty.List(cty.String), diags)
	if !ok || val.LengthInt() == 0 {
		return nil
	}
	out := make([]string, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		out = append(out, elem.AsString())
	}
	return out
}

// defaultAttr evaluates a default expression and normalizes it to the
// canonical cty type of its descriptor, so `default = 8080` and
// `default = "medium"` both land as the type coercion will later produce.
func defaultAttr(attr *hcl.Attribute, want cty.Type, diags *hcl.Diagnostics) cty.Value {
	val, ok := evalAttr(attr, want, diags)
	if !ok {
		return cty.NilVal
	}
	return val
}

func evalAttr(attr *hcl.Attribute, want cty.Type, diags *hcl.Diagnostics) (cty.Value, bool) {
	val, moreDiags := attr.Expr.Value(nil)
	if moreDiags.HasErrors() {
		*diags = append(*diags, moreDiags...)
		return cty.NilVal, false
	}
	converted, err := convert.Convert(val, want)
	if err != nil {
		*diags = append(*diags, exprDiag("Invalid attribute value", err, attr))
		return cty.NilVal, false
	}
	return converted, true
}

func missingType(block *hcl.Block) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Missing type",
		Detail:   fmt.Sprintf("The %s block %q requires a type attribute.", block.Type, block.Labels[0]),
		Subject:  block.DefRange.Ptr(),
	}
}

func exprDiag(summary string, err error, attr *hcl.Attribute) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   err.Error() + ".",
		Subject:  attr.Range.Ptr(),
	}
}

func schemaDiag(err error, block *hcl.Block) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Invalid schema",
		Detail:   err.Error() + ".",
		Subject:  block.DefRange.Ptr(),
	}
}
