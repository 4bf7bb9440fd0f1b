package coerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/cmdtree/schema"
)

func TestPositionals_Alignment(t *testing.T) {
	t.Parallel()

	specs := schema.MustPositionals(
		&schema.Positional{Name: "name", Kind: schema.PositionalString, Required: true},
		&schema.Positional{Name: "port", Kind: schema.PositionalNumber},
	)

	vals, err := Positionals(t.Context(), []string{"origin", "8080"}, specs)
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.True(t, vals[0].RawEquals(cty.StringVal("origin")))
	assert.True(t, vals[1].RawEquals(cty.NumberIntVal(8080)))
}

func TestPositionals_VariadicCapture(t *testing.T) {
	t.Parallel()

	specs := schema.MustPositionals(
		&schema.Positional{Name: "first", Kind: schema.PositionalString, Required: true},
		&schema.Positional{Name: "rest", Kind: schema.PositionalVariadic, Elem: schema.ElemString},
	)

	vals, err := Positionals(t.Context(), []string{"first", "second", "third"}, specs)
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.True(t, vals[0].RawEquals(cty.StringVal("first")))
	want := cty.ListVal([]cty.Value{cty.StringVal("second"), cty.StringVal("third")})
	assert.True(t, vals[1].RawEquals(want))
}

func TestPositionals_VariadicEmpty(t *testing.T) {
	t.Parallel()

	t.Run("no default yields an empty list", func(t *testing.T) {
		t.Parallel()
		specs := schema.MustPositionals(
			&schema.Positional{Name: "argv", Kind: schema.PositionalVariadic, Elem: schema.ElemString},
		)
		vals, err := Positionals(t.Context(), nil, specs)
		require.NoError(t, err)
		require.Len(t, vals, 1)
		assert.True(t, vals[0].RawEquals(cty.ListValEmpty(cty.String)))
	})

	t.Run("default wins over the empty list", func(t *testing.T) {
		t.Parallel()
		specs := schema.MustPositionals(
			&schema.Positional{
				Name: "argv", Kind: schema.PositionalVariadic, Elem: schema.ElemString,
				Default: cty.ListVal([]cty.Value{cty.StringVal("all")}),
			},
		)
		vals, err := Positionals(t.Context(), nil, specs)
		require.NoError(t, err)
		assert.True(t, vals[0].RawEquals(cty.ListVal([]cty.Value{cty.StringVal("all")})))
	})

	t.Run("required with zero tokens fails", func(t *testing.T) {
		t.Parallel()
		specs := schema.MustPositionals(
			&schema.Positional{Name: "argv", Kind: schema.PositionalVariadic, Elem: schema.ElemString, Required: true},
		)
		_, err := Positionals(t.Context(), nil, specs)
		var missing *MissingPositionalError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "argv", missing.Name)
	})
}

func TestPositionals_DefaultFillsAbsentSlot(t *testing.T) {
	t.Parallel()

	specs := schema.MustPositionals(
		&schema.Positional{Name: "target", Kind: schema.PositionalString, Default: cty.StringVal("d")},
	)

	vals, err := Positionals(t.Context(), nil, specs)
	require.NoError(t, err)
	require.Len(t, vals, 1)
	assert.True(t, vals[0].RawEquals(cty.StringVal("d")))
}

func TestPositionals_MissingRequired(t *testing.T) {
	t.Parallel()

	specs := schema.MustPositionals(
		&schema.Positional{Name: "name", Kind: schema.PositionalString},
		&schema.Positional{Name: "url", Kind: schema.PositionalString, Required: true},
	)

	_, err := Positionals(t.Context(), []string{"origin"}, specs)
	var missing *MissingPositionalError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, 1, missing.Index)
	assert.Equal(t, "url", missing.Name)
}

func TestPositionals_OptionalAbsentIsUndefined(t *testing.T) {
	t.Parallel()

	specs := schema.MustPositionals(
		&schema.Positional{Name: "name", Kind: schema.PositionalString},
	)

	vals, err := Positionals(t.Context(), nil, specs)
	require.NoError(t, err)
	require.Len(t, vals, 1)
	assert.Equal(t, cty.NilVal, vals[0])
}

func TestPositionals_NumberCoercion(t *testing.T) {
	t.Parallel()

	specs := schema.MustPositionals(
		&schema.Positional{Name: "port", Kind: schema.PositionalNumber},
	)

	_, err := Positionals(t.Context(), []string{"eighty"}, specs)
	var numErr *InvalidNumberError
	require.ErrorAs(t, err, &numErr)
	assert.Equal(t, "port", numErr.Subject)
}

func TestPositionals_ExtraTokensIgnored(t *testing.T) {
	t.Parallel()

	specs := schema.MustPositionals(
		&schema.Positional{Name: "name", Kind: schema.PositionalString},
	)

	vals, err := Positionals(t.Context(), []string{"kept", "dropped", "dropped-too"}, specs)
	require.NoError(t, err)
	require.Len(t, vals, 1)
	assert.True(t, vals[0].RawEquals(cty.StringVal("kept")))
}

func TestPositionals_VariadicNumbers(t *testing.T) {
	t.Parallel()

	specs := schema.MustPositionals(
		&schema.Positional{Name: "ports", Kind: schema.PositionalVariadic, Elem: schema.ElemNumber},
	)

	vals, err := Positionals(t.Context(), []string{"80", "443"}, specs)
	require.NoError(t, err)
	want := cty.ListVal([]cty.Value{cty.NumberIntVal(80), cty.NumberIntVal(443)})
	assert.True(t, vals[0].RawEquals(want))

	_, err = Positionals(t.Context(), []string{"http"}, specs)
	var numErr *InvalidNumberError
	require.ErrorAs(t, err, &numErr)
}
