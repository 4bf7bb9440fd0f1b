package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/cmdtree/schema"
)

func testOptions(t *testing.T) *schema.Options {
	t.Helper()
	opts, err := schema.NewOptions(
		&schema.Option{Name: "name", Kind: schema.OptionString, Short: "n"},
		&schema.Option{Name: "force", Kind: schema.OptionBool, Short: "f"},
		&schema.Option{Name: "verbose", Kind: schema.OptionCount, Short: "v"},
		&schema.Option{Name: "files", Kind: schema.OptionArray},
	)
	require.NoError(t, err)
	return opts
}

func TestScan_Forms(t *testing.T) {
	t.Parallel()
	opts := testOptions(t)

	t.Run("long with separate value", func(t *testing.T) {
		t.Parallel()
		raw, pos, err := Scan(t.Context(), []string{"--name", "origin"}, opts)
		require.NoError(t, err)
		assert.Equal(t, []string{"origin"}, raw.Values("name"))
		assert.Empty(t, pos)
	})

	t.Run("long with equals value", func(t *testing.T) {
		t.Parallel()
		raw, _, err := Scan(t.Context(), []string{"--name=origin"}, opts)
		require.NoError(t, err)
		assert.Equal(t, []string{"origin"}, raw.Values("name"))
	})

	t.Run("short alias", func(t *testing.T) {
		t.Parallel()
		raw, _, err := Scan(t.Context(), []string{"-n", "origin"}, opts)
		require.NoError(t, err)
		assert.Equal(t, []string{"origin"}, raw.Values("name"))
	})

	t.Run("bare bool consumes no value", func(t *testing.T) {
		t.Parallel()
		raw, pos, err := Scan(t.Context(), []string{"--force", "keep"}, opts)
		require.NoError(t, err)
		assert.True(t, raw.Seen("force"))
		assert.Empty(t, raw.Values("force"))
		assert.Equal(t, []string{"keep"}, pos)
	})

	t.Run("count accumulates occurrences", func(t *testing.T) {
		t.Parallel()
		raw, _, err := Scan(t.Context(), []string{"-v", "--verbose", "-v"}, opts)
		require.NoError(t, err)
		assert.Equal(t, 3, raw.Count("verbose"))
	})

	t.Run("array keeps encounter order", func(t *testing.T) {
		t.Parallel()
		raw, _, err := Scan(t.Context(), []string{"--files", "a.txt", "--files=b.txt"}, opts)
		require.NoError(t, err)
		assert.Equal(t, []string{"a.txt", "b.txt"}, raw.Values("files"))
	})
}

func TestScan_Terminator(t *testing.T) {
	t.Parallel()
	opts := testOptions(t)

	raw, pos, err := Scan(t.Context(), []string{"--force", "--", "--name", "-v", "--help"}, opts)
	require.NoError(t, err)
	assert.True(t, raw.Seen("force"))
	// Everything after "--" is positional, reserved tokens included.
	assert.Equal(t, []string{"--name", "-v", "--help"}, pos)
}

func TestScan_UnknownOption(t *testing.T) {
	t.Parallel()
	opts := testOptions(t)

	_, _, err := Scan(t.Context(), []string{"--froce"}, opts)
	require.Error(t, err)

	var unknown *UnknownOptionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "--froce", unknown.Token)
	assert.Equal(t, "force", unknown.Suggestion)
	assert.ErrorContains(t, err, "did you mean")
}

func TestScan_MissingValue(t *testing.T) {
	t.Parallel()
	opts := testOptions(t)

	_, _, err := Scan(t.Context(), []string{"--name"}, opts)
	var missing *MissingValueError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "name", missing.Option)
}

func TestScan_BoolRejectsInlineValue(t *testing.T) {
	t.Parallel()
	opts := testOptions(t)

	_, _, err := Scan(t.Context(), []string{"--force=true"}, opts)
	require.Error(t, err)
	assert.ErrorContains(t, err, "does not take a value")
}

func TestScan_ReservedTokens(t *testing.T) {
	t.Parallel()
	opts := testOptions(t)

	t.Run("help anywhere", func(t *testing.T) {
		t.Parallel()
		_, _, err := Scan(t.Context(), []string{"--force", "--help"}, opts)
		require.ErrorIs(t, err, ErrHelp)
	})

	t.Run("short help", func(t *testing.T) {
		t.Parallel()
		_, _, err := Scan(t.Context(), []string{"-h"}, opts)
		require.ErrorIs(t, err, ErrHelp)
	})

	t.Run("version", func(t *testing.T) {
		t.Parallel()
		_, _, err := Scan(t.Context(), []string{"--version"}, opts)
		require.ErrorIs(t, err, ErrVersion)
	})

	t.Run("never consumed as an option value", func(t *testing.T) {
		t.Parallel()
		_, _, err := Scan(t.Context(), []string{"--name", "--help"}, opts)
		require.ErrorIs(t, err, ErrHelp)
	})
}

func TestScan_DashAloneIsPositional(t *testing.T) {
	t.Parallel()
	opts := testOptions(t)

	_, pos, err := Scan(t.Context(), []string{"-"}, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"-"}, pos)
}
