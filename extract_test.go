package sap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDirect(t *testing.T) {
	x := &extractor{opts: DefaultOptions()}
	ex, err := x.extract(`{"a": 1, "b": [1,2,3]}`, true)
	require.NoError(t, err)
	v := ex.single()
	require.Equal(t, KindObject, v.Kind)
	a, _ := v.Fields.Get("a")
	assert.Equal(t, float64(1), a.Number)
}

func TestExtractFencedSingleBlock(t *testing.T) {
	x := &extractor{opts: DefaultOptions()}
	ex, err := x.extract("prose\n```json\n{\"ok\": true}\n```\nmore prose", true)
	require.NoError(t, err)
	assert.True(t, ex.FromMarkdown)
	v := ex.single()
	ok, _ := v.Fields.Get("ok")
	assert.True(t, ok.Bool)
}

func TestExtractMultiObjectScan(t *testing.T) {
	x := &extractor{opts: DefaultOptions()}
	ex, err := x.extract(`first {"a":1} then {"b":2}`, true)
	require.NoError(t, err)
	v := ex.single()
	assert.Equal(t, KindArray, v.Kind)
	assert.Len(t, v.Items, 2)
}

func TestExtractRepairTrailingComma(t *testing.T) {
	x := &extractor{opts: DefaultOptions()}
	ex, err := x.extract(`{"a":1,"b":2,}`, true)
	require.NoError(t, err)
	assert.Contains(t, ex.Fixes, fixAppliedAutoFixes)
}

func TestExtractPartialCompletion(t *testing.T) {
	x := &extractor{opts: DefaultOptions()}
	ex, err := x.extract(`{"items":["a","b"`, true)
	require.NoError(t, err)
	assert.True(t, ex.IsPartial)
	assert.Contains(t, ex.Fixes, fixExtractedPartial)
}

func TestExtractStringFallbackPreservesOriginal(t *testing.T) {
	x := &extractor{opts: DefaultOptions()}
	input := `not json at all, just “typographic” prose`
	ex, err := x.extract(input, true)
	require.NoError(t, err)
	v := ex.single()
	assert.Equal(t, KindString, v.Kind)
	assert.Equal(t, input, v.Str)
}

func TestExtractFailsWhenStringFallbackDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.AllowAsString = false
	opts.AllowMarkdownJSON = false
	opts.AllowFixes = false
	opts.FindAllJSONObjects = false
	x := &extractor{opts: opts}
	_, err := x.extract("not json at all", true)
	assert.ErrorIs(t, err, ErrExtractionFailed)
}
