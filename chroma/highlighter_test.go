package chroma_test

import (
	"strings"
	"testing"

	"github.com/mstanek/kabigen/chroma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlighter_Highlight(t *testing.T) {
	t.Parallel()

	h := chroma.NewHighlighter()

	markup, err := h.Highlight("static int x = 1;")

	require.NoError(t, err)
	assert.Contains(t, markup, "<pre")
	assert.Contains(t, markup, "</pre>")
	assert.Contains(t, markup, "class=")
	assert.Contains(t, markup, "static")
	assert.False(t, strings.HasSuffix(markup, "\n"))
}

func TestHighlighter_Highlight_EscapesMarkup(t *testing.T) {
	t.Parallel()

	h := chroma.NewHighlighter()

	markup, err := h.Highlight("a < b && c > d")

	require.NoError(t, err)
	assert.NotContains(t, markup, "a < b")
	assert.Contains(t, markup, "&lt;")
}

func TestHighlighter_Highlight_Deterministic(t *testing.T) {
	t.Parallel()

	h := chroma.NewHighlighter()

	first, err := h.Highlight("return -EINVAL;")
	require.NoError(t, err)
	second, err := h.Highlight("return -EINVAL;")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHighlighter_StyleSheet(t *testing.T) {
	t.Parallel()

	h := chroma.NewHighlighter()

	css, err := h.StyleSheet()

	require.NoError(t, err)
	assert.Contains(t, css, ".chroma")
	assert.NotContains(t, css, "background")
}
