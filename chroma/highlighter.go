// Package chroma provides C syntax highlighting using the chroma library.
package chroma

import (
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/mstanek/kabigen"
)

// Compile-time interface verification.
var _ kabigen.Highlighter = (*Highlighter)(nil)

// Highlighter renders C source fragments as chroma-highlighted HTML.
type Highlighter struct {
	lexer     chromalib.Lexer
	formatter *chromahtml.Formatter
	style     *chromalib.Style
}

// NewHighlighter creates a highlighter for C source. The formatter emits
// CSS classes so the styles can be shipped in a separate stylesheet.
func NewHighlighter() *Highlighter {
	lexer := lexers.Get("c")
	if lexer == nil {
		lexer = lexers.Fallback
	}

	return &Highlighter{
		// Coalesce for better performance with consecutive tokens of the same type
		lexer:     chromalib.Coalesce(lexer),
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
		style:     styles.Get("github"),
	}
}

// Highlight returns HTML markup for the given source text.
func (h *Highlighter) Highlight(source string) (string, error) {
	iterator, err := h.lexer.Tokenise(nil, source)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := h.formatter.Format(&sb, h.style, iterator); err != nil {
		return "", err
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

// StyleSheet returns the CSS for the emitted markup. Background rules are
// dropped so the diff table rows can set their own colors.
func (h *Highlighter) StyleSheet() (string, error) {
	var sb strings.Builder
	if err := h.formatter.WriteCSS(&sb, h.style); err != nil {
		return "", err
	}

	lines := strings.Split(sb.String(), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.Contains(line, "background") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n"), nil
}
