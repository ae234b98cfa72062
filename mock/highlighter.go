package mock

import "github.com/mstanek/kabigen"

// Compile-time interface verification.
var _ kabigen.Highlighter = (*Highlighter)(nil)

// Highlighter is a mock implementation of kabigen.Highlighter.
type Highlighter struct {
	HighlightFn  func(source string) (string, error)
	StyleSheetFn func() (string, error)
}

func (h *Highlighter) Highlight(source string) (string, error) {
	return h.HighlightFn(source)
}

func (h *Highlighter) StyleSheet() (string, error) {
	return h.StyleSheetFn()
}
