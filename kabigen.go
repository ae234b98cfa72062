// Package kabigen provides domain types for rendering kernel symbol
// comparison reports as browsable static HTML.
package kabigen

import (
	"fmt"
	"html"
)

// Location represents a line in a specific file in the kernel source tree.
type Location struct {
	File string
	Line int
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// InternalSymbol is the smallest unit for which differences are reported.
// It can be a function, a macro or a structure type.
type InternalSymbol struct {
	Name     string
	Kind     InternalKind
	Location Location
}

// ExternalSymbol is a symbol whose behavior may be affected by a change in
// an internal symbol: a function, a global variable, a module parameter or
// a sysctl option.
type ExternalSymbol struct {
	Name string
	Kind ExternalKind
}

// Call represents a single call site in a call stack.
type Call struct {
	Symbol   string
	Location Location
}

// Affection records that a difference in an internal symbol has an effect
// on an external symbol, together with the call chains linking the two.
type Affection struct {
	Symbol       ExternalSymbol
	CallstackOld []Call
	CallstackNew []Call
}

// Impact is the inverse view of an Affection: an internal symbol affecting
// the external symbol whose page it appears on.
type Impact struct {
	Symbol       InternalSymbol
	CallstackOld []Call
	CallstackNew []Call
}

// Difference pairs the two versions of an internal symbol with a textual
// diff and the external symbols the change affects.
type Difference struct {
	SymbolOld InternalSymbol
	SymbolNew InternalSymbol
	Diff      string
	Affected  []Affection
}

// Loader reads difference records from a directory.
type Loader interface {
	// Load parses every record in dir and returns the differences sorted
	// by old-symbol name.
	Load(dir string) ([]*Difference, error)
}

// Highlighter renders C source fragments as HTML markup.
type Highlighter interface {
	// Highlight returns HTML markup for the given source text.
	Highlight(source string) (string, error)
	// StyleSheet returns the CSS required by the emitted markup, or an
	// empty string if none is needed.
	StyleSheet() (string, error)
}

// Compile-time interface verification.
var _ Highlighter = PlainHighlighter{}

// PlainHighlighter renders source as an escaped pre block without colors.
// It is the default used when syntax highlighting is disabled.
type PlainHighlighter struct{}

// Highlight wraps the escaped source in a pre element.
func (PlainHighlighter) Highlight(source string) (string, error) {
	return "<pre>" + html.EscapeString(source) + "</pre>", nil
}

// StyleSheet returns an empty string; plain output needs no styles.
func (PlainHighlighter) StyleSheet() (string, error) {
	return "", nil
}
