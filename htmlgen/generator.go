// Package htmlgen assembles the static HTML report: one page per internal
// symbol difference, one page per affected external symbol and an index
// cross-linking both.
package htmlgen

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mstanek/kabigen"
)

// bootstrapHref is the stylesheet linked from every page.
const bootstrapHref = "https://stackpath.bootstrapcdn.com/bootstrap/4.4.1/css/bootstrap.min.css"

const mainPageTitle = "Kernel symbol differences"

// Output file and directory names.
const (
	indexFile     = "index.html"
	kabiDir       = "kabi"
	styleFile     = "htmlgen.css"
	highlightFile = "highlight.css"
)

// Generator converts a directory of difference records into a static HTML
// report.
type Generator struct {
	loader        kabigen.Loader
	highlighter   kabigen.Highlighter
	graphicalDiff bool
}

// New creates a Generator. When graphicalDiff is set, diffs are parsed and
// rendered as aligned two-column tables instead of plain text blocks.
func New(loader kabigen.Loader, highlighter kabigen.Highlighter, graphicalDiff bool) *Generator {
	return &Generator{
		loader:        loader,
		highlighter:   highlighter,
		graphicalDiff: graphicalDiff,
	}
}

// Generate reads the records in inputDir and writes the report pages and
// stylesheets into outputDir, creating it if needed.
func (g *Generator) Generate(inputDir, outputDir string) error {
	diffs, err := g.loader.Load(inputDir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Join(outputDir, kabiDir), 0o755); err != nil {
		return err
	}

	for _, d := range diffs {
		if err := g.writeDifferencePage(outputDir, d); err != nil {
			return fmt.Errorf("difference page for %s: %w", d.SymbolOld.Name, err)
		}
	}

	impacts := collectImpacts(diffs)
	symbols := sortedExternalSymbols(impacts)
	for _, sym := range symbols {
		if err := g.writeExternalPage(outputDir, sym, impacts[sym]); err != nil {
			return fmt.Errorf("external symbol page for %s: %w", sym.Name, err)
		}
	}

	if err := g.writeIndexPage(outputDir, diffs, symbols); err != nil {
		return err
	}

	return g.writeStyles(outputDir)
}

// collectImpacts inverts the difference records into a map keyed by
// external symbol, each entry listing the internal symbols affecting it.
func collectImpacts(diffs []*kabigen.Difference) map[kabigen.ExternalSymbol][]kabigen.Impact {
	impacts := make(map[kabigen.ExternalSymbol][]kabigen.Impact)
	for _, d := range diffs {
		for _, aff := range d.Affected {
			impacts[aff.Symbol] = append(impacts[aff.Symbol], kabigen.Impact{
				Symbol:       d.SymbolOld,
				CallstackOld: aff.CallstackOld,
				CallstackNew: aff.CallstackNew,
			})
		}
	}
	return impacts
}

func sortedExternalSymbols(impacts map[kabigen.ExternalSymbol][]kabigen.Impact) []kabigen.ExternalSymbol {
	symbols := make([]kabigen.ExternalSymbol, 0, len(impacts))
	for sym := range impacts {
		symbols = append(symbols, sym)
	}
	sort.Slice(symbols, func(i, j int) bool {
		if symbols[i].Name != symbols[j].Name {
			return symbols[i].Name < symbols[j].Name
		}
		return symbols[i].Kind < symbols[j].Kind
	})
	return symbols
}

// externalPageName returns the file name of an external symbol page,
// disambiguated by the kind's display form.
func externalPageName(sym kabigen.ExternalSymbol) string {
	return sym.Name + "-" + sym.Kind.String() + ".html"
}

func callstackView(calls []kabigen.Call) []string {
	out := make([]string, 0, len(calls))
	for _, c := range calls {
		out = append(out, c.Symbol+" at "+c.Location.String())
	}
	return out
}

func (g *Generator) writeDifferencePage(outputDir string, d *kabigen.Difference) error {
	diffHTML, err := g.renderDiff(d.Diff)
	if err != nil {
		return err
	}

	data := differencePage{
		pageData: pageData{
			Title:     d.SymbolOld.Name,
			Bootstrap: bootstrapHref,
		},
		Symbol:      d.SymbolOld.Name,
		Kind:        d.SymbolOld.Kind.String(),
		OldLocation: d.SymbolOld.Location.String(),
		NewLocation: d.SymbolNew.Location.String(),
		Diff:        diffHTML,
	}
	for _, aff := range d.Affected {
		data.Affections = append(data.Affections, affectionView{
			Name:     aff.Symbol.Name,
			Href:     kabiDir + "/" + externalPageName(aff.Symbol),
			OldStack: callstackView(aff.CallstackOld),
			NewStack: callstackView(aff.CallstackNew),
		})
	}

	return writePage(filepath.Join(outputDir, d.SymbolOld.Name+".html"), "difference", data)
}

func (g *Generator) writeExternalPage(outputDir string, sym kabigen.ExternalSymbol, impacts []kabigen.Impact) error {
	data := externalPage{
		pageData: pageData{
			Title:     sym.Name,
			Bootstrap: bootstrapHref,
			StyleDir:  "../",
		},
		Symbol: sym.Name,
		Kind:   sym.Kind.String(),
	}
	for _, impact := range impacts {
		data.Impacts = append(data.Impacts, impactView{
			Name:     impact.Symbol.Name,
			Href:     "../" + impact.Symbol.Name + ".html",
			Location: impact.Symbol.Location.String(),
			OldStack: callstackView(impact.CallstackOld),
			NewStack: callstackView(impact.CallstackNew),
		})
	}

	return writePage(filepath.Join(outputDir, kabiDir, externalPageName(sym)), "external", data)
}

func (g *Generator) writeIndexPage(outputDir string, diffs []*kabigen.Difference, symbols []kabigen.ExternalSymbol) error {
	data := indexPage{
		pageData: pageData{
			Title:     mainPageTitle,
			Bootstrap: bootstrapHref,
		},
	}
	for _, d := range diffs {
		data.Internal = append(data.Internal, indexRow{
			Name: d.SymbolOld.Name,
			Href: d.SymbolOld.Name + ".html",
			Kind: d.SymbolOld.Kind.String(),
		})
	}
	for _, sym := range symbols {
		data.External = append(data.External, indexRow{
			Name: sym.Name,
			Href: kabiDir + "/" + externalPageName(sym),
			Kind: sym.Kind.String(),
		})
	}

	return writePage(filepath.Join(outputDir, indexFile), "index", data)
}

// renderDiff renders the raw diff text either as a single highlighted
// block or, in graphical mode, as a two-column table.
func (g *Generator) renderDiff(diff string) (template.HTML, error) {
	trimmed := strings.TrimSpace(diff)
	if !g.graphicalDiff {
		markup, err := g.highlighter.Highlight(trimmed)
		if err != nil {
			return "", err
		}
		return template.HTML(markup), nil
	}
	return g.diffTable(trimmed)
}

func (g *Generator) writeStyles(outputDir string) error {
	highlightCSS, err := g.highlighter.StyleSheet()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outputDir, highlightFile), []byte(highlightCSS), 0o644); err != nil {
		return err
	}

	css := styleSheet
	if g.graphicalDiff {
		css += styleSheetMaxWidth
	}
	return os.WriteFile(filepath.Join(outputDir, styleFile), []byte(css), 0o644)
}

func writePage(path, name string, data any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := pageTemplates.ExecuteTemplate(f, name, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
