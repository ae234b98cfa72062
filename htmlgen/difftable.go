package htmlgen

import (
	"html/template"
	"strings"

	"github.com/mstanek/kabigen/legacydiff"
)

// diffTable parses the legacy diff text and renders it as an aligned
// two-column table: a heading row per fragment followed by the reconciled
// line rows.
func (g *Generator) diffTable(diff string) (template.HTML, error) {
	parsed, err := legacydiff.Parse(diff)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(`<table class="table diff-table">` + "\n")
	for _, frag := range parsed.Fragments {
		heading, err := g.highlighter.Highlight(frag.Header)
		if err != nil {
			return "", err
		}
		sb.WriteString(`<tr><td class="heading" colspan="2">`)
		sb.WriteString(heading)
		sb.WriteString("</td></tr>\n")

		for _, row := range legacydiff.Reconcile(frag) {
			sb.WriteString("<tr>")
			if err := g.writeCell(&sb, row.Left); err != nil {
				return "", err
			}
			if err := g.writeCell(&sb, row.Right); err != nil {
				return "", err
			}
			sb.WriteString("</tr>\n")
		}
	}
	sb.WriteString("</table>")

	return template.HTML(sb.String()), nil
}

func (g *Generator) writeCell(sb *strings.Builder, cell legacydiff.Cell) error {
	if cell.Kind == legacydiff.CellEmpty {
		sb.WriteString(`<td class="line empty"></td>`)
		return nil
	}

	markup, err := g.highlighter.Highlight(cell.Render())
	if err != nil {
		return err
	}
	sb.WriteString(`<td class="`)
	sb.WriteString(cellClass(cell.Kind))
	sb.WriteString(`">`)
	sb.WriteString(markup)
	sb.WriteString("</td>")
	return nil
}

func cellClass(kind legacydiff.CellKind) string {
	switch kind {
	case legacydiff.CellRemoved:
		return "line removed"
	case legacydiff.CellAdded:
		return "line added"
	default:
		return "line"
	}
}
