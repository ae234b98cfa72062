package legacydiff

import (
	"fmt"
	"strings"
)

// CellKind classifies one side of a reconciled row.
type CellKind int

// Cell kinds.
const (
	CellEmpty CellKind = iota
	CellContext
	CellRemoved
	CellAdded
)

// Cell is one side of a reconciled row. Text has the marker character
// stripped for added and removed cells and keeps it for context cells.
type Cell struct {
	Kind CellKind
	Line int // absolute line number, meaningless for empty cells
	Text string
}

// Row pairs a left and a right cell at one display position.
type Row struct {
	Left  Cell
	Right Cell
}

// Render returns the cell text decorated with its right-aligned line
// number and change marker, ready for source formatting.
func (c Cell) Render() string {
	switch c.Kind {
	case CellRemoved:
		return fmt.Sprintf(" %4d - %s", c.Line, c.Text)
	case CellAdded:
		return fmt.Sprintf(" %4d + %s", c.Line, c.Text)
	case CellContext:
		return fmt.Sprintf(" %4d  %s", c.Line, c.Text)
	default:
		return ""
	}
}

// Reconcile walks a fragment's left and right line blocks in lockstep and
// classifies each position into a two-column row. It is a pure function
// over the fragment: empty inputs yield no rows and repeated calls yield
// identical results.
//
// When one side's block runs out before the other, the surviving side's
// text is shown in both columns, under the surviving side's line number in
// both columns.
func Reconcile(frag Fragment) []Row {
	var rows []Row
	li, ri := 0, 0

	for li < len(frag.LeftLines) || ri < len(frag.RightLines) {
		leftNum := frag.LeftStart + li
		rightNum := frag.RightStart + ri

		var left, right string
		if li < len(frag.LeftLines) {
			left = frag.LeftLines[li]
		}
		if ri < len(frag.RightLines) {
			right = frag.RightLines[ri]
		}

		switch {
		case strings.HasPrefix(left, "!") && strings.HasPrefix(right, "!"):
			// A line that differs but is paired across both sides.
			rows = append(rows, Row{
				Left:  Cell{Kind: CellRemoved, Line: leftNum, Text: left[1:]},
				Right: Cell{Kind: CellAdded, Line: rightNum, Text: right[1:]},
			})
			li++
			ri++

		case left != "" && (left[0] == '!' || left[0] == '-'):
			rows = append(rows, Row{
				Left: Cell{Kind: CellRemoved, Line: leftNum, Text: left[1:]},
			})
			li++

		case right != "" && (right[0] == '!' || right[0] == '+'):
			rows = append(rows, Row{
				Right: Cell{Kind: CellAdded, Line: rightNum, Text: right[1:]},
			})
			ri++

		case li >= len(frag.LeftLines):
			rows = append(rows, Row{
				Left:  Cell{Kind: CellContext, Line: rightNum, Text: right},
				Right: Cell{Kind: CellContext, Line: rightNum, Text: right},
			})
			li++
			ri++

		case ri >= len(frag.RightLines):
			rows = append(rows, Row{
				Left:  Cell{Kind: CellContext, Line: leftNum, Text: left},
				Right: Cell{Kind: CellContext, Line: leftNum, Text: left},
			})
			li++
			ri++

		default:
			rows = append(rows, Row{
				Left:  Cell{Kind: CellContext, Line: leftNum, Text: left},
				Right: Cell{Kind: CellContext, Line: rightNum, Text: right},
			})
			li++
			ri++
		}
	}

	return rows
}
