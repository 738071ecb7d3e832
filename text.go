package tabler

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mattn/go-runewidth"
)

// BorderStyle controls the characters used by [WriteText].
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
}

// grid is the text content of a mounted table, one group per section.
type grid struct {
	head, body, foot [][]string
}

func (g grid) groups() [][][]string {
	var out [][][]string
	for _, rows := range [][][]string{g.head, g.body, g.foot} {
		if len(rows) > 0 {
			out = append(out, rows)
		}
	}
	return out
}

func extractGrid(m *Mount) grid {
	rows := func(section string) [][]string {
		var out [][]string
		m.Find(section + " > tr").Each(func(_ int, tr *goquery.Selection) {
			var cells []string
			tr.Children().Each(func(_ int, cell *goquery.Selection) {
				cells = append(cells, strings.TrimSpace(cell.Text()))
			})
			out = append(out, cells)
		})
		return out
	}
	return grid{head: rows("thead"), body: rows("tbody"), foot: rows("tfoot")}
}

// WriteText draws the mounted table as plain text. Markup inside cells is
// reduced to its text. Sections are separated by horizontal rules.
func WriteText(w io.Writer, m *Mount, border BorderStyle) error {
	groups := extractGrid(m).groups()
	if len(groups) == 0 {
		return nil
	}
	widths := computeWidths(groups)

	if border == BorderNone {
		for i, rows := range groups {
			if i > 0 {
				if err := writePlainSep(w, widths); err != nil {
					return err
				}
			}
			for _, row := range rows {
				if err := writePlainRow(w, row, widths); err != nil {
					return err
				}
			}
		}
		return nil
	}

	bc, ok := borderSets[border]
	if !ok {
		return fmt.Errorf("%w: border style %d", ErrUnsupportedFormat, border)
	}
	if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}
	for i, rows := range groups {
		if i > 0 {
			if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
				return err
			}
		}
		for _, row := range rows {
			if err := drawBorderedRow(w, row, widths, bc.vertical); err != nil {
				return err
			}
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func computeWidths(groups [][][]string) []int {
	var widths []int
	for _, rows := range groups {
		for _, row := range rows {
			for i, cell := range row {
				if i >= len(widths) {
					widths = append(widths, 0)
				}
				if cw := runewidth.StringWidth(cell); cw > widths[i] {
					widths[i] = cw
				}
			}
		}
	}
	return widths
}

func padCell(s string, width int) string {
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

func writePlainSep(w io.Writer, widths []int) error {
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	_, err := fmt.Fprintln(w, strings.Join(sep, "  "))
	return err
}

func writePlainRow(w io.Writer, cells []string, widths []int) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = padCell(cellAt(cells, i), width)
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	return err
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, cells []string, widths []int, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(padCell(cellAt(cells, i), width))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}
