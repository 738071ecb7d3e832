package tabler

import "strings"

// SectionFunc renders the rows of one table section. data is the data being
// rendered (possibly a transient subset; the stored data is always available
// through [Table.Data]) and spec holds only the active columns. An empty
// result omits the section from the mounted table.
type SectionFunc func(t *Table, data []Row, spec Spec) string

// RenderHead renders a single header row when at least one column has a
// label. Header cells share the column attributes of body cells.
func RenderHead(t *Table, data []Row, spec Spec) string {
	if !spec.Labeled() {
		return ""
	}
	attrs := t.ColumnAttrs()
	cells := make([]string, len(spec))
	for i, col := range spec {
		label := col.Name
		if col.HeaderFormatter != nil {
			label = col.HeaderFormatter(col)
		}
		cells[i] = MakeTag("th", label, attrs(col))
	}
	return "<tr>" + strings.Join(cells, "\n") + "</tr>"
}

// RenderBody renders one row per record with one cell per column.
func RenderBody(t *Table, data []Row, spec Spec) string {
	attrs := t.ColumnAttrs()
	rows := make([]string, len(data))
	for i, row := range data {
		lines := make([]string, 0, len(spec)+2)
		lines = append(lines, "<tr>")
		for _, col := range spec {
			lines = append(lines, MakeTag("td", FormatValue(row, col), attrs(col)))
		}
		lines = append(lines, "</tr>")
		rows[i] = strings.Join(lines, "\n")
	}
	return strings.Join(rows, "\n")
}

// RenderFoot renders nothing. Replace it with [Table.SetFootRenderer] to add
// summary rows.
func RenderFoot(t *Table, data []Row, spec Spec) string {
	return ""
}
