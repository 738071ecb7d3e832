package plugins

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/bjaus/tabler"
)

// AutoWidthOptions configures [AutoWidth].
type AutoWidthOptions struct {
	// Unit is appended to the measured width. Default: "ch".
	Unit string
	// Min is the smallest width emitted. Default: 1.
	Min int
}

// AutoWidthPlugin registers [AutoWidth] under the name "autowidth". Options
// may be an AutoWidthOptions or nil.
var AutoWidthPlugin = tabler.Factory{
	Name: "autowidth",
	New: func(options any) tabler.Plugin {
		opts, _ := options.(AutoWidthOptions)
		if opts.Unit == "" {
			opts.Unit = "ch"
		}
		if opts.Min < 1 {
			opts.Min = 1
		}
		return &AutoWidth{opts: opts}
	},
}

// AutoWidth gives every column without an explicit width a width attribute
// equal to the display width of its widest header or body cell. Widths are
// measured when the header section renders, which happens first in every
// render. Measuring formats every header and cell a second time, so each
// column formatter runs twice per render while AutoWidth is attached.
type AutoWidth struct {
	opts   AutoWidthOptions
	widths map[string]int
}

// Attach chains the table's header renderer and attribute builder.
func (a *AutoWidth) Attach(t *tabler.Table) error {
	head := t.HeadRenderer()
	t.SetHeadRenderer(func(t *tabler.Table, data []tabler.Row, spec tabler.Spec) string {
		a.measure(data, spec)
		return head(t, data, spec)
	})

	attrs := t.ColumnAttrs()
	t.SetColumnAttrs(func(col tabler.Column) tabler.Attrs {
		out := attrs(col)
		if v, ok := out.Get("width"); ok && tabler.Truthy(v) {
			return out
		}
		w, ok := a.widths[col.Field]
		if !ok {
			return out
		}
		return out.Set("width", fmt.Sprintf("%d%s", w, a.opts.Unit))
	})
	return nil
}

// Width returns the width measured for field during the last render.
func (a *AutoWidth) Width(field string) (int, bool) {
	w, ok := a.widths[field]
	return w, ok
}

func (a *AutoWidth) measure(data []tabler.Row, spec tabler.Spec) {
	a.widths = make(map[string]int, len(spec))
	for _, col := range spec {
		label := col.Name
		if col.HeaderFormatter != nil {
			label = col.HeaderFormatter(col)
		}
		w := max(a.opts.Min, runewidth.StringWidth(label))
		for _, row := range data {
			w = max(w, runewidth.StringWidth(tabler.Text(tabler.FormatValue(row, col))))
		}
		a.widths[col.Field] = max(a.widths[col.Field], w)
	}
}
