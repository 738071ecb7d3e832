package plugins

import (
	"slices"
	"strings"

	"github.com/goccy/go-json"

	"github.com/bjaus/tabler"
)

// TotalsOptions configures [Totals].
type TotalsOptions struct {
	// Label fills the first cell when that column is not summed.
	// Default: "Total".
	Label string
	// Fields limits summing to these fields. Empty means every column whose
	// non-empty values are all numeric.
	Fields []string
}

// TotalsPlugin registers [Totals] under the name "totals". Options may be a
// TotalsOptions or nil.
var TotalsPlugin = tabler.Factory{
	Name: "totals",
	New: func(options any) tabler.Plugin {
		opts, _ := options.(TotalsOptions)
		if opts.Label == "" {
			opts.Label = "Total"
		}
		return &Totals{opts: opts}
	},
}

// Totals appends a summary row to the footer section. Each summed cell is
// rendered through the column's own formatter.
type Totals struct {
	opts TotalsOptions
}

// Attach chains the table's footer renderer.
func (p *Totals) Attach(t *tabler.Table) error {
	foot := t.FootRenderer()
	t.SetFootRenderer(func(t *tabler.Table, data []tabler.Row, spec tabler.Spec) string {
		prev := foot(t, data, spec)
		if len(data) == 0 || len(spec) == 0 {
			return prev
		}
		row := p.row(t, data, spec)
		if prev == "" {
			return row
		}
		return prev + "\n" + row
	})
	return nil
}

// Sum adds up the numeric values of field in data. ok is false when a
// non-empty value is not numeric or no value was found.
func Sum(data []tabler.Row, field string) (total float64, ok bool) {
	for _, row := range data {
		v := row[field]
		if tabler.IsEmpty(v) {
			continue
		}
		n, numeric := toFloat(v)
		if !numeric {
			return 0, false
		}
		total += n
		ok = true
	}
	return total, ok
}

func (p *Totals) summed(field string) bool {
	return len(p.opts.Fields) == 0 || slices.Contains(p.opts.Fields, field)
}

func (p *Totals) row(t *tabler.Table, data []tabler.Row, spec tabler.Spec) string {
	attrs := t.ColumnAttrs()
	lines := make([]string, 0, len(spec)+2)
	lines = append(lines, "<tr>")
	for i, col := range spec {
		var text any
		if total, ok := Sum(data, col.Field); ok && p.summed(col.Field) {
			text = tabler.FormatValue(tabler.Row{col.Field: total}, col)
		} else if i == 0 {
			text = p.opts.Label
		}
		lines = append(lines, tabler.MakeTag("td", text, attrs(col)))
	}
	lines = append(lines, "</tr>")
	return strings.Join(lines, "\n")
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
