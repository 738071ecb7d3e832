package tabler

import (
	"math"
	"slices"
)

// Row is one record of input data keyed by field name. The engine never
// mutates a row.
type Row map[string]any

// Formatter renders a cell value. It receives the value after default-text
// substitution, the column it belongs to, and the originating row. The
// returned value is written verbatim (no escaping).
type Formatter func(value any, col Column, row Row) any

// HeaderFormatter computes the header label for a column.
type HeaderFormatter func(col Column) string

// Column describes one table column.
type Column struct {
	// Field is the row key to read.
	Field string
	// Name is the header label. Empty means no label.
	Name string
	// HeaderFormatter overrides Name when set.
	HeaderFormatter HeaderFormatter
	// Formatter overrides value rendering when set.
	Formatter Formatter
	// DefaultText replaces empty values (see [IsEmpty]). nil means unset.
	DefaultText any
	// Width and ClassName feed the width and class attributes.
	Width     string
	ClassName string
	// Disabled columns stay in the spec but are not rendered.
	Disabled bool
}

// Spec is the ordered column layout of a table.
type Spec []Column

// Active returns the columns that are not disabled, preserving order.
func (s Spec) Active() Spec {
	active := make(Spec, 0, len(s))
	for _, col := range s {
		if !col.Disabled {
			active = append(active, col)
		}
	}
	return active
}

// Labeled reports whether any column carries a Name or HeaderFormatter.
func (s Spec) Labeled() bool {
	return slices.ContainsFunc(s, func(col Column) bool {
		return col.Name != "" || col.HeaderFormatter != nil
	})
}

// InferSpec builds a spec with one bare column per distinct field name found
// in data. Callers must not rely on the column order; this implementation
// sorts names so repeated calls agree.
func InferSpec(data []Row) Spec {
	seen := make(map[string]struct{})
	var names []string
	for _, row := range data {
		for name := range row {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	slices.Sort(names)
	spec := make(Spec, len(names))
	for i, name := range names {
		spec[i] = Column{Field: name}
	}
	return spec
}

// IsEmpty reports whether v counts as an empty cell value: nil, the empty
// string, or NaN. Strings that look numeric are not coerced.
func IsEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	default:
		return false
	}
}

// FormatValue resolves the display value of col for row. Empty values are
// replaced by DefaultText once, then the column formatter, if any, is applied
// to the substituted value.
func FormatValue(row Row, col Column) any {
	value := row[col.Field]
	if IsEmpty(value) && col.DefaultText != nil {
		value = col.DefaultText
	}
	if col.Formatter == nil {
		return value
	}
	return col.Formatter(value, col, row)
}
