package plugins

import "github.com/bjaus/tabler"

// EventToggle is the event [Toggle] listens for. Its single argument is the
// field name of the column to flip.
const EventToggle = "toggle"

// TogglePlugin registers [Toggle] under the name "toggle". It takes no
// options.
var TogglePlugin = tabler.Factory{
	Name: "toggle",
	New: func(any) tabler.Plugin {
		return &Toggle{}
	},
}

// Toggle flips the Disabled flag of a column whenever [EventToggle] is
// emitted on the table, then re-renders the rows of the last render. Rows
// passed to [tabler.Table.RenderData] stay on screen after a toggle.
type Toggle struct {
	table  *tabler.Table
	handle tabler.Handle
	last   []tabler.Row
}

// Attach subscribes to toggle and destroy events and chains the header
// renderer to remember the rows of each render.
func (p *Toggle) Attach(t *tabler.Table) error {
	p.table = t
	head := t.HeadRenderer()
	t.SetHeadRenderer(func(t *tabler.Table, data []tabler.Row, spec tabler.Spec) string {
		p.last = data
		return head(t, data, spec)
	})
	p.handle = t.On(EventToggle, p.toggle)
	t.On(tabler.EventDestroy, func(...any) {
		t.Off(EventToggle, p.handle)
		p.table = nil
		p.last = nil
	})
	return nil
}

// Hidden returns the fields of the currently disabled columns.
func (p *Toggle) Hidden() []string {
	if p.table == nil {
		return nil
	}
	var out []string
	for _, col := range p.table.Spec() {
		if col.Disabled {
			out = append(out, col.Field)
		}
	}
	return out
}

func (p *Toggle) toggle(args ...any) {
	if p.table == nil || len(args) == 0 {
		return
	}
	field, ok := args[0].(string)
	if !ok {
		return
	}
	col, ok := p.table.Field(field)
	if !ok {
		p.table.Logger().Warn("toggle: unknown column", "field", field)
		return
	}
	col.Disabled = !col.Disabled
	if err := p.table.RenderData(p.last); err != nil {
		p.table.Logger().Error("toggle: render failed", "err", err)
	}
}
