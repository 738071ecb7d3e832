package tabler

import (
	"errors"
	"io"
	"slices"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"
)

// Sentinel errors for programmatic error handling.
var (
	ErrConfiguration     = errors.New("invalid configuration")
	ErrDestroyed         = errors.New("table destroyed")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrUnknownFormatter  = errors.New("unknown formatter")
)

// Options configures a new [Table].
type Options struct {
	// Plugins are registered in order; each plugin sees the side effects of
	// the ones before it.
	Plugins []Factory
	// PluginOptions are passed to the plugin constructor of the same name.
	PluginOptions map[string]any
	// Logger receives debug output. Default: discard.
	Logger *log.Logger
}

// Table renders rows into a mounted HTML table according to a [Spec].
//
// A Table is owned by a single goroutine; it performs no locking.
type Table struct {
	Emitter

	spec      Spec
	data      []Row
	mount     Mount
	plugins   map[string]Plugin
	order     []string
	logger    *log.Logger
	destroyed bool

	attrs AttrsFunc
	head  SectionFunc
	body  SectionFunc
	foot  SectionFunc
}

// New creates a table holding its own copy of spec. spec may be nil, in
// which case it is inferred from the data of the first render. Plugins listed in opts are registered in
// order; the first failure is returned.
func New(spec Spec, opts *Options) (*Table, error) {
	if opts == nil {
		opts = &Options{}
	}
	t := &Table{
		spec:   slices.Clone(spec),
		logger: opts.Logger,
		attrs:  ColumnAttrs,
		head:   RenderHead,
		body:   RenderBody,
		foot:   RenderFoot,
	}
	if t.logger == nil {
		t.logger = log.New(io.Discard)
	}
	for _, f := range opts.Plugins {
		if err := t.AddPlugin(f, opts.PluginOptions[f.Name]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Load replaces the stored data with a shallow copy of data. It does not
// render and leaves the spec untouched.
func (t *Table) Load(data []Row) error {
	if t.destroyed {
		return ErrDestroyed
	}
	t.data = slices.Clone(data)
	t.logger.Debug("data loaded", "rows", len(data))
	return nil
}

// Data returns the stored rows.
func (t *Table) Data() []Row {
	return slices.Clone(t.data)
}

// Spec returns the cached spec, including disabled columns. It is nil until
// a spec is given or inferred.
func (t *Table) Spec() Spec {
	return slices.Clone(t.spec)
}

// SetSpec replaces the cached spec with a copy of spec. A nil spec is
// inferred again on the next render.
func (t *Table) SetSpec(spec Spec) {
	t.spec = slices.Clone(spec)
}

// Field returns the first column of the full spec whose Field is name. The
// pointer addresses the cached column, so changes affect later renders.
func (t *Table) Field(name string) (*Column, bool) {
	for i := range t.spec {
		if t.spec[i].Field == name {
			return &t.spec[i], true
		}
	}
	return nil, false
}

// Render renders the stored data.
func (t *Table) Render() error {
	return t.render(t.data)
}

// RenderData renders data without storing it. A nil data renders the stored
// rows.
func (t *Table) RenderData(data []Row) error {
	if data == nil {
		data = t.data
	}
	return t.render(data)
}

func (t *Table) render(data []Row) error {
	if t.destroyed {
		return ErrDestroyed
	}
	if t.spec == nil {
		t.spec = InferSpec(data)
		t.logger.Debug("spec inferred", "columns", len(t.spec))
	}
	spec := t.spec.Active()

	// Build every fragment before touching the mount.
	var sections []Section
	for _, s := range []struct {
		tag string
		fn  SectionFunc
	}{
		{"thead", t.head},
		{"tbody", t.body},
		{"tfoot", t.foot},
	} {
		if content := s.fn(t, data, spec); content != "" {
			sections = append(sections, Section{Tag: s.tag, Content: content})
		}
	}

	t.mount.replace(sections)
	t.logger.Debug("rendered", "rows", len(data), "columns", len(spec), "sections", len(sections))
	return nil
}

// Destroy emits [EventDestroy], empties the mount and drops every
// subscription. The table cannot be used afterwards. Calling Destroy again
// does nothing.
func (t *Table) Destroy() {
	if t.destroyed {
		return
	}
	t.Emit(EventDestroy, t)
	t.mount.Empty()
	t.Clear()
	t.destroyed = true
	t.logger.Debug("destroyed")
}

// Destroyed reports whether Destroy was called.
func (t *Table) Destroyed() bool { return t.destroyed }

// Mount returns the table's root node.
func (t *Table) Mount() *Mount { return &t.mount }

// Find searches the mounted table for elements matching selector.
func (t *Table) Find(selector string) *goquery.Selection {
	return t.mount.Find(selector)
}

// Logger returns the table's logger, for plugins that want to log alongside
// the engine.
func (t *Table) Logger() *log.Logger { return t.logger }

// ColumnAttrs returns the attribute builder in use.
func (t *Table) ColumnAttrs() AttrsFunc { return t.attrs }

// SetColumnAttrs replaces the attribute builder. Callers that decorate the
// default should capture [Table.ColumnAttrs] first and call it.
func (t *Table) SetColumnAttrs(fn AttrsFunc) { t.attrs = fn }

// HeadRenderer returns the header section renderer in use.
func (t *Table) HeadRenderer() SectionFunc { return t.head }

// SetHeadRenderer replaces the header section renderer.
func (t *Table) SetHeadRenderer(fn SectionFunc) { t.head = fn }

// BodyRenderer returns the body section renderer in use.
func (t *Table) BodyRenderer() SectionFunc { return t.body }

// SetBodyRenderer replaces the body section renderer.
func (t *Table) SetBodyRenderer(fn SectionFunc) { t.body = fn }

// FootRenderer returns the footer section renderer in use.
func (t *Table) FootRenderer() SectionFunc { return t.foot }

// SetFootRenderer replaces the footer section renderer.
func (t *Table) SetFootRenderer(fn SectionFunc) { t.foot = fn }
