package tabler

import "fmt"

// Plugin is a capability attached to a [Table]. Attach runs synchronously
// during registration; a plugin typically stores the table, subscribes to
// events or chains one of the table's renderers.
type Plugin interface {
	Attach(t *Table) error
}

// Factory describes how to build a plugin. Name identifies the plugin on the
// table and must be unique per table.
type Factory struct {
	Name string
	New  func(options any) Plugin
}

// AddPlugin builds a plugin from f with options, attaches it to the table and
// registers it under f.Name. Nothing is registered when any step fails.
func (t *Table) AddPlugin(f Factory, options any) error {
	if t.destroyed {
		return ErrDestroyed
	}
	if f.Name == "" {
		return fmt.Errorf("%w: plugin must have a name", ErrConfiguration)
	}
	if f.New == nil {
		return fmt.Errorf("%w: plugin %q has no constructor", ErrConfiguration, f.Name)
	}
	if _, ok := t.plugins[f.Name]; ok {
		return fmt.Errorf("%w: plugin %q already registered", ErrConfiguration, f.Name)
	}
	p := f.New(options)
	if p == nil {
		return fmt.Errorf("%w: plugin %q constructor returned nil", ErrConfiguration, f.Name)
	}
	if err := p.Attach(t); err != nil {
		return fmt.Errorf("attach plugin %q: %w", f.Name, err)
	}
	if t.plugins == nil {
		t.plugins = make(map[string]Plugin)
	}
	t.plugins[f.Name] = p
	t.order = append(t.order, f.Name)
	t.logger.Debug("plugin attached", "plugin", f.Name)
	return nil
}

// Plugin returns the plugin registered under name.
func (t *Table) Plugin(name string) (Plugin, bool) {
	p, ok := t.plugins[name]
	return p, ok
}

// Plugins returns the registered plugin names in registration order.
func (t *Table) Plugins() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// PluginAs returns the plugin registered under name as type P.
func PluginAs[P Plugin](t *Table, name string) (P, bool) {
	p, ok := t.plugins[name].(P)
	return p, ok
}
