// Package plugins provides ready-made tabler plugins.
//
// Each plugin is exposed as a [tabler.Factory] value to pass to
// [tabler.Table.AddPlugin] or [tabler.Options]:
//
//   - [AutoWidth] — sets a width attribute from the widest cell of each column
//   - [Totals] — adds a footer row summing numeric columns
//   - [Toggle] — hides and shows columns in response to "toggle" events
//
// Plugins chain the renderer or attribute builder already installed on the
// table, so several plugins can decorate the same hook in registration
// order.
package plugins
