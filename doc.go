// Package tabler renders rows of data as HTML tables from a declarative
// column spec.
//
// A [Table] owns a [Spec], the loaded rows and a mounted root node. Rendering
// is synchronous: the header, body and footer fragments are built first and
// then swapped into the mount in one step, so a failed render leaves the
// previous content in place.
//
//	t, err := tabler.New(tabler.Spec{
//		{Field: "id", Name: "ID"},
//		{Field: "name", Name: "Name", DefaultText: "(none)"},
//	}, nil)
//	t.Load(rows)
//	t.Render()
//	fmt.Println(t.Mount().HTML())
//
// # Columns
//
// A [Column] reads one row field. Optional fields shape the output:
//
//   - Name / HeaderFormatter — header label; the header row is omitted when
//     no active column has one
//   - DefaultText — replaces empty values (nil, "", NaN); see [IsEmpty]
//   - Formatter — renders the value after default substitution
//   - Width / ClassName — emitted as width and class attributes
//   - Disabled — column stays addressable via [Table.Field] but is not rendered
//
// Without a spec, the first render infers one with [InferSpec]. The inferred
// column order is unspecified.
//
// # Extension
//
// Every rendering hook is replaceable per table: [Table.SetColumnAttrs],
// [Table.SetHeadRenderer], [Table.SetBodyRenderer] and
// [Table.SetFootRenderer]. Plugins ([Plugin], [Factory]) are attached with
// [Table.AddPlugin] and usually chain one of these hooks. The embedded
// [Emitter] provides On, Off and Emit; the engine itself emits only
// [EventDestroy].
//
// # Specs as documents
//
// [DecodeSpec] and [LoadSpecFile] read specs written in YAML, TOML or JSON,
// resolving formatter names through a [Formatters] registry.
//
// # Errors
//
//   - [ErrConfiguration] — invalid plugin factory or duplicate plugin name
//   - [ErrDestroyed] — operation on a destroyed table
//   - [ErrUnsupportedFormat] — unknown document or output format
//   - [ErrUnknownFormatter] — spec document references an unregistered formatter
//
// Panics raised by formatters or attribute builders are not recovered.
package tabler
