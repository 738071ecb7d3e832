package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjaus/tabler"
	"github.com/bjaus/tabler/plugins"
)

// Output formats for the render command.
const (
	formatHTML = "html"
	formatText = "text"
)

// knownPlugins are the plugins selectable with --plugin.
var knownPlugins = map[string]tabler.Factory{
	plugins.AutoWidthPlugin.Name: plugins.AutoWidthPlugin,
	plugins.TotalsPlugin.Name:    plugins.TotalsPlugin,
	plugins.TogglePlugin.Name:    plugins.TogglePlugin,
}

var borderStyles = map[string]tabler.BorderStyle{
	"rounded": tabler.BorderRounded,
	"ascii":   tabler.BorderASCII,
	"none":    tabler.BorderNone,
}

type renderOpts struct {
	spec    string
	data    string
	output  string
	format  string
	border  string
	plugins []string
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render rows as a table",
		Long: `Render a JSON array of rows as a table.

Without --spec the columns are inferred from the rows. Plugins are attached
in the order given.`,
		Example: `  tabler render --spec columns.yaml --data rows.json
  tabler render --data rows.json --plugin autowidth --plugin totals -o table.html
  cat rows.json | tabler render --format text --border ascii`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runRender(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.spec, "spec", "s", "", "column spec file (.yaml, .yml, .toml, .json)")
	cmd.Flags().StringVarP(&opts.data, "data", "d", "-", "JSON rows file, - for stdin")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatHTML, "output format: html or text")
	cmd.Flags().StringVar(&opts.border, "border", "rounded", "text border: rounded, ascii or none")
	cmd.Flags().StringSliceVarP(&opts.plugins, "plugin", "p", nil, "plugin to attach: "+strings.Join(pluginNames(), ", "))

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, opts renderOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	if opts.format != formatHTML && opts.format != formatText {
		return fmt.Errorf("%w: %q", tabler.ErrUnsupportedFormat, opts.format)
	}
	border, ok := borderStyles[opts.border]
	if !ok {
		return fmt.Errorf("%w: border %q", tabler.ErrUnsupportedFormat, opts.border)
	}

	var spec tabler.Spec
	if opts.spec != "" {
		var err error
		if spec, err = tabler.LoadSpecFile(opts.spec, tabler.DefaultFormatters()); err != nil {
			return err
		}
		logger.Debug("spec loaded", "file", opts.spec, "columns", len(spec))
	}

	factories := make([]tabler.Factory, 0, len(opts.plugins))
	for _, name := range opts.plugins {
		f, ok := knownPlugins[name]
		if !ok {
			return fmt.Errorf("%w: unknown plugin %q", tabler.ErrConfiguration, name)
		}
		factories = append(factories, f)
	}

	rows, err := c.readRows(cmd, opts.data)
	if err != nil {
		return err
	}

	table, err := tabler.New(spec, &tabler.Options{Plugins: factories, Logger: logger})
	if err != nil {
		return err
	}
	defer table.Destroy()

	if err := table.Load(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	w, closeFn, err := c.openOutput(cmd, opts.output)
	if err != nil {
		return err
	}
	defer closeFn()

	if opts.format == formatText {
		err = tabler.WriteText(w, table.Mount(), border)
	} else {
		_, err = fmt.Fprintln(w, table.Mount().HTML())
	}
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %d rows", len(rows)))
	return nil
}

func (c *CLI) readRows(cmd *cobra.Command, path string) ([]tabler.Row, error) {
	if path == "-" {
		return tabler.DecodeRows(c.stdin(cmd))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tabler.DecodeRows(f)
}

func (c *CLI) openOutput(cmd *cobra.Command, path string) (io.Writer, func(), error) {
	if path == "" {
		return c.stdout(cmd), func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func pluginNames() []string {
	names := make([]string, 0, len(knownPlugins))
	for name := range knownPlugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
