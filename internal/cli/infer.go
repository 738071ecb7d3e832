package cli

import (
	"github.com/spf13/cobra"

	"github.com/bjaus/tabler"
)

func (c *CLI) inferCommand() *cobra.Command {
	var data, format string

	cmd := &cobra.Command{
		Use:   "infer",
		Short: "Print the column spec inferred from rows",
		Long: `Infer a column spec from a JSON array of rows and print it as a spec
document, ready to be edited and passed to render --spec.`,
		Example: `  tabler infer --data rows.json > columns.yaml
  tabler infer --data rows.json --format toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := tabler.ParseConfigFormat(format)
			if err != nil {
				return err
			}
			rows, err := c.readRows(cmd, data)
			if err != nil {
				return err
			}
			spec := tabler.InferSpec(rows)
			loggerFromContext(cmd.Context()).Debug("spec inferred", "rows", len(rows), "columns", len(spec))
			return tabler.EncodeSpec(c.stdout(cmd), spec, f)
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "-", "JSON rows file, - for stdin")
	cmd.Flags().StringVarP(&format, "format", "f", string(tabler.ConfigYAML), "spec format: yaml, toml or json")

	return cmd
}
