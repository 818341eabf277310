package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cybergodev/jvalue"
)

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Load a YAML, JSON or TOML document and dump it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			path := args[0]

			input, err := detectInput(path, from)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			doc, err := decodeDocument(data, input)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			logger.Debug("document loaded", "path", path, "input", input, "type", doc.TypeStr(), "size", doc.Size())

			enc := jvalue.NewEncoder(cmd.OutOrStdout(),
				jvalue.WithFormat(c.settings.format),
				jvalue.WithConfig(c.settings.library),
			)
			if err := enc.Encode(doc); err != nil {
				return err
			}
			logger.Debug(enc.Summary())
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "input format: yaml, json or toml (default: by file extension)")
	return cmd
}
