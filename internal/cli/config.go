package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mps/internal/config"
)

// configCommand creates the config command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Config.Encode(os.Stdout)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath
			if path == "" {
				var err error
				if path, err = config.Path(); err != nil {
					return err
				}
			}
			printKeyValue("config", path)
			if _, err := os.Stat(path); os.IsNotExist(err) {
				printDetail("file does not exist; defaults are in use")
			}
			return nil
		},
	})

	return cmd
}
