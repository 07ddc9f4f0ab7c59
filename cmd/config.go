package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage weeklog configuration file values.",
	Long: `Create, edit, and display the weeklog configuration file.

The configuration stores application-wide values:
- database.path
- server.port
- week.anchor_day`,
	Example: `
  # Create default config in $HOME/.weeklog.yaml
  weeklog config create

  # Show active config and source file
  weeklog config show

  # Open active config in editor (creates example if missing)
  weeklog config edit
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
