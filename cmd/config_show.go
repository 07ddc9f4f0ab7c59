package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"weeklog/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  weeklog config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file in use; showing defaults.")
		}
		fmt.Println("Configuration:")
		fmt.Printf("database.path: %s\n", cfg.Database.Path)
		fmt.Printf("server.port: %d\n", cfg.Server.Port)
		fmt.Printf("week.anchor_day: %s\n", cfg.Week.AnchorDay)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
