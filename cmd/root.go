package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"weeklog/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "weeklog",
	Short: "Record hours worked per day for a calendar week and browse the history.",
	Long: `weeklog records hours worked per day for a calendar week, keyed by a
canonical week-start date, in a local SQLite database.

A week is identified by picking its anchor day (by default the Saturday that
closes the previous week); the record is stored under the following day. Each
week can be recorded exactly once.`,
	Example: `
  # Create configuration file
  weeklog config create

  # Record one week from the command line (pick the anchor Saturday)
  weeklog add --date 2024-01-06 --sunday 8 --monday 8 --tuesday 8 --wednesday 8 --thursday 8 --friday 4

  # Show the recorded history
  weeklog list

  # Start the local web UI
  weeklog serve

  # Bulk-load weeks from a CSV or Excel file
  weeklog import -i ./weeks.csv

  # Export the week table
  weeklog export --mode raw --output ./weeks.csv

  # Export per-weekday totals
  weeklog export --mode summary --output ./summary.xlsx
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.weeklog.yaml, then ./.weeklog.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".weeklog" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".weeklog")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in. Defaults cover every key, so a
	// missing file is not an error.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found, using defaults. Create one with: weeklog config create")
	}
}

// resolveDBPath prefers an explicit --db flag over the configured path.
func resolveDBPath(flagValue, configured string) string {
	if flagValue != "" {
		return flagValue
	}
	return configured
}
