package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"clocksheet/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clocksheet",
	Short: "Import a monthly attendance sheet and submit it to Clockify as time entries.",
	Long: `
**********************************************
*              CLOCK SHEET                   *
**********************************************

This CLI fetches a month of attendance data from a CSV sheet (published
Google Sheets export URL or local file), turns each day's morning and
afternoon shifts into billable time entries, and submits them to Clockify
one at a time, in sheet order.

Sheet layout per row (row N = day N of the month):
  morning start, morning end, afternoon start, afternoon end, ..., description
`,
	Example: `
  # Create configuration file
  clocksheet config create

  # Check identity and workspace for the configured API key
  clocksheet whoami

  # List projects, then tasks of one project
  clocksheet projects
  clocksheet tasks --project "Survey 2024"

  # Preview the assembled entries for March 2024
  clocksheet preview --sheet-url "https://docs.google.com/.../export?format=csv" --month 2024-03

  # Export the preview to a file
  clocksheet preview --sheet-file ./march.csv --month 2024-03 --output ./march-entries.xlsx

  # Submit the month to Clockify
  clocksheet submit --month 2024-03 --project "Survey 2024" --task "Fieldwork"
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

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.clocksheet.yaml, then ./.clocksheet.yaml)")
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

		// Search config in home directory with name ".clocksheet" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".clocksheet")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found. Create one first with: clocksheet config create")
	}
}
