package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage clocksheet configuration file values.",
	Long: `Create, edit, and display the clocksheet configuration file.

The configuration stores application-wide values:
- clockify.base_url
- clockify.api_key
- sheet.url`,
	Example: `
  # Create default config in $HOME/.clocksheet.yaml
  clocksheet config create

  # Show active config and source file
  clocksheet config show

  # Open active config in editor (creates example if missing)
  clocksheet config edit
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
