package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"clocksheet/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.
The API key itself is never printed, only whether one is set.`,
	Example: `
  # Show active configuration
  clocksheet config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
			fmt.Println("Configuration:")
			fmt.Printf("clockify.base_url: %s\n", cfg.Clockify.BaseURL)
			fmt.Printf("clockify.api_key: %s\n", describeAPIKey(cfg.Clockify.APIKey))
			fmt.Printf("sheet.url: %s\n", cfg.Sheet.URL)
		}
	},
}

func describeAPIKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	return "(set)"
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
