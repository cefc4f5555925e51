package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"clocksheet/config"
)

var (
	whoamiAPIKey  string
	whoamiTimeout time.Duration
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the Clockify identity and workspace for the configured API key",
	Long: `Fetch the current user from Clockify and resolve the active workspace.

The workspace is the first membership with type WORKSPACE and status ACTIVE;
submit uses the same resolution.`,
	Example: `
  # Identity for the configured API key
  clocksheet whoami

  # Identity for an explicit API key
  clocksheet whoami --api-key <key>
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		client, err := buildClient(cfg, whoamiAPIKey, whoamiTimeout)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), whoamiTimeout)
		defer cancel()

		user, err := client.GetCurrentUser(ctx)
		if err != nil {
			return err
		}

		workspaceID, err := user.ActiveWorkspaceID()
		if err != nil {
			return err
		}

		fmt.Printf("User:      %s (%s)\n", user.Name, user.ID)
		if user.Email != "" {
			fmt.Printf("Email:     %s\n", user.Email)
		}
		fmt.Printf("Workspace: %s\n", workspaceID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)

	whoamiCmd.Flags().StringVar(&whoamiAPIKey, "api-key", "", "Clockify API key (overrides env and config)")
	whoamiCmd.Flags().DurationVar(&whoamiTimeout, "timeout", 30*time.Second, "Timeout per Clockify API operation")
}
