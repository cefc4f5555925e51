package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"clocksheet/config"
)

var (
	projectsAPIKey  string
	projectsTimeout time.Duration
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List the projects of the active Clockify workspace",
	Example: `
  # List projects with ids and names
  clocksheet projects
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		client, err := buildClient(cfg, projectsAPIKey, projectsTimeout)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), projectsTimeout)
		defer cancel()

		user, err := client.GetCurrentUser(ctx)
		if err != nil {
			return err
		}
		workspaceID, err := user.ActiveWorkspaceID()
		if err != nil {
			return err
		}

		projects, err := client.ListProjects(ctx, workspaceID)
		if err != nil {
			return err
		}

		if len(projects) == 0 {
			fmt.Println("No projects found.")
			return nil
		}
		for _, project := range projects {
			fmt.Printf("%s  %s\n", project.ID, project.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)

	projectsCmd.Flags().StringVar(&projectsAPIKey, "api-key", "", "Clockify API key (overrides env and config)")
	projectsCmd.Flags().DurationVar(&projectsTimeout, "timeout", 30*time.Second, "Timeout per Clockify API operation")
}
