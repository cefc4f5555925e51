package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"clocksheet/clockify"
	"clocksheet/config"
)

var (
	tasksProject string
	tasksAPIKey  string
	tasksTimeout time.Duration
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List the tasks of one project",
	Long:  `List the tasks of a project, selected by id or by (case-insensitive) name.`,
	Example: `
  # Tasks of a project by name
  clocksheet tasks --project "Survey 2024"

  # Tasks of a project by id
  clocksheet tasks --project 5b715612b079875110792222
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		client, err := buildClient(cfg, tasksAPIKey, tasksTimeout)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), tasksTimeout)
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
		project, err := clockify.ResolveProject(projects, tasksProject)
		if err != nil {
			return err
		}

		tasks, err := client.ListTasks(ctx, workspaceID, project.ID)
		if err != nil {
			return err
		}

		if len(tasks) == 0 {
			fmt.Printf("No tasks found for project %s.\n", project.Name)
			return nil
		}
		for _, task := range tasks {
			fmt.Printf("%s  %s\n", task.ID, task.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tasksCmd)

	tasksCmd.Flags().StringVar(&tasksProject, "project", "", "Project id or name")
	tasksCmd.Flags().StringVar(&tasksAPIKey, "api-key", "", "Clockify API key (overrides env and config)")
	tasksCmd.Flags().DurationVar(&tasksTimeout, "timeout", 30*time.Second, "Timeout per Clockify API operation")

	_ = tasksCmd.MarkFlagRequired("project")
}
