package clockify

import (
	"errors"
	"fmt"
	"strings"
)

// ResolveProject matches a selector against a project listing. An exact ID
// match wins; otherwise the selector is compared case-insensitively against
// project names, with explicit not-found and ambiguity errors.
func ResolveProject(projects []Project, selector string) (Project, error) {
	trimmed := strings.TrimSpace(selector)
	if trimmed == "" {
		return Project{}, errors.New("project selector is required")
	}

	for _, project := range projects {
		if project.ID == trimmed {
			return project, nil
		}
	}

	matches := make([]Project, 0, 1)
	for _, project := range projects {
		if equalName(project.Name, trimmed) {
			matches = append(matches, project)
		}
	}

	if len(matches) == 0 {
		return Project{}, fmt.Errorf("project %q not found", trimmed)
	}
	if len(matches) > 1 {
		return Project{}, fmt.Errorf("project %q is ambiguous (ids: %s)", trimmed, projectIDs(matches))
	}
	return matches[0], nil
}

// ResolveTask matches a selector against a task listing, same rules as
// ResolveProject.
func ResolveTask(tasks []Task, selector string) (Task, error) {
	trimmed := strings.TrimSpace(selector)
	if trimmed == "" {
		return Task{}, errors.New("task selector is required")
	}

	for _, task := range tasks {
		if task.ID == trimmed {
			return task, nil
		}
	}

	matches := make([]Task, 0, 1)
	for _, task := range tasks {
		if equalName(task.Name, trimmed) {
			matches = append(matches, task)
		}
	}

	if len(matches) == 0 {
		return Task{}, fmt.Errorf("task %q not found", trimmed)
	}
	if len(matches) > 1 {
		return Task{}, fmt.Errorf("task %q is ambiguous (ids: %s)", trimmed, taskIDs(matches))
	}
	return matches[0], nil
}

func equalName(a, b string) bool {
	return strings.EqualFold(normalize(a), normalize(b))
}

func normalize(value string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(value)), " ")
}

func projectIDs(values []Project) string {
	ids := make([]string, 0, len(values))
	for _, value := range values {
		ids = append(ids, value.ID)
	}
	return strings.Join(ids, ", ")
}

func taskIDs(values []Task) string {
	ids := make([]string, 0, len(values))
	for _, value := range values {
		ids = append(ids, value.ID)
	}
	return strings.Join(ids, ", ")
}
