package clockify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public Clockify REST API root.
	DefaultBaseURL = "https://api.clockify.me/api/v1"

	// timeLayout is the wire format for time entry endpoints. Values are
	// local wall-clock instants written without offset conversion.
	timeLayout = "2006-01-02T15:04:05Z"

	apiKeyHeader = "X-Api-Key"
)

// Client defines the Clockify API operations the pipeline depends on.
type Client interface {
	GetCurrentUser(ctx context.Context) (User, error)
	ListProjects(ctx context.Context, workspaceID string) ([]Project, error)
	ListTasks(ctx context.Context, workspaceID, projectID string) ([]Task, error)
	CreateTimeEntry(ctx context.Context, workspaceID string, entry NewTimeEntry) (TimeEntry, error)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type ClientConfig struct {
	BaseURL    string
	APIKey     string
	UserAgent  string
	HTTPClient httpDoer
}

type HTTPClient struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient httpDoer
}

func NewClient(cfg ClientConfig) (*HTTPClient, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	parsedBase, err := url.Parse(baseURL)
	if err != nil || parsedBase.Scheme == "" || parsedBase.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", cfg.BaseURL)
	}

	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("API key is required")
	}

	doer := cfg.HTTPClient
	if doer == nil {
		doer = &http.Client{Timeout: 30 * time.Second}
	}

	return &HTTPClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		userAgent:  strings.TrimSpace(cfg.UserAgent),
		httpClient: doer,
	}, nil
}

// Membership links a user to a workspace (or other container) with a status.
type Membership struct {
	TargetID         string `json:"targetId"`
	MembershipType   string `json:"membershipType"`
	MembershipStatus string `json:"membershipStatus"`
}

type User struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Memberships []Membership `json:"memberships"`
}

// ActiveWorkspaceID returns the target of the first membership with type
// WORKSPACE and status ACTIVE.
func (u User) ActiveWorkspaceID() (string, error) {
	for _, membership := range u.Memberships {
		if membership.MembershipType == "WORKSPACE" && membership.MembershipStatus == "ACTIVE" {
			return membership.TargetID, nil
		}
	}
	return "", fmt.Errorf("user %q has no active workspace membership", u.ID)
}

type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Task struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// WallClock marshals a local wall-clock instant in the Clockify wire layout
// without converting to UTC.
type WallClock struct {
	time.Time
}

func (w WallClock) MarshalJSON() ([]byte, error) {
	return []byte(`"` + w.Format(timeLayout) + `"`), nil
}

func (w *WallClock) UnmarshalJSON(data []byte) error {
	text := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if text == "" || text == "null" {
		*w = WallClock{}
		return nil
	}
	parsed, err := time.ParseInLocation(timeLayout, text, time.Local)
	if err != nil {
		return fmt.Errorf("parse time %q: %w", text, err)
	}
	*w = WallClock{Time: parsed}
	return nil
}

// NewTimeEntry is the create-time-entry request body.
type NewTimeEntry struct {
	Start       WallClock `json:"start"`
	Billable    bool      `json:"billable"`
	Description string    `json:"description"`
	ProjectID   string    `json:"projectId"`
	TaskID      string    `json:"taskId"`
	End         WallClock `json:"end"`
	TagIDs      []string  `json:"tagIds"`
}

// TimeEntry is the remote-assigned record returned on creation.
type TimeEntry struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	WorkspaceID string `json:"workspaceId"`
	ProjectID   string `json:"projectId"`
	TaskID      string `json:"taskId"`
}

func (c *HTTPClient) GetCurrentUser(ctx context.Context) (User, error) {
	var out User
	if err := c.doJSON(ctx, http.MethodGet, "/user", nil, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

func (c *HTTPClient) ListProjects(ctx context.Context, workspaceID string) ([]Project, error) {
	if strings.TrimSpace(workspaceID) == "" {
		return nil, errors.New("workspace id is required")
	}
	var out []Project
	path := fmt.Sprintf("/workspaces/%s/projects", url.PathEscape(workspaceID))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListTasks(ctx context.Context, workspaceID, projectID string) ([]Task, error) {
	if strings.TrimSpace(workspaceID) == "" || strings.TrimSpace(projectID) == "" {
		return nil, errors.New("workspace and project ids are required")
	}
	var out []Task
	path := fmt.Sprintf(
		"/workspaces/%s/projects/%s/tasks",
		url.PathEscape(workspaceID),
		url.PathEscape(projectID),
	)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateTimeEntry(ctx context.Context, workspaceID string, entry NewTimeEntry) (TimeEntry, error) {
	if strings.TrimSpace(workspaceID) == "" {
		return TimeEntry{}, errors.New("workspace id is required")
	}
	var out TimeEntry
	path := fmt.Sprintf("/workspaces/%s/time-entries", url.PathEscape(workspaceID))
	if err := c.doJSON(ctx, http.MethodPost, path, entry, &out); err != nil {
		return TimeEntry{}, err
	}
	return out, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, endpointPath string, body any, out any) error {
	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpointPath, bodyReader)
	if err != nil {
		return fmt.Errorf("create request %s %s: %w", method, endpointPath, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, endpointPath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		responseBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf(
			"request %s %s failed with status %d: %s",
			method,
			endpointPath,
			resp.StatusCode,
			strings.TrimSpace(string(responseBody)),
		)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response %s %s: %w", method, endpointPath, err)
	}
	return nil
}
