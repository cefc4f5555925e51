package sheet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Source provides the raw monthly sheet rows, one slice of cells per row.
type Source interface {
	Rows(ctx context.Context) ([][]string, error)
}

// HTTPSource fetches a published CSV export (e.g. a Google Sheets CSV URL).
type HTTPSource struct {
	url        string
	httpClient *http.Client
}

func NewHTTPSource(rawURL string, timeout time.Duration) (*HTTPSource, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, errors.New("sheet URL is required")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid sheet URL %q", rawURL)
	}

	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &HTTPSource{
		url:        trimmed,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func (s *HTTPSource) Rows(ctx context.Context) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create sheet request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf(
			"fetch sheet %s failed with status %d: %s",
			s.url,
			resp.StatusCode,
			strings.TrimSpace(string(body)),
		)
	}

	rows, err := ParseCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse sheet %s: %w", s.url, err)
	}
	return rows, nil
}

// FileSource reads the same CSV layout from a local file.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: strings.TrimSpace(path)}
}

func (s *FileSource) Rows(_ context.Context) ([][]string, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open sheet file %s: %w", s.path, err)
	}
	defer file.Close()

	rows, err := ParseCSV(file)
	if err != nil {
		return nil, fmt.Errorf("parse sheet file %s: %w", s.path, err)
	}
	return rows, nil
}
