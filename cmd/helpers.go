package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"clocksheet/clockify"
	"clocksheet/config"
	"clocksheet/sheet"
	"clocksheet/timesheet"
)

const apiKeyEnvVar = "CLOCKIFY_API_KEY"

// buildClient assembles the API client from flag, environment, and config,
// in that precedence order.
func buildClient(cfg *config.Config, apiKeyFlag string, timeout time.Duration) (*clockify.HTTPClient, error) {
	apiKey := firstNonEmpty(apiKeyFlag, os.Getenv(apiKeyEnvVar), cfg.Clockify.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf(
			"no API key configured (set --api-key, %s, or %s in the config file)",
			apiKeyEnvVar,
			config.KeyClockifyAPIKey,
		)
	}

	httpClient := defaultHTTPClient(timeout)
	return clockify.NewClient(clockify.ClientConfig{
		BaseURL:    cfg.Clockify.BaseURL,
		APIKey:     apiKey,
		UserAgent:  "clocksheet/1.0",
		HTTPClient: httpClient,
	})
}

// resolveSource picks the sheet source: an explicit file wins over an
// explicit URL, which wins over the configured URL.
func resolveSource(cfg *config.Config, sheetURLFlag, sheetFileFlag string, timeout time.Duration) (sheet.Source, error) {
	if strings.TrimSpace(sheetFileFlag) != "" {
		return sheet.NewFileSource(sheetFileFlag), nil
	}

	sheetURL := firstNonEmpty(sheetURLFlag, cfg.Sheet.URL)
	if sheetURL == "" {
		return nil, errors.New("no sheet configured (set --sheet-url, --sheet-file, or sheet.url in the config file)")
	}
	return sheet.NewHTTPSource(sheetURL, timeout)
}

// parseMonth accepts "YYYY-MM"; an empty value means the current month.
func parseMonth(value string) (timesheet.MonthContext, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		now := time.Now()
		return timesheet.MonthContext{Year: now.Year(), Month: now.Month()}, nil
	}

	parsed, err := time.ParseInLocation("2006-01", trimmed, time.Local)
	if err != nil {
		return timesheet.MonthContext{}, fmt.Errorf("invalid month %q (expected YYYY-MM)", value)
	}
	return timesheet.MonthContext{Year: parsed.Year(), Month: parsed.Month()}, nil
}

func defaultHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
