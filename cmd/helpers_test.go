package cmd

import (
	"strings"
	"testing"
	"time"

	"clocksheet/config"
	"clocksheet/sheet"
)

func TestParseMonth(t *testing.T) {
	t.Run("parses explicit month", func(t *testing.T) {
		got, err := parseMonth("2024-03")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Year != 2024 || got.Month != time.March {
			t.Fatalf("expected 2024-03, got %d-%d", got.Year, got.Month)
		}
	})

	t.Run("empty value means current month", func(t *testing.T) {
		got, err := parseMonth("  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		now := time.Now()
		if got.Year != now.Year() || got.Month != now.Month() {
			t.Fatalf("expected current month, got %d-%d", got.Year, got.Month)
		}
	})

	t.Run("rejects malformed month", func(t *testing.T) {
		for _, value := range []string{"2024-3", "march 2024", "2024/03", "2024-13"} {
			if _, err := parseMonth(value); err == nil {
				t.Fatalf("expected error for %q", value)
			}
		}
	})
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{name: "first wins", values: []string{"a", "b"}, want: "a"},
		{name: "skips blank values", values: []string{"", "   ", "b"}, want: "b"},
		{name: "trims the winner", values: []string{"  a  "}, want: "a"},
		{name: "all empty", values: []string{"", " "}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstNonEmpty(tt.values...); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestBuildClient(t *testing.T) {
	cfg := &config.Config{
		Clockify: config.ClockifyConfig{
			BaseURL: "https://api.clockify.me/api/v1",
			APIKey:  "from-config",
		},
	}

	t.Run("flag wins over environment and config", func(t *testing.T) {
		t.Setenv(apiKeyEnvVar, "from-env")

		client, err := buildClient(cfg, "from-flag", 10*time.Second)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client == nil {
			t.Fatalf("expected a client")
		}
	})

	t.Run("environment wins over config", func(t *testing.T) {
		t.Setenv(apiKeyEnvVar, "from-env")

		if _, err := buildClient(cfg, "", 10*time.Second); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("fails without any key", func(t *testing.T) {
		t.Setenv(apiKeyEnvVar, "")

		empty := &config.Config{Clockify: config.ClockifyConfig{BaseURL: "https://api.clockify.me/api/v1"}}
		_, err := buildClient(empty, "", 10*time.Second)
		if err == nil {
			t.Fatalf("expected error without an API key")
		}
		if !strings.Contains(err.Error(), apiKeyEnvVar) {
			t.Fatalf("expected error to mention %s, got %q", apiKeyEnvVar, err.Error())
		}
	})
}

func TestResolveSource(t *testing.T) {
	cfg := &config.Config{Sheet: config.SheetConfig{URL: "https://example.com/from-config.csv"}}

	t.Run("file flag wins", func(t *testing.T) {
		src, err := resolveSource(cfg, "https://example.com/from-flag.csv", "./march.csv", 10*time.Second)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := src.(*sheet.FileSource); !ok {
			t.Fatalf("expected file source, got %T", src)
		}
	})

	t.Run("url flag wins over config url", func(t *testing.T) {
		src, err := resolveSource(cfg, "https://example.com/from-flag.csv", "", 10*time.Second)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := src.(*sheet.HTTPSource); !ok {
			t.Fatalf("expected http source, got %T", src)
		}
	})

	t.Run("falls back to config url", func(t *testing.T) {
		if _, err := resolveSource(cfg, "", "", 10*time.Second); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("fails when nothing is configured", func(t *testing.T) {
		empty := &config.Config{}
		if _, err := resolveSource(empty, "", "", 10*time.Second); err == nil {
			t.Fatalf("expected error without a sheet source")
		}
	})
}
