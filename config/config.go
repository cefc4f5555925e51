package config

import (
	"bytes"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyClockifyBaseURL = "clockify.base_url"
	KeyClockifyAPIKey  = "clockify.api_key"
	KeySheetURL        = "sheet.url"
)

type Config struct {
	Clockify ClockifyConfig `mapstructure:"clockify" validate:"required"`
	Sheet    SheetConfig    `mapstructure:"sheet"`
}

type ClockifyConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// APIKey may stay empty in the file and be supplied via flag or the
	// CLOCKIFY_API_KEY environment variable.
	APIKey string `mapstructure:"api_key"`
}

type SheetConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# clocksheet configuration
clockify:
  base_url: "https://api.clockify.me/api/v1"
  # api_key: "your-clockify-api-key"

sheet:
  # Published CSV export of the monthly attendance sheet.
  # url: "https://docs.google.com/spreadsheets/d/<id>/export?format=csv"
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyClockifyBaseURL, "https://api.clockify.me/api/v1")
	v.SetDefault(KeyClockifyAPIKey, "")
	v.SetDefault(KeySheetURL, "")
}
