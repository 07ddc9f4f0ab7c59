package config

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"weeklog/internal/timeutil"
)

const (
	KeyDatabasePath  = "database.path"
	KeyServerPort    = "server.port"
	KeyWeekAnchorDay = "week.anchor_day"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Server   ServerConfig   `mapstructure:"server"`
	Week     WeekConfig     `mapstructure:"week" validate:"required"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type ServerConfig struct {
	Port int `mapstructure:"port" validate:"gte=1,lte=65535"`
}

type WeekConfig struct {
	// AnchorDay is the weekday a user must pick when selecting a week; the
	// stored week start is the day after it.
	AnchorDay string `mapstructure:"anchor_day" validate:"required"`
}

// AnchorWeekday returns the parsed anchor day. Call only on a validated config.
func (c *Config) AnchorWeekday() time.Weekday {
	day, err := timeutil.ParseWeekday(c.Week.AnchorDay)
	if err != nil {
		return time.Saturday
	}
	return day
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
	return `# weeklog configuration
database:
  path: "./weeklog.db"

server:
  port: 8080

week:
  # Weekday the user picks to identify a week; the stored week start is the
  # day after it.
  anchor_day: "saturday"
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
	if _, err := timeutil.ParseWeekday(cfg.Week.AnchorDay); err != nil {
		return nil, fmt.Errorf("validation failed: week.anchor_day: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabasePath, "./weeklog.db")
	v.SetDefault(KeyServerPort, 8080)
	v.SetDefault(KeyWeekAnchorDay, "saturday")
}
