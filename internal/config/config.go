package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/admissions/internal/table"
)

// Config holds application configuration.
type Config struct {
	Dataset DatasetConfig
	Table   TableConfig
	UI      UIConfig
	Export  ExportConfig
	Log     LogConfig
}

// DatasetConfig selects where the roster is read from.
type DatasetConfig struct {
	Source string
	Path   string
}

// TableConfig holds the initial sort of the candidate table.
type TableConfig struct {
	SortField     string `mapstructure:"sort_field"`
	SortDirection string `mapstructure:"sort_direction"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title     string
	AltScreen bool `mapstructure:"alt_screen"`
	Mouse     bool
}

// ExportConfig holds the application export destination.
type ExportConfig struct {
	Dir string
}

// LogConfig holds logger settings.
type LogConfig struct {
	Path  string
	Level string
}

const (
	SourceSample = "sample"
	SourceYAML   = "yaml"
	SourceSQLite = "sqlite"
)

var ErrInvalid = errors.New("invalid config")

// DefaultPath is the config file used when neither the flag nor ADMISSIONS_CONFIG is set.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "admissions", "config.toml")
}

// ResolvePath picks the config file: the given path, then ADMISSIONS_CONFIG,
// then DefaultPath.
func ResolvePath(path string) string {
	if path != "" {
		return path
	}
	if env := os.Getenv("ADMISSIONS_CONFIG"); env != "" {
		return env
	}
	return DefaultPath()
}

func setDefaults(v *viper.Viper) {
	home := os.Getenv("HOME")
	v.SetDefault("dataset.source", SourceSample)
	v.SetDefault("dataset.path", "")
	v.SetDefault("table.sort_field", "appliedDate")
	v.SetDefault("table.sort_direction", "desc")
	v.SetDefault("ui.title", "Admissions Dashboard")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("export.dir", filepath.Join(home, "admissions", "exports"))
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "admissions", "admissions.log"))
	v.SetDefault("log.level", "info")
}

// Defaults returns the built-in settings without reading any file or env.
func Defaults() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// Load reads configuration from file and env. Env var overrides use prefix ADMISSIONS_.
// The file is chosen by ResolvePath. A missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetConfigFile(ResolvePath(path))

	v.SetEnvPrefix("ADMISSIONS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Validate checks values that would otherwise fail later at startup.
func (c Config) Validate() error {
	if _, _, err := c.Table.Sort(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch strings.ToLower(c.Dataset.Source) {
	case SourceSample:
	case SourceYAML, SourceSQLite:
		if strings.TrimSpace(c.Dataset.Path) == "" {
			return fmt.Errorf("%w: dataset.path is required for source %q", ErrInvalid, c.Dataset.Source)
		}
	default:
		return fmt.Errorf("%w: unknown dataset.source %q", ErrInvalid, c.Dataset.Source)
	}
	if strings.TrimSpace(c.Export.Dir) == "" {
		return fmt.Errorf("%w: export.dir is empty", ErrInvalid)
	}
	return nil
}

// Sort resolves the configured initial sort.
func (t TableConfig) Sort() (table.Field, table.Direction, error) {
	f, err := table.ParseField(t.SortField)
	if err != nil {
		return table.FieldNone, table.Ascending, fmt.Errorf("table.sort_field: %w", err)
	}
	d, err := table.ParseDirection(t.SortDirection)
	if err != nil {
		return table.FieldNone, table.Ascending, fmt.Errorf("table.sort_direction: %w", err)
	}
	return f, d, nil
}

// Save writes the provided config to path, creating the config directory if needed.
func Save(path string, cfg Config) error {
	path = ResolvePath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("dataset.source", cfg.Dataset.Source)
	v.Set("dataset.path", cfg.Dataset.Path)
	v.Set("table.sort_field", cfg.Table.SortField)
	v.Set("table.sort_direction", cfg.Table.SortDirection)
	v.Set("ui.title", cfg.UI.Title)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)
	v.Set("ui.mouse", cfg.UI.Mouse)
	v.Set("export.dir", cfg.Export.Dir)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
