package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zzft/ftsite/internal/foundation"
	ferrors "github.com/zzft/ftsite/internal/foundation/errors"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "ftsite.yaml"

// Config represents the ftsite tool configuration.
type Config struct {
	Content ContentConfig `yaml:"content"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Site    SiteOverrides `yaml:"site,omitempty"`
}

// ContentConfig locates the documents sidebar links point at.
type ContentConfig struct {
	Root string `yaml:"root"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Content.Root == "" {
		cfg.Content.Root = "docs"
	}
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = "docs/.vitepress/generated"
	}
	if len(cfg.Output.Formats) == 0 {
		cfg.Output.Formats = []OutputFormat{FormatVitePressJSON, FormatHugo}
	}
	cfg.Logging.Level = NormalizeLogLevel(string(cfg.Logging.Level))
	cfg.Logging.Format = NormalizeLogFormat(string(cfg.Logging.Format))
}

// Load reads the configuration at configPath. A missing file yields the
// defaults; .env files are loaded first and ${VAR} references expanded.
func Load(configPath string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read config file").
			WithContext("path", configPath).
			Build()
	}

	return Parse([]byte(os.ExpandEnv(string(data))))
}

// Parse decodes, defaults and validates configuration YAML.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to unmarshal config").Build()
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields defaults cannot repair.
func (c *Config) Validate() error {
	result := foundation.Valid()
	seen := make(map[OutputFormat]bool, len(c.Output.Formats))
	for i, f := range c.Output.Formats {
		field := fmt.Sprintf("output.formats[%d]", i)
		if !f.Valid() {
			result = result.Combine(foundation.Invalid(foundation.NewValidationError(field, "format",
				fmt.Sprintf("unknown format %q, valid options: %v", f, OutputFormatNames()))))
			continue
		}
		if seen[f] {
			result = result.Combine(foundation.Invalid(foundation.NewValidationError(field, "unique",
				fmt.Sprintf("format %q listed twice", f))))
		}
		seen[f] = true
	}
	if c.Site.Search != "" {
		if _, err := c.Site.searchProvider(); err != nil {
			result = result.Combine(foundation.Invalid(foundation.NewValidationError("site.search", "searchprovider", err.Error())))
		}
	}
	return result.ToError("invalid configuration")
}

// Init writes the default configuration to configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ConfigError(fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", configPath)).Build()
	}

	cfg := Default()
	cfg.Site = DefaultSiteOverrides()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	content := append([]byte("# ftsite configuration. Sidebar links are relative to content.root.\n"), data...)
	if err := os.WriteFile(configPath, content, 0o644); err != nil {
		return ferrors.FileSystemError("failed to write config file").
			WithCause(err).
			WithContext("path", configPath).
			Build()
	}
	return nil
}
