package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	maxWalkDepth = 25
)

// Config represents the exprql configuration from exprql.yaml.
type Config struct {
	// Dialect renders placeholders and gates features: postgres, sqlite,
	// mariadb or mssql.
	Dialect string `mapstructure:"dialect" json:"dialect"`

	// Schema is an optional table catalog; when set every table and column
	// in a document must exist in it.
	Schema string `mapstructure:"schema" json:"schema,omitempty"`

	Render RenderConfig `mapstructure:"render" json:"render"`
}

// RenderConfig holds render command settings.
type RenderConfig struct {
	Args   bool   `mapstructure:"args" json:"args"`
	Format string `mapstructure:"format" json:"format"`
}

// LoadConfig discovers and loads configuration with proper precedence:
// flags > env > config file > defaults.
//
// Returns the loaded config, the path to the config file (empty if none found),
// and any error encountered.
func LoadConfig(explicitConfigPath string) (*Config, string, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("EXPRQL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, err := findConfigFile(explicitConfigPath)
	if err != nil {
		return nil, "", err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, fmt.Errorf("unmarshaling config: %w", err)
	}

	if _, err := DialectByName(cfg.Dialect); err != nil {
		return nil, configPath, err
	}
	if cfg.Render.Format != "text" && cfg.Render.Format != "yaml" {
		return nil, configPath, fmt.Errorf("render.format must be text or yaml, got %q", cfg.Render.Format)
	}

	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dialect", "postgres")
	v.SetDefault("schema", "")
	v.SetDefault("render.args", true)
	v.SetDefault("render.format", "text")
}

// findConfigFile finds the config file to use.
// If explicitPath is provided, it validates the file exists.
// Otherwise, it walks up from cwd looking for exprql.yaml or exprql.yml,
// stopping at a .git directory or after maxWalkDepth levels.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting cwd: %w", err)
	}

	dir := cwd
	for i := 0; i < maxWalkDepth; i++ {
		for _, name := range []string{"exprql.yaml", "exprql.yml"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break // Stop at repo root
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", nil // No config found, use defaults
}

// ResolvedDialect returns the flag value when set, else the configured one.
func (c *Config) ResolvedDialect(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return c.Dialect
}
