package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var (
	ErrNegativeCount    = errors.New("list.count must not be negative")
	ErrUnknownGenerator = errors.New("unknown generator kind")
	ErrWordBounds       = errors.New("generator word bounds are invalid")
)

// Config holds application configuration.
type Config struct {
	List      ListConfig
	Generator GeneratorConfig
	Log       LogConfig
}

// ListConfig holds list screen settings.
type ListConfig struct {
	Title string
	Count int
}

// GeneratorConfig selects and tunes the random string source.
type GeneratorConfig struct {
	Kind     string
	MinWords int `mapstructure:"min_words"`
	MaxWords int `mapstructure:"max_words"`
}

// LogConfig holds debug logging settings.
type LogConfig struct {
	File string
}

// Load reads configuration from file and env. Env var overrides use prefix REFRESH_LIST_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("list.title", "Random Strings")
	v.SetDefault("list.count", 50)
	v.SetDefault("generator.kind", "lorem")
	v.SetDefault("generator.min_words", 1)
	v.SetDefault("generator.max_words", 5)
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("REFRESH_LIST_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "refresh_list_tui"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("REFRESH_LIST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing default config file is fine, an explicit one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports settings the list screen cannot start with.
func (c Config) Validate() error {
	if c.List.Count < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, c.List.Count)
	}
	switch c.Generator.Kind {
	case "lorem":
		if c.Generator.MinWords < 1 || c.Generator.MaxWords < c.Generator.MinWords {
			return fmt.Errorf("%w: min %d, max %d", ErrWordBounds, c.Generator.MinWords, c.Generator.MaxWords)
		}
	case "words":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGenerator, c.Generator.Kind)
	}
	return nil
}
