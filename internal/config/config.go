// Package config loads application configuration from a YAML file,
// environment variables, and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App        App        `mapstructure:"app"`
	Catalog    Catalog    `mapstructure:"catalog"`
	Research   Research   `mapstructure:"research"`
	StyleGuide StyleGuide `mapstructure:"style_guide"`
	Output     Output     `mapstructure:"output"`
	History    History    `mapstructure:"history"`
	Generation Generation `mapstructure:"generation"`
	Logging    Logging    `mapstructure:"logging"`
}

// App holds general application configuration.
type App struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	DataDir  string `mapstructure:"data_dir"`
}

// Catalog holds product catalog configuration.
type Catalog struct {
	Directory string `mapstructure:"directory"`
}

// Research holds external research configuration.
type Research struct {
	Timeout   string `mapstructure:"timeout"`
	RateLimit string `mapstructure:"rate_limit"`
	UserAgent string `mapstructure:"user_agent"`
	Enabled   bool   `mapstructure:"enabled"`
}

// StyleGuide holds feedback store configuration.
type StyleGuide struct {
	Path string `mapstructure:"path"`
}

// Output holds content export configuration.
type Output struct {
	Directory string `mapstructure:"directory"`
	Format    string `mapstructure:"format"` // "markdown" or "html"
}

// History holds content history configuration.
type History struct {
	Directory string `mapstructure:"directory"`
}

// Generation holds content generation tuning.
type Generation struct {
	RichFeatures bool `mapstructure:"rich_features"`
	SimilarLimit int  `mapstructure:"similar_limit"`
}

// Logging holds logging configuration.
type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var globalConfig *Config

// Load reads configuration from the given file (or the default search
// paths), environment, and .env.
func Load(configFile string) (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".hiregen")
		viper.SetConfigType("yaml")
	}

	setDefaults()

	viper.SetEnvPrefix("HIREGEN")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	globalConfig = config
	return config, nil
}

// Get returns the global configuration, loading it if necessary.
func Get() *Config {
	if globalConfig == nil {
		config, err := Load("")
		if err != nil {
			panic(fmt.Sprintf("Failed to load configuration: %v", err))
		}
		return config
	}
	return globalConfig
}

// Reset clears the cached configuration. Intended for tests.
func Reset() {
	globalConfig = nil
	viper.Reset()
}

func setDefaults() {
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.data_dir", ".hiregen")

	viper.SetDefault("catalog.directory", "data")

	viper.SetDefault("research.timeout", "15s")
	viper.SetDefault("research.rate_limit", "2s")
	viper.SetDefault("research.user_agent", "")
	viper.SetDefault("research.enabled", true)

	viper.SetDefault("style_guide.path", ".hiregen/style_guide.json")

	viper.SetDefault("output.directory", "output")
	viper.SetDefault("output.format", "markdown")

	viper.SetDefault("history.directory", ".hiregen")

	viper.SetDefault("generation.rich_features", false)
	viper.SetDefault("generation.similar_limit", 10)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}

// ResearchTimeout parses the research timeout, with a sane fallback.
func (c *Config) ResearchTimeout() time.Duration {
	if parsed, err := time.ParseDuration(c.Research.Timeout); err == nil {
		return parsed
	}
	return 15 * time.Second
}

// ResearchRateLimit parses the research rate limit, with a sane fallback.
func (c *Config) ResearchRateLimit() time.Duration {
	if parsed, err := time.ParseDuration(c.Research.RateLimit); err == nil {
		return parsed
	}
	return 2 * time.Second
}

// Convenience accessors.
func GetCatalogDirectory() string { return Get().Catalog.Directory }
func GetStyleGuidePath() string   { return Get().StyleGuide.Path }
func GetOutputDirectory() string  { return Get().Output.Directory }
func GetHistoryDirectory() string { return Get().History.Directory }
