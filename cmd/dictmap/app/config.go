package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/dictmap/pkg/errors"
)

// EnvPrefix namespaces the environment variables dictmap reads.
const EnvPrefix = "DICTMAP"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose    bool
	Quiet      bool
	Format     string
	OutputFile string

	// Config file
	ConfigFile string

	// Inputs
	UML           string
	Terminology   string
	API           string
	APIRoot       string
	Cardinalities string
	Previous      string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (DICTMAP_UML, DICTMAP_FORMAT, ...)
// 3. .env files
// 4. Config file (./.dictmap.yaml or ~/.dictmap.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return loadConfig("")
}

// loadConfig reads configuration using a fresh viper instance so that
// repeated loads do not share state.
func loadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if configFile == "" {
		configFile = v.GetString("config")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigType("yaml")
		v.SetConfigName(".dictmap")
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one must load.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configFile != "" {
			return nil, errors.WrapIO("read", configFile, err)
		}
	}

	config := &Config{
		Verbose:    v.GetBool("verbose"),
		Quiet:      v.GetBool("quiet"),
		Format:     v.GetString("format"),
		OutputFile: v.GetString("output_file"),

		ConfigFile: v.ConfigFileUsed(),

		UML:           v.GetString("uml"),
		Terminology:   v.GetString("terminology"),
		API:           v.GetString("api"),
		APIRoot:       v.GetString("api_root"),
		Cardinalities: v.GetString("cardinalities"),
		Previous:      v.GetString("previous"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", v.GetString("log_level")),
		LogFormat: getEnvOrDefault("LOG_FORMAT", stringOr(v.GetString("log_format"), "auto")),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", stringOr(v.GetString("log_output"), "stderr")),
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet bool, format, logLevel, outputFile string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if outputFile != "" {
		c.OutputFile = outputFile
	}
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set in the environment are never overridden.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
