// Package config loads marquee settings from flags, environment, .env files
// and an optional YAML config file.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/agentstation/marquee/pkg/constants"
	"github.com/agentstation/marquee/pkg/errors"
)

// Config holds the application configuration.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Front-end paths
	CategoryPath      string
	UIPath            string
	DriversFile       string
	SoftlistsFile     string
	CategoryExtension string
	Locale            string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// Load reads configuration in order of precedence:
//  1. Command-line flags (applied later with UpdateFromFlags)
//  2. MARQUEE_* environment variables
//  3. .env and .env.local files
//  4. Config file (configFile, or ~/.marquee.yaml / ./.marquee.yaml)
//  5. Defaults
func Load(configFile string) (*Config, error) {
	return LoadFs(afero.NewOsFs(), configFile)
}

// LoadFs is Load reading the config file from fsys.
func LoadFs(fsys afero.Fs, configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetFs(fsys)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.ConfigName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicitly named file must exist; the search paths are optional.
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, errors.NewConfigError("config file", err.Error(), err)
		}
	}

	return &Config{
		Verbose:           v.GetBool("verbose"),
		Quiet:             v.GetBool("quiet"),
		NoColor:           v.GetBool("no_color"),
		Format:            v.GetString("format"),
		ConfigFile:        v.ConfigFileUsed(),
		CategoryPath:      v.GetString("category_path"),
		UIPath:            v.GetString("ui_path"),
		DriversFile:       v.GetString("drivers_file"),
		SoftlistsFile:     v.GetString("softlists_file"),
		CategoryExtension: v.GetString("category_extension"),
		Locale:            v.GetString("locale"),
		LogLevel:          v.GetString("log_level"),
		LogFormat:         v.GetString("log_format"),
		LogOutput:         v.GetString("log_output"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("category_path", constants.DefaultCategoryPath)
	v.SetDefault("ui_path", constants.DefaultUIPath)
	v.SetDefault("category_extension", constants.CategoryExtension)
	v.SetDefault("locale", constants.DefaultLocale)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")
}

// UpdateFromFlags applies parsed command flags over loaded values.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads .env then .env.local. Variables already set in the
// environment are never overwritten.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}
