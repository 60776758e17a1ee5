// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Company struct {
		Name      string `mapstructure:"name" yaml:"name"`
		Email     string `mapstructure:"email" yaml:"email"`
		Phone     string `mapstructure:"phone" yaml:"phone"`
		Address   string `mapstructure:"address" yaml:"address"`
		RemitTo   string `mapstructure:"remit_to" yaml:"remit_to"`
		PayNowURL string `mapstructure:"pay_now_url" yaml:"pay_now_url"`
		LogoSrc   string `mapstructure:"logo_src" yaml:"logo_src"`
	} `mapstructure:"company" yaml:"company"`

	Output struct {
		Root string `mapstructure:"root" yaml:"root"`
		Zip  bool   `mapstructure:"zip" yaml:"zip"`
	} `mapstructure:"output" yaml:"output"`

	Schema struct {
		AliasFile string `mapstructure:"alias_file" yaml:"alias_file"`
	} `mapstructure:"schema" yaml:"schema"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.ar-statements")
	v.AddConfigPath(".ar-statements")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("AR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Company branding defaults
	v.SetDefault("company.name", "New England Truck Center")
	v.SetDefault("company.email", "netcar@netruckcenter.com")
	v.SetDefault("company.phone", "(603) 778-8158")
	v.SetDefault("company.address", "156 Epping Rd.\nExeter, NH 03833")
	v.SetDefault("company.remit_to",
		"New England Truck Center\n"+
			"Accounts Receivable\n"+
			"156 Epping Rd.\n"+
			"Exeter, NH 03833\n"+
			"Email: netcar@netruckcenter.com\n"+
			"Phone: (603) 778-8158")
	v.SetDefault("company.pay_now_url", "")
	v.SetDefault("company.logo_src", "")

	// Output defaults
	v.SetDefault("output.root", "Customer_Statements")
	v.SetDefault("output.zip", false)

	// Schema defaults
	v.SetDefault("schema.alias_file", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Company.Name == "" {
		return fmt.Errorf("company.name must not be empty")
	}
	if config.Output.Root == "" {
		return fmt.Errorf("output.root must not be empty")
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
