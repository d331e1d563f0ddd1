package internal

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Storage driver names accepted in configuration.
const (
	StorageDriverCSV    = "csv"
	StorageDriverSQLite = "sqlite"
)

// Config represents the Coffer configuration
type Config struct {
	// Ledger storage configuration
	Storage struct {
		Driver string `mapstructure:"driver"` // "csv" or "sqlite"
		Path   string `mapstructure:"path"`   // Path to the ledger file
	} `mapstructure:"storage"`

	// Currency presentation
	Currency struct {
		Symbol string `mapstructure:"symbol"` // Prefix for displayed amounts, e.g. "$"
	} `mapstructure:"currency"`

	// Logging configuration
	Log struct {
		Level  string `mapstructure:"level"`  // debug, info, warn or error
		Format string `mapstructure:"format"` // text or json
	} `mapstructure:"log"`
}

// LoadConfig loads the configuration from defaults, an optional config
// file, and COFFER_-prefixed environment variables. An explicitly given
// config file must exist; the default search locations may all be empty.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaultConfig(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		// Look for config in the current directory and the user config dir
		v.AddConfigPath(".")
		v.AddConfigPath(DefaultConfigPath)
		v.SetConfigName("config")
		v.SetConfigType("json")
	}

	// Read the config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if the config file doesn't exist
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Override with environment variables prefixed with COFFER_
	v.SetEnvPrefix("COFFER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Parse the configuration
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	switch config.Storage.Driver {
	case StorageDriverCSV, StorageDriverSQLite:
	default:
		return nil, fmt.Errorf("unknown storage driver %q, must be %q or %q",
			config.Storage.Driver, StorageDriverCSV, StorageDriverSQLite)
	}
	if config.Storage.Path == "" {
		config.Storage.Path = defaultStoragePath(config.Storage.Driver)
	}

	return &config, nil
}

// setDefaultConfig sets default configuration values
func setDefaultConfig(v *viper.Viper) {
	// Storage defaults; the path default depends on the chosen driver and
	// is resolved after unmarshalling. The empty default registers the key
	// so the environment override is picked up.
	v.SetDefault("storage.driver", StorageDriverCSV)
	v.SetDefault("storage.path", "")

	// Presentation defaults
	v.SetDefault("currency.symbol", "$")

	// Logging defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// defaultStoragePath returns the ledger file used when no path is
// configured for the given driver.
func defaultStoragePath(driver string) string {
	if driver == StorageDriverSQLite {
		return DefaultSQLitePath
	}
	return DefaultCSVPath
}
