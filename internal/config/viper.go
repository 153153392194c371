package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"cloudtally/internal/logging"
)

// InitConfig initializes the Viper configuration
func InitConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Current directory first, then the user config directory
	viper.AddConfigPath(".")
	if homeDir, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(homeDir, ".cloudtally"))
	}

	viper.SetEnvPrefix("CLOUDTALLY")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault("app.max_workers", Config.MaxWorkers)
	viper.SetDefault("app.log_format", "text")
	viper.SetDefault("app.log_level", "INFO")
	viper.SetDefault("scan.providers", "aws,azure,gcp")
	viper.SetDefault("scan.resources", "")
	viper.SetDefault("scan.output", "")
	viper.SetDefault("scan.format", "json")
	viper.SetDefault("scan.scope_timeout", "2m")
	viper.SetDefault("scan.provider_timeout", "30m")
	viper.SetDefault("aws.profile", "default")
	viper.SetDefault("aws.regions", "")
	viper.SetDefault("azure.subscription", "")
	viper.SetDefault("gcp.project", "")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Missing config file is fine; defaults and env vars apply.
	}

	return nil
}

// SetConfigFile sets a custom config file path and reloads the configuration
func SetConfigFile(configFile string) error {
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// CreateDefaultConfig creates a default config file if it doesn't exist
func CreateDefaultConfig() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("error getting home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".cloudtally")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		defaultConfig := []byte(`# CloudTally Configuration File

# Application Configuration
app:
  max_workers: 8    # Maximum number of concurrent workers per provider scan
  log_format: text  # Log output format (text or json)
  log_level: INFO   # Logging level (DEBUG, INFO, WARN, ERROR)

# Scan Configuration
scan:
  providers: aws,azure,gcp  # Providers to include in multi-cloud scans
  resources: ""             # Resource kind filter (default: all kinds)
  format: json              # Export format (json or csv)
  scope_timeout: 2m         # Deadline for one collector call in one scope
  provider_timeout: 30m     # Deadline for one whole provider scan

# Provider Configuration
aws:
  profile: default  # AWS credential profile
  regions: ""       # Comma-separated region override (default: all enabled regions)
azure:
  subscription: ""  # Subscription ID override (default: all enabled subscriptions)
gcp:
  project: ""       # Project ID override (default: all reachable projects)
`)
		if err := os.WriteFile(configPath, defaultConfig, 0644); err != nil {
			return fmt.Errorf("error writing default config: %w", err)
		}
		logging.Debug("Created default config file", map[string]interface{}{
			"path": configPath,
		})
	}

	return nil
}
