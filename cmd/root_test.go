package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudtally/internal/config"
)

func setupRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "cloudtally",
		Run: func(cmd *cobra.Command, args []string) {}, // Add empty Run to handle no command case
	}
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-format", "text", "log format")
	rootCmd.PersistentFlags().String("log-level", "INFO", "log level")
	rootCmd.PersistentFlags().String("profile", "default", "AWS profile")
	rootCmd.PersistentFlags().Int("max-workers", 8, "max workers")
	rootCmd.PersistentFlags().Duration("scope-timeout", 2*time.Minute, "scope timeout")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run:   func(cmd *cobra.Command, args []string) {},
	})

	return rootCmd
}

func TestRootCmdFlagParsing(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "no arguments", args: []string{}},
		{name: "version subcommand", args: []string{"version"}},
		{name: "persistent flags", args: []string{"--profile", "work", "--max-workers", "16", "version"}},
		{name: "scope timeout flag", args: []string{"--scope-timeout", "90s", "version"}},
		{name: "unknown command", args: []string{"teleport"}, wantErr: true},
		{name: "unknown flag", args: []string{"--warp-speed", "version"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd := setupRootCmd()
			buf := new(bytes.Buffer)
			rootCmd.SetOut(buf)
			rootCmd.SetErr(buf)
			rootCmd.SetArgs(tt.args)

			err := rootCmd.Execute()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigFileFeedsGlobalConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configFile, []byte(`
app:
  max_workers: 16
  log_format: json
aws:
  profile: inventory
scan:
  scope_timeout: 90s
`), 0644)
	require.NoError(t, err)

	v := viper.New()
	v.SetConfigFile(configFile)
	require.NoError(t, v.ReadInConfig())

	saved := config.Config
	defer func() { config.Config = saved }()

	config.Config.MaxWorkers = v.GetInt("app.max_workers")
	config.Config.LogFormat = v.GetString("app.log_format")
	config.Config.AWSProfile = v.GetString("aws.profile")
	config.Config.ScopeTimeout = v.GetDuration("scan.scope_timeout")

	assert.Equal(t, 16, config.Config.MaxWorkers)
	assert.Equal(t, "json", config.Config.LogFormat)
	assert.Equal(t, "inventory", config.Config.AWSProfile)
	assert.Equal(t, 90*time.Second, config.Config.ScopeTimeout)
}
