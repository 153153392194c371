package cmd

import (
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cloudtally/cmd/list"
	"cloudtally/cmd/providers"
	"cloudtally/cmd/scan"
	"cloudtally/cmd/version"
	"cloudtally/internal/config"
	"cloudtally/internal/logging"
)

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	var (
		logLevel   string
		configFile string
	)

	// Initialize config
	if err := config.InitConfig(); err != nil {
		return err
	}

	// Create default config if it doesn't exist
	if err := config.CreateDefaultConfig(); err != nil {
		return err
	}

	rootCmd := &cobra.Command{
		Use:   "cloudtally",
		Short: "CloudTally - multi-cloud compute resource inventory",
		Long: `CloudTally counts compute resources across AWS, Azure, and GCP.
It scans every accessible region, subscription, or project and reports
per-provider and combined totals for VMs, cluster nodes, containers,
serverless functions, and batch nodes.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Set config file if specified
			if configFile != "" {
				config.SetConfigFile(configFile)
			}

			// Config file and env values apply wherever the flag was
			// left at its default.
			flags := cmd.Root().PersistentFlags()
			if !flags.Changed("max-workers") {
				config.Config.MaxWorkers = viper.GetInt("app.max_workers")
			}
			if !flags.Changed("log-format") {
				config.Config.LogFormat = viper.GetString("app.log_format")
			}
			if !flags.Changed("log-level") {
				logLevel = viper.GetString("app.log_level")
			}
			if !flags.Changed("scope-timeout") {
				config.Config.ScopeTimeout = viper.GetDuration("scan.scope_timeout")
			}
			if !flags.Changed("profile") {
				config.Config.AWSProfile = viper.GetString("aws.profile")
			}

			logFormat := logging.Text
			if config.Config.LogFormat == "json" {
				logFormat = logging.JSON
			}

			logging.Configure(logging.LogConfig{
				Level:  logging.ParseLevel(logLevel),
				Format: logFormat,
			})
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().StringVarP(&config.Config.AWSProfile, "profile", "p", "default", "AWS profile to use (supports SSO profiles)")
	rootCmd.PersistentFlags().IntVar(&config.Config.MaxWorkers, "max-workers", runtime.NumCPU()*4, "Maximum number of concurrent workers")
	rootCmd.PersistentFlags().DurationVar(&config.Config.ScopeTimeout, "scope-timeout", 2*time.Minute, "Timeout for one collector against one scope")
	rootCmd.PersistentFlags().StringVar(&config.Config.LogFormat, "log-format", "text", "Log output format (text or json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "INFO",
		"Set logging level (DEBUG, INFO, WARN, ERROR)")

	// Add commands
	rootCmd.AddCommand(scan.NewScanCmd())
	rootCmd.AddCommand(providers.NewAWSCmd())
	rootCmd.AddCommand(providers.NewAzureCmd())
	rootCmd.AddCommand(providers.NewGCPCmd())
	rootCmd.AddCommand(list.NewListCmd())
	rootCmd.AddCommand(version.NewVersionCmd())

	return rootCmd.Execute()
}
