package config

import (
	"runtime"
	"time"
)

// GlobalConfig holds the global configuration for the application
type GlobalConfig struct {
	// MaxWorkers defines the maximum number of concurrent workers used
	// for the scope/kind fan-out within a provider scan
	MaxWorkers int

	// LogFormat is the format for logging (text or json)
	LogFormat string

	// ScopeTimeout bounds one collector call against one scope
	ScopeTimeout time.Duration

	// ProviderTimeout bounds one whole provider scan when invoked by the
	// multi-cloud orchestrator
	ProviderTimeout time.Duration

	// AWSProfile is the AWS credential profile to use
	AWSProfile string
}

// Config is the global configuration instance
var Config = &GlobalConfig{
	MaxWorkers:      runtime.NumCPU() * 4, // Scans are I/O bound
	LogFormat:       "text",
	ScopeTimeout:    2 * time.Minute,
	ProviderTimeout: 30 * time.Minute,
	AWSProfile:      "default",
}
