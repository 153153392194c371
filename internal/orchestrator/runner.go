package orchestrator

import (
	"context"
	"os"
	"os/exec"
	"strings"
)

// Runner executes a single provider scan and writes its report as JSON to
// outputPath. The exec-based implementation re-invokes this binary; tests
// substitute an in-process fake.
type Runner interface {
	Run(ctx context.Context, provider string, outputPath string, opts Options) error
}

// ExecRunner runs provider scans as child processes of the current binary.
// Each provider gets its own process so a crash or hang in one provider's
// SDK cannot take down the others.
type ExecRunner struct{}

// Run implements Runner
func (r *ExecRunner) Run(ctx context.Context, provider string, outputPath string, opts Options) error {
	executable, err := os.Executable()
	if err != nil {
		return err
	}

	args := []string{provider, "--format", "json", "--output", outputPath}
	if len(opts.Resources) > 0 {
		args = append(args, "--resources", strings.Join(opts.Resources, ","))
	}
	if opts.LogLevel != "" {
		args = append(args, "--log-level", opts.LogLevel)
	}
	args = append(args, scopeArgs(provider, opts)...)

	cmd := exec.CommandContext(ctx, executable, args...)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// scopeArgs translates the per-provider scope overrides into flags on the
// provider subcommand.
func scopeArgs(provider string, opts Options) []string {
	switch provider {
	case "aws":
		if len(opts.AWSRegions) > 0 {
			return []string{"--regions", strings.Join(opts.AWSRegions, ",")}
		}
	case "azure":
		if opts.AzureSubscription != "" {
			return []string{"--subscription", opts.AzureSubscription}
		}
	case "gcp":
		if opts.GCPProject != "" {
			return []string{"--project", opts.GCPProject}
		}
	}
	return nil
}
