package output

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// NewProgress returns a progress bar for tracking provider scans. It writes
// to stderr so piped stdout output stays machine-readable, and stays silent
// when stderr is not a terminal.
func NewProgress(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetVisibility(isTerminal(os.Stderr)),
	)
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
