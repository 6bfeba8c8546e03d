package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"unitlite/runner"
)

// ProgressBar draws run progress. It observes the runner and advances on
// every result.
type ProgressBar struct {
	bar     *progressbar.ProgressBar
	success int
	failed  int
}

// NewProgressBar creates a progress bar for count tests drawing to w
// (normally os.Stderr so stdout stays the result stream).
func NewProgressBar(count int, w io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

func describe(success, failed int) string {
	return color.CyanString("Running tests: ") +
		color.GreenString("[success: %d", success) +
		" | " +
		color.RedString("failed: %d]", failed)
}

// Observe implements runner.Observer
func (p *ProgressBar) Observe(result runner.Result) {
	if result.Failed() {
		p.failed++
	} else {
		p.success++
	}
	p.bar.Describe(describe(p.success, p.failed))
	_ = p.bar.Set(p.success + p.failed)
}

// Counts returns the number of passed and failed results seen so far
func (p *ProgressBar) Counts() (success, failed int) {
	return p.success, p.failed
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	_ = p.bar.Finish()
}
