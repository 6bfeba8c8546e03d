package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"unitlite/runner"
)

const (
	passMarker = "✓ Pass"
	failMarker = "✖ Fail"
)

// ConsoleSink returns a runner sink that writes lines to w with coloured
// pass/fail markers. Only the marker is coloured; with colour disabled the
// output is byte-for-byte the plain line.
func ConsoleSink(w io.Writer) runner.Sink {
	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)

	return func(line string) {
		switch {
		case strings.HasPrefix(line, passMarker):
			line = green.Sprint(passMarker) + strings.TrimPrefix(line, passMarker)
		case strings.HasPrefix(line, failMarker):
			line = red.Sprint(failMarker) + strings.TrimPrefix(line, failMarker)
		}
		fmt.Fprintln(w, line)
	}
}
