package runner

import (
	"fmt"
	"io"
	"strings"
)

// Sink receives one report line at a time. A line may itself contain
// newlines. A panicking sink aborts the run.
type Sink func(line string)

// Console is the default sink. It writes each line to standard output.
func Console(line string) {
	fmt.Println(line)
}

// WriterSink returns a sink writing each line to w. Write errors are dropped.
func WriterSink(w io.Writer) Sink {
	return func(line string) {
		fmt.Fprintln(w, line)
	}
}

// Collector buffers lines in memory.
type Collector struct {
	Lines []string
}

// Sink appends line to c.Lines.
func (c *Collector) Sink(line string) {
	c.Lines = append(c.Lines, line)
}

// Text returns the collected lines as the console would have shown them.
func (c *Collector) Text() string {
	var b strings.Builder
	for _, line := range c.Lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Observer is notified of each result after it has been reported.
type Observer interface {
	Observe(result Result)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(result Result)

// Observe calls f(result).
func (f ObserverFunc) Observe(result Result) {
	f(result)
}
