package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"unitlite/discovery"
	"unitlite/internal/domain"
)

// Formatter formats and displays run output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	white  = color.New(color.FgWhite)
)

const (
	tableTop    = "┌─────────────────────────────────┬─────────────────────────────┐"
	tableDivide = "├─────────────────────────────────┼─────────────────────────────┤"
	tableBottom = "└─────────────────────────────────┴─────────────────────────────┘"
)

// PrintMetaStats displays the statistics of a stored run
func (f *Formatter) PrintMetaStats(output *domain.RunOutput) {
	meta := output.Meta

	fmt.Fprintln(f.out)
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                    Test Execution Statistics                  ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(f.out)

	rows := []struct {
		label string
		value string
		c     *color.Color
	}{
		{"Total Tests", fmt.Sprint(meta.Total), white},
		{"Passed Tests", fmt.Sprint(meta.Passed), green},
		{"Failed Tests", fmt.Sprint(meta.Failed), red},
		{"Duration", fmt.Sprintf("%.2fs", meta.DurationSeconds), white},
		{"Run ID", meta.RunID, white},
		{"Timestamp", meta.Timestamp, white},
	}

	fmt.Fprintln(f.out, tableTop)
	for i, row := range rows {
		fmt.Fprintf(f.out, "│ %-31s │ ", row.label)
		row.c.Fprintf(f.out, "%-27s", row.value)
		fmt.Fprintln(f.out, " │")
		if i < len(rows)-1 {
			fmt.Fprintln(f.out, tableDivide)
		}
	}
	fmt.Fprintln(f.out, tableBottom)

	fmt.Fprintln(f.out)
	if meta.Failed == 0 {
		green.Fprintln(f.out, "✓ All tests passed!")
		return
	}

	red.Fprintf(f.out, "✗ %d of %d test(s) failed\n", meta.Failed, meta.Total)
	var failed []string
	for _, i := range output.Failures() {
		failed = append(failed, output.Details[i].Name)
	}
	f.printTree(failed, nil, red)
}

// PrintTestList prints discovered tests as a tree grouped by package.
// Names in failed (from the last run) are marked with [F].
func (f *Formatter) PrintTestList(cases []discovery.TestCase, failed map[string]struct{}) {
	green.Fprintf(f.out, "Found %d test(s):\n", len(cases))

	names := make([]string, 0, len(cases))
	for _, c := range cases {
		names = append(names, c.Name)
	}
	f.printTree(names, failed, yellow)
}

// PrintHistory prints recorded runs, newest first
func (f *Formatter) PrintHistory(runs []domain.RunMeta) {
	if len(runs) == 0 {
		yellow.Fprintln(f.out, "No recorded runs.")
		return
	}

	cyan.Fprintf(f.out, "%-36s  %-25s  %6s  %6s  %6s  %9s\n", "RUN", "FINISHED", "TOTAL", "PASSED", "FAILED", "DURATION")
	for _, r := range runs {
		fmt.Fprintf(f.out, "%-36s  %-25s  %6d  ", r.RunID, r.Timestamp, r.Total)
		green.Fprintf(f.out, "%6d", r.Passed)
		fmt.Fprint(f.out, "  ")
		c := green
		if r.Failed > 0 {
			c = red
		}
		c.Fprintf(f.out, "%6d", r.Failed)
		fmt.Fprintf(f.out, "  %8.2fs\n", r.DurationSeconds)
	}
}

// group is one package of tests in a tree listing
type group struct {
	pkg   string
	tests []string
}

// groupByPackage splits qualified names at the last dot, keeping the
// original order of tests within each package. Packages are sorted.
func groupByPackage(names []string) []group {
	index := make(map[string]int)
	var groups []group
	for _, name := range names {
		pkg, fn := splitName(name)
		i, ok := index[pkg]
		if !ok {
			i = len(groups)
			index[pkg] = i
			groups = append(groups, group{pkg: pkg})
		}
		groups[i].tests = append(groups[i].tests, fn)
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].pkg < groups[j].pkg })
	return groups
}

func splitName(name string) (pkg, fn string) {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return "(unqualified)", name
	}
	return name[:i], name[i+1:]
}

func (f *Formatter) printTree(names []string, marked map[string]struct{}, leaf *color.Color) {
	groups := groupByPackage(names)
	for i, g := range groups {
		lastGroup := i == len(groups)-1
		if lastGroup {
			cyan.Fprintf(f.out, "└── %s\n", g.pkg)
		} else {
			cyan.Fprintf(f.out, "├── %s\n", g.pkg)
		}

		for j, test := range g.tests {
			lastCase := j == len(g.tests)-1

			var prefix string
			switch {
			case lastGroup && lastCase:
				prefix = "    └── "
			case lastGroup:
				prefix = "    ├── "
			case lastCase:
				prefix = "│   └── "
			default:
				prefix = "│   ├── "
			}

			mark := ""
			qualified := test
			if g.pkg != "(unqualified)" {
				qualified = g.pkg + "." + test
			}
			if _, ok := marked[qualified]; ok {
				mark = " " + red.Sprint("[F]")
			}
			fmt.Fprintf(f.out, "%s%s%s\n", prefix, leaf.Sprint(test), mark)
		}
	}
}

// PrintRecords prints the stored results of one run
func (f *Formatter) PrintRecords(records []domain.CaseRecord) {
	for _, r := range records {
		if !r.Failed() {
			green.Fprint(f.out, "✓ ")
			fmt.Fprintln(f.out, r.Name)
			continue
		}
		red.Fprint(f.out, "✖ ")
		fmt.Fprintf(f.out, "%s [%s]\n", r.Name, r.Outcome)
		reason := r.Message
		if r.ErrorKind != "" {
			reason = r.ErrorKind + ": " + reason
		}
		fmt.Fprintf(f.out, "    %s\n", reason)
	}
}
