package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"unitlite/internal/domain"
	"unitlite/internal/storage"
)

// Viewer displays the failures of a run
type Viewer interface {
	View(output *domain.RunOutput) error
}

// ErrorViewer displays test failures in an interactive TUI. Resolve marks
// are saved back to storage as they are toggled.
type ErrorViewer struct {
	storage storage.Storage
}

// NewErrorViewer creates a new ErrorViewer
func NewErrorViewer(st storage.Storage) *ErrorViewer {
	return &ErrorViewer{storage: st}
}

// View implements Viewer
func (ev *ErrorViewer) View(output *domain.RunOutput) error {
	failures := output.Failures()
	if len(failures) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	var saveErr error
	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for n, i := range failures {
		list.AddItem(listItemText(n, output.Details[i]), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(tview.NewFlex().
			AddItem(detailsView, 0, 1, false).
			AddItem(tview.NewBox(), 2, 0, false), 0, 1, false)

	body := tview.NewFlex().
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(headerText(output, failures))
	}

	updateDetails := func() {
		n := list.GetCurrentItem()
		if n < 0 || n >= len(failures) {
			return
		}
		record := output.Details[failures[n]]
		statsView.SetText(formatFailureStats(record, output.Meta))
		detailsView.SetText(formatFailureDetails(record))
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				n := list.GetCurrentItem()
				if n >= 0 && n < len(failures) {
					toggleResolved(output, failures[n])
					list.SetItemText(n, listItemText(n, output.Details[failures[n]]), "")
					updateHeader()
					updateDetails()
					if err := ev.storage.Save(output); err != nil {
						saveErr = err
					}
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})

	updateHeader()
	updateDetails()

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(body, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if saveErr != nil {
		return fmt.Errorf("failed to save resolved status: %w", saveErr)
	}
	return nil
}

func toggleResolved(output *domain.RunOutput, index int) {
	output.Details[index].Resolved = !output.Details[index].Resolved
}

func countUnresolved(output *domain.RunOutput, failures []int) int {
	count := 0
	for _, i := range failures {
		if !output.Details[i].Resolved {
			count++
		}
	}
	return count
}

func headerText(output *domain.RunOutput, failures []int) string {
	return fmt.Sprintf(" Test Failures (%d total, %d unresolved) | Use ↑↓ to navigate, [yellow]R[white] to mark resolved, → to view details, ← to go back, Ctrl+C to exit ",
		len(failures), countUnresolved(output, failures))
}

func listItemText(n int, record domain.CaseRecord) string {
	if record.Resolved {
		return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", n+1, record.Name)
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", n+1, record.Name)
}

// formatFailureDetails formats a failure using tview color tags
func formatFailureDetails(record domain.CaseRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ Test: %s[white]\n\n", tview.Escape(record.Name))
	fmt.Fprintf(&b, "[cyan]Outcome: %s[white]\n", record.Outcome)
	if record.ErrorKind != "" {
		fmt.Fprintf(&b, "[yellow]Error kind: %s[white]\n", tview.Escape(record.ErrorKind))
	}
	fmt.Fprintf(&b, "[cyan]Duration: %.3fs[white]\n\n", record.DurationSeconds)

	if record.Message != "" {
		fmt.Fprintf(&b, "[yellow]Message:[white]\n%s\n\n", tview.Escape(record.Message))
	}
	if record.Line != "" {
		fmt.Fprintf(&b, "[yellow]Reported:[white]\n%s\n", tview.Escape(record.Line))
	}
	return b.String()
}

// formatFailureStats formats the stats header for a failure
func formatFailureStats(record domain.CaseRecord, meta domain.RunMeta) string {
	pkg, fn := splitName(record.Name)
	return fmt.Sprintf("[cyan]test:[white] [yellow]%s[white].[yellow]%s[white]\n[cyan]run:[white] %s (%s)\n",
		pkg, fn, meta.RunID, meta.Timestamp)
}
