package domain

import (
	"time"

	"unitlite/runner"
)

// CaseRecord is the stored form of one test result
type CaseRecord struct {
	Name            string  `json:"name" yaml:"name"`
	Outcome         string  `json:"outcome" yaml:"outcome"`
	ErrorKind       string  `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
	Message         string  `json:"message,omitempty" yaml:"message,omitempty"`
	// Line is the reported line as the sink received it.
	Line            string  `json:"line" yaml:"line"`
	DurationSeconds float64 `json:"duration_seconds" yaml:"duration_seconds"`

	// Resolved is toggled in the failures viewer.
	Resolved bool `json:"resolved,omitempty" yaml:"resolved,omitempty"`
}

// Failed reports whether the case did not pass
func (c CaseRecord) Failed() bool {
	return c.Outcome != runner.Passed.String()
}

// RunMeta contains metadata about a test run
type RunMeta struct {
	RunID           string  `json:"run_id" yaml:"run_id"`
	Total           int     `json:"total" yaml:"total"`
	Passed          int     `json:"passed" yaml:"passed"`
	Failed          int     `json:"failed" yaml:"failed"`
	Summary         string  `json:"summary" yaml:"summary"`
	Duration        string  `json:"duration" yaml:"duration"`
	DurationSeconds float64 `json:"duration_seconds" yaml:"duration_seconds"`
	Timestamp       string  `json:"timestamp" yaml:"timestamp"`
}

// RunOutput is the complete stored structure of one run
type RunOutput struct {
	Meta    RunMeta      `json:"meta" yaml:"meta"`
	Details []CaseRecord `json:"details" yaml:"details"`
}

// NewRunOutput converts a runner report into its stored form
func NewRunOutput(runID string, report runner.Report, finishedAt time.Time) *RunOutput {
	details := make([]CaseRecord, 0, len(report.Results))
	for _, r := range report.Results {
		details = append(details, CaseRecord{
			Name:            r.Name,
			Outcome:         r.Outcome.String(),
			ErrorKind:       r.ErrorKind,
			Message:         r.Message,
			Line:            r.Line(),
			DurationSeconds: r.Duration.Seconds(),
		})
	}

	return &RunOutput{
		Meta: RunMeta{
			RunID:           runID,
			Total:           report.Summary.Total,
			Passed:          report.Summary.Passed,
			Failed:          report.Summary.Failed,
			Summary:         report.Summary.String(),
			Duration:        report.Duration.String(),
			DurationSeconds: report.Duration.Seconds(),
			Timestamp:       finishedAt.UTC().Format(time.RFC3339Nano),
		},
		Details: details,
	}
}

// Failures returns the indexes of failed cases in Details
func (o *RunOutput) Failures() []int {
	var idx []int
	for i, c := range o.Details {
		if c.Failed() {
			idx = append(idx, i)
		}
	}
	return idx
}
