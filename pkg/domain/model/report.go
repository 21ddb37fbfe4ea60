package model

import (
	"github.com/secmon-lab/snooze/pkg/domain/types"
)

// IssueResult records what happened to one issue in a run
type IssueResult struct {
	Issue   *Issue
	Outcome types.Outcome
	// NewDueDate is set for postponed, planned and (when the date was computed) failed issues
	NewDueDate types.DueDate
	Err        error
}

// PostponeReport is the outcome of one postponement run
type PostponeReport struct {
	RunID       string
	Identity    *Identity
	DryRun      bool
	ExemptLabel types.Label
	Results     []IssueResult
}

// NewPostponeReport creates an empty report
func NewPostponeReport(runID string, exemptLabel types.Label, dryRun bool) *PostponeReport {
	return &PostponeReport{
		RunID:       runID,
		ExemptLabel: exemptLabel,
		DryRun:      dryRun,
	}
}

// Add appends a result in processing order
func (r *PostponeReport) Add(result IssueResult) {
	r.Results = append(r.Results, result)
}

// Count returns the number of results with the given outcome
func (r *PostponeReport) Count(outcome types.Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == outcome {
			n++
		}
	}
	return n
}

// Failed returns the failed result that aborted the run, or nil
func (r *PostponeReport) Failed() *IssueResult {
	for i := range r.Results {
		if r.Results[i].Outcome == types.OutcomeFailed {
			return &r.Results[i]
		}
	}
	return nil
}

// IsEmpty returns true when no issue was processed
func (r *PostponeReport) IsEmpty() bool {
	return len(r.Results) == 0
}
