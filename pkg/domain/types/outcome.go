package types

// Outcome represents what happened to a single issue during a postponement run
type Outcome string

const (
	OutcomePostponed Outcome = "POSTPONED"
	OutcomeSkipped   Outcome = "SKIPPED"
	OutcomePlanned   Outcome = "PLANNED"
	OutcomeFailed    Outcome = "FAILED"
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	return string(o)
}
