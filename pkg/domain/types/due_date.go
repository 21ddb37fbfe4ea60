package types

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/m-mizutani/goerr/v2"
)

// DueDateLayout is the wire format of an issue due date
const DueDateLayout = "2006-01-02"

// DaysPerWeek is the postponement step
const DaysPerWeek = 7

// ErrInvalidDueDate is returned when a due date is not a YYYY-MM-DD calendar date
var ErrInvalidDueDate = goerr.New("invalid due date")

// DueDate is a calendar day without time of day or time zone.
// Arithmetic on it is pure Gregorian calendar arithmetic.
type DueDate struct {
	date civil.Date
}

// NewDueDate builds a DueDate from its components. Out of range values are normalized
// the same way time.Date does (e.g. February 30 becomes March 1 or 2).
func NewDueDate(year int, month time.Month, day int) DueDate {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return DueDate{date: civil.DateOf(t)}
}

// ParseDueDate parses a due date in YYYY-MM-DD form
func ParseDueDate(s string) (DueDate, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return DueDate{}, goerr.Wrap(ErrInvalidDueDate, "failed to parse due date", goerr.V("due_date", s), goerr.V("cause", err.Error()))
	}
	if !d.IsValid() {
		return DueDate{}, goerr.Wrap(ErrInvalidDueDate, "due date is not a calendar day", goerr.V("due_date", s))
	}

	return DueDate{date: d}, nil
}

// AddDays returns the date n calendar days later (or earlier for negative n)
func (d DueDate) AddDays(n int) DueDate {
	return DueDate{date: d.date.AddDays(n)}
}

// AdvanceByWeek returns the date exactly one week later
func (d DueDate) AdvanceByWeek() DueDate {
	return d.AddDays(DaysPerWeek)
}

// IsZero reports whether the date was never set
func (d DueDate) IsZero() bool {
	return d.date == civil.Date{}
}

// Time returns midnight UTC of the date
func (d DueDate) Time() time.Time {
	return d.date.In(time.UTC)
}

// String returns the YYYY-MM-DD representation
func (d DueDate) String() string {
	return d.date.String()
}
