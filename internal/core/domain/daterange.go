package domain

import (
	"fmt"
	"time"
)

// DateLayout is the date format used by the analytics API.
const DateLayout = "2006-01-02"

// DateRange is an inclusive analytics date range.
type DateRange struct {
	Start string `json:"start_date"`
	End   string `json:"end_date"`
}

// LastNDays returns the range ending today and starting n days earlier.
func LastNDays(n int, now time.Time) DateRange {
	return DateRange{
		Start: now.AddDate(0, 0, -n).Format(DateLayout),
		End:   now.Format(DateLayout),
	}
}

// Validate checks both dates parse and start is not after end.
func (r DateRange) Validate() error {
	start, err := time.Parse(DateLayout, r.Start)
	if err != nil {
		return fmt.Errorf("%w: start date %q: want YYYY-MM-DD", ErrInvalidInput, r.Start)
	}
	end, err := time.Parse(DateLayout, r.End)
	if err != nil {
		return fmt.Errorf("%w: end date %q: want YYYY-MM-DD", ErrInvalidInput, r.End)
	}
	if start.After(end) {
		return fmt.Errorf("%w: start date %s is after end date %s", ErrInvalidInput, r.Start, r.End)
	}
	return nil
}

// String returns "start..end".
func (r DateRange) String() string {
	return r.Start + ".." + r.End
}
