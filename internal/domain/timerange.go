package domain

import "time"

// TimeRange is a half-open interval [Start, End). Bookings that merely touch
// endpoints (a.End == b.Start) do not overlap, so back-to-back slots are fine.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func NewTimeRange(start, end time.Time) TimeRange {
	return TimeRange{Start: start, End: end}
}

// IsValid reports whether the range is well-formed (strictly positive length).
func (r TimeRange) IsValid() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && r.Start.Before(r.End)
}

// Overlaps is the single source of truth for double-booking detection.
func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.Start.Before(o.End) && o.Start.Before(r.End)
}

// Hours returns the duration as fractional hours.
func (r TimeRange) Hours() float64 {
	return r.End.Sub(r.Start).Hours()
}
