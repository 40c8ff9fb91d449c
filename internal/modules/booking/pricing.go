package booking

import (
	"math"

	"sportfy/internal/domain"
)

// Price computes the total for a slot in minor currency units:
// round-half-up(duration_hours × hourlyRate). The range must be valid and the
// rate positive; callers validate the interval before quoting a price.
func Price(r domain.TimeRange, hourlyRate int64) (int64, error) {
	if !r.IsValid() || hourlyRate <= 0 {
		return 0, ErrValidation
	}
	raw := r.Hours() * float64(hourlyRate)
	return int64(math.Floor(raw + 0.5)), nil
}
