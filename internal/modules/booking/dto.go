package booking

import (
	"strings"
	"time"

	"sportfy/internal/domain"
)

// CreateBookingRequest accepts the slot either as RFC3339 start/end times or as
// a date plus a "HH:MM-HH:MM" range, whichever the client has at hand.
type CreateBookingRequest struct {
	CourtID      int64      `json:"court_id" binding:"required"`
	UserID       int64      `json:"user_id"`
	StartTime    *time.Time `json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
	Date         string     `json:"date"`
	Time         string     `json:"time"`
	TeamName     string     `json:"team_name"`
	FindOpponent bool       `json:"find_opponent"`
}

// Slot resolves the requested interval. Returns ErrValidation when neither
// form parses into a well-formed range.
func (r CreateBookingRequest) Slot() (domain.TimeRange, error) {
	if r.StartTime != nil && r.EndTime != nil {
		tr := domain.NewTimeRange(*r.StartTime, *r.EndTime)
		if !tr.IsValid() {
			return domain.TimeRange{}, ErrValidation
		}
		return tr, nil
	}
	return parseDateSpan(r.Date, r.Time)
}

func parseDateSpan(date, span string) (domain.TimeRange, error) {
	if date == "" || !strings.Contains(span, "-") {
		return domain.TimeRange{}, ErrValidation
	}
	parts := strings.SplitN(span, "-", 2)
	start, err1 := time.ParseInLocation("2006-01-02 15:04", date+" "+strings.TrimSpace(parts[0]), time.Local)
	end, err2 := time.ParseInLocation("2006-01-02 15:04", date+" "+strings.TrimSpace(parts[1]), time.Local)
	if err1 != nil || err2 != nil {
		return domain.TimeRange{}, ErrValidation
	}
	tr := domain.NewTimeRange(start, end)
	if !tr.IsValid() {
		return domain.TimeRange{}, ErrValidation
	}
	return tr, nil
}

// UpdateBookingRequest reschedules a booking; omitted fields keep their
// current values. Status is an administrative override.
type UpdateBookingRequest struct {
	CourtID      *int64     `json:"court_id"`
	UserID       *int64     `json:"user_id"`
	StartTime    *time.Time `json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
	Status       *string    `json:"status"`
	TeamName     *string    `json:"team_name"`
	FindOpponent *bool      `json:"find_opponent"`
}

// ScheduleEntry is the read-side projection for a court's day schedule.
type ScheduleEntry struct {
	ID        int64                `json:"id"`
	StartTime time.Time            `json:"start_time"`
	EndTime   time.Time            `json:"end_time"`
	Status    domain.BookingStatus `json:"status"`
}

// OpenMatch is a booking still looking for an opponent.
type OpenMatch struct {
	ID           int64         `json:"id"`
	Court        *domain.Court `json:"court,omitempty"`
	StartTime    time.Time     `json:"start_time"`
	EndTime      time.Time     `json:"end_time"`
	TeamName     string        `json:"team_name,omitempty"`
	ContactName  string        `json:"contact_name,omitempty"`
	ContactPhone string        `json:"contact_phone,omitempty"`
}

// HistoryEntry summarizes one booking in a user's history.
type HistoryEntry struct {
	ID         int64                `json:"id"`
	CourtName  string               `json:"court_name"`
	SportType  string               `json:"sport_type"`
	StartTime  time.Time            `json:"start_time"`
	EndTime    time.Time            `json:"end_time"`
	TotalPrice int64                `json:"total_price"`
	Status     domain.BookingStatus `json:"status"`
}
