package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingPaid      BookingStatus = "PAID"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingExpired   BookingStatus = "EXPIRED"
	BookingCompleted BookingStatus = "COMPLETED"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentPaid      PaymentStatus = "PAID"
	PaymentExpired   PaymentStatus = "EXPIRED"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

// CancelledStatuses are the booking statuses that release a time slot.
// Everything else keeps the slot occupied for conflict detection.
var CancelledStatuses = []BookingStatus{BookingCancelled, BookingExpired}

// IsTerminal reports whether no further automatic transition may leave s.
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case BookingCancelled, BookingExpired, BookingCompleted:
		return true
	}
	return false
}

// CanTransitionTo validates the booking lifecycle:
// PENDING -> {PAID, CANCELLED, EXPIRED}; PAID -> {CANCELLED, EXPIRED, COMPLETED}.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case BookingPending:
		return next == BookingPaid || next == BookingCancelled || next == BookingExpired
	case BookingPaid:
		return next == BookingCancelled || next == BookingExpired || next == BookingCompleted
	}
	return false
}

// BookingStatusFor mirrors a reconciled payment status into the booking status.
func BookingStatusFor(p PaymentStatus) BookingStatus {
	switch p {
	case PaymentPaid:
		return BookingPaid
	case PaymentExpired:
		return BookingExpired
	case PaymentCancelled:
		return BookingCancelled
	default:
		return BookingPending
	}
}

// Booking reserves a court for a half-open time slot. TotalPrice is always
// server-computed from the court's hourly rate, in IDR minor units.
// PaymentOrderID is assigned once when a payment session is initiated and is
// the idempotency key joining gateway notifications back to the booking.
type Booking struct {
	ID             int64         `json:"id" gorm:"primaryKey"`
	CourtID        int64         `json:"court_id" gorm:"index"`
	UserID         int64         `json:"user_id" gorm:"index"`
	StartTime      time.Time     `json:"start_time"`
	EndTime        time.Time     `json:"end_time"`
	TotalPrice     int64         `json:"total_price"`
	Status         BookingStatus `json:"status" gorm:"default:PENDING"`
	PaymentStatus  PaymentStatus `json:"payment_status" gorm:"default:PENDING"`
	TeamName       string        `json:"team_name,omitempty"`
	FindOpponent   bool          `json:"find_opponent"`
	PaymentOrderID string        `json:"payment_order_id,omitempty" gorm:"uniqueIndex:idx_bookings_order_id,where:payment_order_id <> ''"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Court *Court `json:"court,omitempty" gorm:"foreignKey:CourtID"`
}

// Slot returns the booking's occupied interval.
func (b *Booking) Slot() TimeRange {
	return TimeRange{Start: b.StartTime, End: b.EndTime}
}
