package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	// PENDING fan-out
	assert.True(t, BookingPending.CanTransitionTo(BookingPaid))
	assert.True(t, BookingPending.CanTransitionTo(BookingCancelled))
	assert.True(t, BookingPending.CanTransitionTo(BookingExpired))
	assert.False(t, BookingPending.CanTransitionTo(BookingCompleted))

	// PAID fan-out
	assert.True(t, BookingPaid.CanTransitionTo(BookingCancelled))
	assert.True(t, BookingPaid.CanTransitionTo(BookingExpired))
	assert.True(t, BookingPaid.CanTransitionTo(BookingCompleted))
	assert.False(t, BookingPaid.CanTransitionTo(BookingPending))

	// terminal states never move
	for _, s := range []BookingStatus{BookingCancelled, BookingExpired, BookingCompleted} {
		assert.False(t, s.CanTransitionTo(BookingPending), "%s must not leave terminal state", s)
		assert.False(t, s.CanTransitionTo(BookingPaid), "%s must not leave terminal state", s)
	}

	// self transition is a no-op, always allowed
	assert.True(t, BookingCancelled.CanTransitionTo(BookingCancelled))
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, BookingPending.IsTerminal())
	assert.False(t, BookingPaid.IsTerminal())
	assert.True(t, BookingCancelled.IsTerminal())
	assert.True(t, BookingExpired.IsTerminal())
	assert.True(t, BookingCompleted.IsTerminal())
}

func TestBookingStatusFor(t *testing.T) {
	assert.Equal(t, BookingPaid, BookingStatusFor(PaymentPaid))
	assert.Equal(t, BookingExpired, BookingStatusFor(PaymentExpired))
	assert.Equal(t, BookingCancelled, BookingStatusFor(PaymentCancelled))
	assert.Equal(t, BookingPending, BookingStatusFor(PaymentPending))
}
