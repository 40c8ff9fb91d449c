package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sportfy/internal/domain"
)

func rangeOf(minutes int) domain.TimeRange {
	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	return domain.NewTimeRange(start, start.Add(time.Duration(minutes)*time.Minute))
}

func TestPrice_WholeHours(t *testing.T) {
	got, err := Price(rangeOf(120), 50000)
	assert.NoError(t, err)
	assert.Equal(t, int64(100000), got)
}

func TestPrice_FractionalHours(t *testing.T) {
	got, err := Price(rangeOf(90), 100000)
	assert.NoError(t, err)
	assert.Equal(t, int64(150000), got)
}

func TestPrice_RoundsHalfUp(t *testing.T) {
	// 30 minutes at an odd rate: 0.5 * 33333 = 16666.5, rounds to 16667
	got, err := Price(rangeOf(30), 33333)
	assert.NoError(t, err)
	assert.Equal(t, int64(16667), got)

	// 20 minutes at 100: 33.33.. rounds down
	got, err = Price(rangeOf(20), 100)
	assert.NoError(t, err)
	assert.Equal(t, int64(33), got)
}

func TestPrice_Invalid(t *testing.T) {
	_, err := Price(rangeOf(0), 50000)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = Price(rangeOf(60), 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = Price(rangeOf(60), -1)
	assert.ErrorIs(t, err, ErrValidation)
}
