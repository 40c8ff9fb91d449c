package booking

import (
	"context"
	"time"

	"sportfy/internal/domain"
)

// BookingStore is the persistence surface the scheduling engine needs. The
// *IfFree writes must run their conflict check and the write in one
// transaction against the shared store.
type BookingStore interface {
	CreateIfFree(ctx context.Context, b *domain.Booking) error
	UpdateIfFree(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	FindByIDOrPhone(ctx context.Context, id int64, phone string) (*domain.Booking, error)
	ScheduleForCourt(ctx context.Context, courtID int64, dayStart, dayEnd time.Time) ([]domain.Booking, error)
	OpenMatches(ctx context.Context, now time.Time) ([]domain.Booking, error)
	HistoryForUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// CourtDirectory is the resource registry boundary: lookup by id only.
type CourtDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// UserDirectory is the identity provider boundary.
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// MatchNotifier receives best-effort open-match events for the live feed.
// Implementations must not block; a nil notifier disables the feed.
type MatchNotifier interface {
	NotifyMatchChanged(b *domain.Booking, event string)
}
