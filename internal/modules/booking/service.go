package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"sportfy/internal/domain"
	"sportfy/internal/repository"
)

type Service struct {
	bookings BookingStore
	courts   CourtDirectory
	users    UserDirectory
	matches  MatchNotifier
}

func NewService(bookings BookingStore, courts CourtDirectory, users UserDirectory, matches MatchNotifier) *Service {
	return &Service{
		bookings: bookings,
		courts:   courts,
		users:    users,
		matches:  matches,
	}
}

// Create books a court slot. The conflict check and the insert share one store
// transaction, so two racing creates for overlapping slots end with one booking
// and one ErrConflict.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	slot, err := req.Slot()
	if err != nil {
		return nil, err
	}
	if req.UserID <= 0 || req.CourtID <= 0 {
		return nil, ErrValidation
	}

	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		return nil, notFoundOr(err)
	}
	court, err := s.courts.GetByID(ctx, req.CourtID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if !court.IsActive {
		return nil, ErrCourtInactive
	}

	total, err := Price(slot, court.PricePerHour)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		CourtID:       req.CourtID,
		UserID:        req.UserID,
		StartTime:     slot.Start,
		EndTime:       slot.End,
		TotalPrice:    total,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentPending,
		TeamName:      req.TeamName,
		FindOpponent:  req.FindOpponent,
	}
	if err := s.bookings.CreateIfFree(ctx, b); err != nil {
		return nil, conflictOr(err)
	}

	s.notify(b, "created")
	return b, nil
}

// Update reschedules an existing booking, re-running the same validation and
// conflict detection as Create with the booking's own row excluded. The price
// is recomputed against the target court's current rate. A status override is
// administrative and must follow the lifecycle transition table.
func (s *Service) Update(ctx context.Context, bookingID int64, req UpdateBookingRequest) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	targetCourt := b.CourtID
	if req.CourtID != nil {
		targetCourt = *req.CourtID
	}
	targetUser := b.UserID
	if req.UserID != nil {
		targetUser = *req.UserID
	}
	slot := b.Slot()
	if req.StartTime != nil {
		slot.Start = *req.StartTime
	}
	if req.EndTime != nil {
		slot.End = *req.EndTime
	}
	if targetCourt <= 0 || targetUser <= 0 || !slot.IsValid() {
		return nil, ErrValidation
	}

	if _, err := s.users.GetByID(ctx, targetUser); err != nil {
		return nil, notFoundOr(err)
	}
	court, err := s.courts.GetByID(ctx, targetCourt)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if !court.IsActive {
		return nil, ErrCourtInactive
	}

	total, err := Price(slot, court.PricePerHour)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		next := domain.BookingStatus(*req.Status)
		if !b.Status.CanTransitionTo(next) {
			return nil, ErrInvalidStatusTransition
		}
		b.Status = next
	}
	if req.TeamName != nil {
		b.TeamName = *req.TeamName
	}
	if req.FindOpponent != nil {
		b.FindOpponent = *req.FindOpponent
	}
	b.CourtID = targetCourt
	b.UserID = targetUser
	b.StartTime = slot.Start
	b.EndTime = slot.End
	b.TotalPrice = total

	if err := s.bookings.UpdateIfFree(ctx, b); err != nil {
		return nil, conflictOr(err)
	}

	s.notify(b, "updated")
	return b, nil
}

// Delete is an administrative hard delete. A payment session already issued
// for the booking is left to expire at the gateway; a late notification for
// its order id lands on the unknown-order no-op path.
func (s *Service) Delete(ctx context.Context, bookingID int64) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return notFoundOr(err)
	}
	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		return notFoundOr(err)
	}
	s.notify(b, "cancelled")
	return nil
}

func (s *Service) GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return b, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

// Lookup finds a booking by numeric id or by the owning user's phone. When
// both are given the id match wins.
func (s *Service) Lookup(ctx context.Context, id int64, phone string) (*domain.Booking, error) {
	if id <= 0 && phone == "" {
		return nil, ErrValidation
	}
	b, err := s.bookings.FindByIDOrPhone(ctx, id, phone)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return b, nil
}

// Schedule lists the active bookings intersecting the court's calendar day
// [00:00, +24h) in server-local time.
func (s *Service) Schedule(ctx context.Context, courtID int64, dateStr string) ([]ScheduleEntry, error) {
	if courtID <= 0 {
		return nil, ErrValidation
	}
	day, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return nil, ErrValidation
	}
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)
	dayEnd := dayStart.Add(24 * time.Hour)

	rows, err := s.bookings.ScheduleForCourt(ctx, courtID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	out := make([]ScheduleEntry, 0, len(rows))
	for _, b := range rows {
		out = append(out, ScheduleEntry{
			ID:        b.ID,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Status:    b.Status,
		})
	}
	return out, nil
}

// OpenMatches lists future bookings flagged as seeking an opponent, soonest
// first. Only PENDING and PAID bookings are visible.
func (s *Service) OpenMatches(ctx context.Context) ([]OpenMatch, error) {
	rows, err := s.bookings.OpenMatches(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	out := make([]OpenMatch, 0, len(rows))
	for _, b := range rows {
		m := OpenMatch{
			ID:        b.ID,
			Court:     b.Court,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			TeamName:  b.TeamName,
		}
		if b.User != nil {
			m.ContactName = b.User.Name
			m.ContactPhone = b.User.Phone
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *Service) UserHistory(ctx context.Context, userID int64) ([]HistoryEntry, error) {
	if userID <= 0 {
		return nil, ErrValidation
	}
	rows, err := s.bookings.HistoryForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]HistoryEntry, 0, len(rows))
	for _, b := range rows {
		e := HistoryEntry{
			ID:         b.ID,
			StartTime:  b.StartTime,
			EndTime:    b.EndTime,
			TotalPrice: b.TotalPrice,
			Status:     b.Status,
		}
		if b.Court != nil {
			e.CourtName = b.Court.Name
			e.SportType = b.Court.SportType
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *Service) notify(b *domain.Booking, event string) {
	if s.matches != nil && b.FindOpponent {
		s.matches.NotifyMatchChanged(b, event)
	}
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func conflictOr(err error) error {
	if errors.Is(err, repository.ErrSlotTaken) {
		return ErrConflict
	}
	return err
}
