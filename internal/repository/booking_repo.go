package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sportfy/internal/domain"
)

// ErrSlotTaken is returned when a write would overlap an active booking on the
// same court. The booking service maps it to its conflict error.
var ErrSlotTaken = errors.New("time slot already booked")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// overlapScope matches active bookings on courtID whose [start_time, end_time)
// intersects [start, end). Touching endpoints do not match.
func overlapScope(tx *gorm.DB, courtID int64, start, end time.Time) *gorm.DB {
	return tx.Model(&domain.Booking{}).
		Where("court_id = ?", courtID).
		Where("status NOT IN ?", []domain.BookingStatus{domain.BookingCancelled, domain.BookingExpired}).
		Where("start_time < ? AND end_time > ?", end, start)
}

// lockOverlapRows takes row locks on PostgreSQL so two concurrent conflict
// checks for the same court serialize. SQLite has no FOR UPDATE; its writes
// already serialize on the database lock.
func lockOverlapRows(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// CreateIfFree inserts the booking only if no active booking overlaps its slot.
// Check and insert run in one transaction; on PostgreSQL the bookings_no_overlap
// exclusion constraint backstops the check, so concurrent identical creates end
// with exactly one success.
func (r *BookingRepository) CreateIfFree(ctx context.Context, b *domain.Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := lockOverlapRows(overlapScope(tx, b.CourtID, b.StartTime, b.EndTime)).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrSlotTaken
		}
		return tx.Create(b).Error
	})
	return mapConstraintErr(err)
}

// UpdateIfFree persists a reschedule, excluding the booking's own row from the
// overlap check.
func (r *BookingRepository) UpdateIfFree(ctx context.Context, b *domain.Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := lockOverlapRows(overlapScope(tx, b.CourtID, b.StartTime, b.EndTime)).
			Where("id <> ?", b.ID).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrSlotTaken
		}
		return tx.Save(b).Error
	})
	return mapConstraintErr(err)
}

func mapConstraintErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23P01 exclusion_violation, 23505 unique_violation
		if pgErr.Code == "23P01" || pgErr.Code == "23505" {
			if pgErr.ConstraintName == "bookings_no_overlap" {
				return ErrSlotTaken
			}
		}
	}
	return err
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).Preload("Court").Preload("User").First(&b, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	tx := r.db.WithContext(ctx).
		Preload("Court").Preload("User").
		Order("created_at DESC").
		Find(&out)
	return out, tx.Error
}

// FindByIDOrPhone looks a booking up by numeric id first; when only a phone is
// given it returns the linked user's most recent booking.
func (r *BookingRepository) FindByIDOrPhone(ctx context.Context, id int64, phone string) (*domain.Booking, error) {
	if id > 0 {
		b, err := r.GetByID(ctx, id)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) || phone == "" {
			return nil, err
		}
	}

	var b domain.Booking
	tx := r.db.WithContext(ctx).
		Preload("Court").Preload("User").
		Joins("JOIN users ON users.id = bookings.user_id").
		Where("users.phone = ?", phone).
		Order("bookings.created_at DESC").
		First(&b)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

// ScheduleForCourt returns the active bookings intersecting [dayStart, dayEnd).
func (r *BookingRepository) ScheduleForCourt(ctx context.Context, courtID int64, dayStart, dayEnd time.Time) ([]domain.Booking, error) {
	var out []domain.Booking
	tx := overlapScope(r.db.WithContext(ctx), courtID, dayStart, dayEnd).
		Order("start_time ASC").
		Find(&out)
	return out, tx.Error
}

// OpenMatches returns future bookings still seeking an opponent.
func (r *BookingRepository) OpenMatches(ctx context.Context, now time.Time) ([]domain.Booking, error) {
	var out []domain.Booking
	tx := r.db.WithContext(ctx).
		Preload("Court").Preload("User").
		Where("find_opponent = ?", true).
		Where("status IN ?", []domain.BookingStatus{domain.BookingPending, domain.BookingPaid}).
		Where("start_time > ?", now).
		Order("start_time ASC").
		Find(&out)
	return out, tx.Error
}

func (r *BookingRepository) HistoryForUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	tx := r.db.WithContext(ctx).
		Preload("Court").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out)
	return out, tx.Error
}

func (r *BookingRepository) GetByOrderID(ctx context.Context, orderID string) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).Where("payment_order_id = ?", orderID).First(&b)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

// AttachPaymentOrder stores the order id issued for a payment session along
// with the reconciled price, and resets both statuses to PENDING.
func (r *BookingRepository) AttachPaymentOrder(ctx context.Context, bookingID int64, orderID string, totalPrice int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", bookingID).
		Updates(map[string]interface{}{
			"payment_order_id": orderID,
			"total_price":      totalPrice,
			"payment_status":   domain.PaymentPending,
			"status":           domain.BookingPending,
		}).Error
}

// ApplyPaymentStatus performs the idempotent reconciliation write. It sets the
// payment status and mirrors it into the booking status as one conditional
// update; reapplying the same notification changes nothing. Stale transitions
// are absorbed: PAID never downgrades to PENDING and terminal booking statuses
// stay put. Returns whether the row changed.
func (r *BookingRepository) ApplyPaymentStatus(ctx context.Context, orderID string, p domain.PaymentStatus) (bool, error) {
	var changed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b domain.Booking
		q := tx.Where("payment_order_id = ?", orderID)
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&b).Error; err != nil {
			return err
		}

		if b.PaymentStatus == p {
			return nil
		}
		if b.PaymentStatus == domain.PaymentPaid && p == domain.PaymentPending {
			return nil
		}
		next := domain.BookingStatusFor(p)
		if b.Status.IsTerminal() && b.Status != next {
			return nil
		}

		res := tx.Model(&domain.Booking{}).
			Where("id = ?", b.ID).
			Updates(map[string]interface{}{
				"payment_status": p,
				"status":         next,
			})
		if res.Error != nil {
			return res.Error
		}
		changed = res.RowsAffected > 0
		return nil
	})
	return changed, err
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Booking{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) DeleteByCourt(ctx context.Context, courtID int64) error {
	return r.db.WithContext(ctx).Where("court_id = ?", courtID).Delete(&domain.Booking{}).Error
}
