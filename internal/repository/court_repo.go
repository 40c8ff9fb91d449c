package repository

import (
	"context"

	"gorm.io/gorm"

	"sportfy/internal/domain"
)

type CourtRepository struct {
	db *gorm.DB
}

func NewCourtRepository(db *gorm.DB) *CourtRepository {
	return &CourtRepository{db: db}
}

func (r *CourtRepository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	var c domain.Court
	tx := r.db.WithContext(ctx).First(&c, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

func (r *CourtRepository) List(ctx context.Context) ([]domain.Court, error) {
	var out []domain.Court
	tx := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, tx.Error
}

func (r *CourtRepository) Create(ctx context.Context, c *domain.Court) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CourtRepository) Update(ctx context.Context, c *domain.Court) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Delete removes a court together with its bookings, bookings first to keep
// the foreign key happy.
func (r *CourtRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("court_id = ?", id).Delete(&domain.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Court{}, id).Error
	})
}

// DeleteAll wipes every court and booking (admin reset).
func (r *CourtRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.Booking{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&domain.Court{}).Error
	})
}
