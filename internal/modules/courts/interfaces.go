package courts

import (
	"context"

	"sportfy/internal/domain"
)

type CourtStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	List(ctx context.Context) ([]domain.Court, error)
	Create(ctx context.Context, c *domain.Court) error
	Update(ctx context.Context, c *domain.Court) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}
