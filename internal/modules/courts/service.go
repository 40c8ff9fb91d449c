package courts

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sportfy/internal/domain"
)

type Service struct {
	courts CourtStore
}

func NewService(courts CourtStore) *Service {
	return &Service{courts: courts}
}

func (s *Service) List(ctx context.Context) ([]domain.Court, error) {
	return s.courts.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	c, err := s.courts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, req CreateCourtRequest) (*domain.Court, error) {
	if req.PricePerHour <= 0 {
		return nil, ErrValidation
	}
	c := &domain.Court{
		Name:         req.Name,
		Location:     req.Location,
		SportType:    req.SportType,
		PricePerHour: req.PricePerHour,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Facilities:   req.Facilities,
		IsActive:     true,
	}
	if err := s.courts.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateCourtRequest) (*domain.Court, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Location != nil {
		c.Location = *req.Location
	}
	if req.SportType != nil {
		c.SportType = *req.SportType
	}
	if req.PricePerHour != nil {
		if *req.PricePerHour <= 0 {
			return nil, ErrValidation
		}
		c.PricePerHour = *req.PricePerHour
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.ImageURL != nil {
		c.ImageURL = *req.ImageURL
	}
	if req.Facilities != nil {
		c.Facilities = *req.Facilities
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.courts.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a court and cascades its bookings so no orphaned slots stay
// behind.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.courts.Delete(ctx, id)
}

// Reset wipes the whole catalog, bookings first (admin tooling).
func (s *Service) Reset(ctx context.Context) error {
	return s.courts.DeleteAll(ctx)
}
