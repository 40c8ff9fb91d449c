package payment

import (
	"context"

	"sportfy/internal/domain"
)

type bookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByOrderID(ctx context.Context, orderID string) (*domain.Booking, error)
}

type bookingPaymentWriter interface {
	AttachPaymentOrder(ctx context.Context, bookingID int64, orderID string, totalPrice int64) error
	ApplyPaymentStatus(ctx context.Context, orderID string, status domain.PaymentStatus) (bool, error)
}

type courtReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

type sessionCreator interface {
	CreateTransaction(ctx context.Context, req SnapTransactionRequest) (*SnapTransactionResponse, error)
}

type matchNotifier interface {
	NotifyMatchChanged(b *domain.Booking, event string)
}
