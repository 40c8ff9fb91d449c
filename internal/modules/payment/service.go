package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportfy/internal/domain"
	bookingpkg "sportfy/internal/modules/booking"
)

var (
	ErrNotFound  = errors.New("booking not found")
	ErrForbidden = errors.New("not allowed to pay for this booking")
)

// bootstrapAmount is charged when neither a court rate nor a stored total is
// usable. Matches the sandbox default of the original deployment.
const bootstrapAmount = 100000

type Service struct {
	bookings bookingReader
	writer   bookingPaymentWriter
	courts   courtReader
	snap     sessionCreator
	matches  matchNotifier
	loggerf  func(format string, args ...interface{})

	frontendBaseURL string
	sandboxAutoPaid bool
}

func NewService(
	bookings bookingReader,
	writer bookingPaymentWriter,
	courts courtReader,
	snap sessionCreator,
	matches matchNotifier,
	loggerf func(format string, args ...interface{}),
	frontendBaseURL string,
	sandboxAutoPaid bool,
) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		bookings:        bookings,
		writer:          writer,
		courts:          courts,
		snap:            snap,
		matches:         matches,
		loggerf:         loggerf,
		frontendBaseURL: frontendBaseURL,
		sandboxAutoPaid: sandboxAutoPaid,
	}
}

// InitPayment creates (or re-issues) a Snap session for a booking. The price
// is reconciled against the court's current rate before the session is
// created; the stored total is only a bootstrap fallback. Re-initiating while
// a session is still pending reuses the existing order id, so the gateway sees
// one idempotency key per attempt chain.
func (s *Service) InitPayment(ctx context.Context, bookingID, actorUserID int64) (*InitPaymentResponse, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if actorUserID <= 0 || b.UserID != actorUserID {
		return nil, ErrForbidden
	}

	gross := s.resolveGrossAmount(ctx, b)

	orderID := b.PaymentOrderID
	if orderID == "" || b.PaymentStatus != domain.PaymentPending {
		orderID = fmt.Sprintf("SPORTFY-%d-%s", b.ID, uuid.NewString()[:8])
	}

	if err := s.writer.AttachPaymentOrder(ctx, b.ID, orderID, gross); err != nil {
		return nil, fmt.Errorf("attach payment order: %w", err)
	}

	req := SnapTransactionRequest{}
	req.TransactionDetails.OrderID = orderID
	req.TransactionDetails.GrossAmount = gross
	req.CustomerDetails.FirstName = "Sportfy User"
	req.CustomerDetails.Email = "user@sportfy.id"
	if b.User != nil {
		if b.User.Name != "" {
			req.CustomerDetails.FirstName = b.User.Name
		}
		if b.User.Email != "" {
			req.CustomerDetails.Email = b.User.Email
		}
		req.CustomerDetails.Phone = b.User.Phone
	}
	itemName := "Court booking"
	if b.Court != nil && b.Court.Name != "" {
		itemName = b.Court.Name
	}
	req.ItemDetails = []SnapItem{{
		ID:       fmt.Sprintf("%d", b.CourtID),
		Price:    gross,
		Quantity: 1,
		Name:     itemName,
	}}
	req.Callbacks.Finish = fmt.Sprintf("%s/payment-result?bookingId=%d", s.frontendBaseURL, b.ID)

	tx, err := s.snap.CreateTransaction(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create snap transaction: %w", err)
	}

	return &InitPaymentResponse{
		RedirectURL: tx.RedirectURL,
		Token:       tx.Token,
		BookingID:   b.ID,
		OrderID:     orderID,
	}, nil
}

func (s *Service) resolveGrossAmount(ctx context.Context, b *domain.Booking) int64 {
	court := b.Court
	if court == nil {
		if c, err := s.courts.GetByID(ctx, b.CourtID); err == nil {
			court = c
		}
	}
	if court != nil {
		if p, err := bookingpkg.Price(b.Slot(), court.PricePerHour); err == nil && p > 0 {
			return p
		}
	}
	if b.TotalPrice > 0 {
		return b.TotalPrice
	}
	return bootstrapAmount
}

// HandleNotification reconciles one gateway notification. It never treats a
// gateway-side oddity as an error: unknown order ids and unmapped status
// tokens are logged and absorbed, because the booking may have been deleted or
// the token may belong to a newer API version. Only store failures surface,
// and the HTTP handler acknowledges those too.
func (s *Service) HandleNotification(ctx context.Context, n Notification) error {
	s.loggerf("level=info msg=payment notification received order_id=%s transaction_status=%s fraud_status=%s payment_type=%s",
		n.OrderID, n.TransactionStatus, n.FraudStatus, n.PaymentType)

	if n.OrderID == "" {
		s.loggerf("level=warn msg=payment notification missing order_id")
		return nil
	}

	status, ok := s.mapTransactionStatus(n.TransactionStatus, n.FraudStatus)
	if !ok {
		s.loggerf("level=warn msg=unrecognized transaction status order_id=%s transaction_status=%s", n.OrderID, n.TransactionStatus)
		return nil
	}

	changed, err := s.writer.ApplyPaymentStatus(ctx, n.OrderID, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.loggerf("level=info msg=notification for unknown order acknowledged order_id=%s", n.OrderID)
			return nil
		}
		return err
	}
	if !changed {
		s.loggerf("level=info msg=duplicate or stale notification absorbed order_id=%s status=%s", n.OrderID, status)
		return nil
	}

	if s.matches != nil {
		if b, err := s.bookings.GetByOrderID(ctx, n.OrderID); err == nil && b.FindOpponent {
			s.matches.NotifyMatchChanged(b, "payment_"+strings.ToLower(string(status)))
		}
	}
	return nil
}

// mapTransactionStatus is the fixed token table. "capture" under a fraud
// challenge stays pending until the gateway settles it.
func (s *Service) mapTransactionStatus(raw, fraud string) (domain.PaymentStatus, bool) {
	switch strings.ToLower(raw) {
	case "capture":
		if strings.EqualFold(fraud, "challenge") {
			return domain.PaymentPending, true
		}
		return domain.PaymentPaid, true
	case "settlement":
		return domain.PaymentPaid, true
	case "pending":
		if s.sandboxAutoPaid {
			return domain.PaymentPaid, true
		}
		return domain.PaymentPending, true
	case "expire":
		return domain.PaymentExpired, true
	case "cancel", "deny":
		return domain.PaymentCancelled, true
	}
	return "", false
}
