package payment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"sportfy/internal/domain"
)

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingReader) GetByOrderID(ctx context.Context, orderID string) (*domain.Booking, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockPaymentWriter struct {
	mock.Mock
}

func (m *MockPaymentWriter) AttachPaymentOrder(ctx context.Context, bookingID int64, orderID string, totalPrice int64) error {
	args := m.Called(ctx, bookingID, orderID, totalPrice)
	return args.Error(0)
}

func (m *MockPaymentWriter) ApplyPaymentStatus(ctx context.Context, orderID string, status domain.PaymentStatus) (bool, error) {
	args := m.Called(ctx, orderID, status)
	return args.Bool(0), args.Error(1)
}

type MockCourtReader struct {
	mock.Mock
}

func (m *MockCourtReader) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Court), args.Error(1)
}

type MockSnap struct {
	mock.Mock
}

func (m *MockSnap) CreateTransaction(ctx context.Context, req SnapTransactionRequest) (*SnapTransactionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SnapTransactionResponse), args.Error(1)
}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:            42,
		CourtID:       1,
		UserID:        7,
		StartTime:     time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2025, 6, 1, 16, 0, 0, 0, time.UTC),
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentPending,
		Court:         &domain.Court{ID: 1, Name: "Badminton Hall 1", PricePerHour: 50000, IsActive: true},
		User:          &domain.User{ID: 7, Name: "Andi", Email: "andi@gmail.com", Phone: "+628123450001"},
	}
}

func newTestService(r *MockBookingReader, w *MockPaymentWriter, c *MockCourtReader, snap *MockSnap, autoPaid bool) *Service {
	return NewService(r, w, c, snap, nil, nil, "http://localhost:5173", autoPaid)
}

func TestInitPayment_Success(t *testing.T) {
	reader := new(MockBookingReader)
	writer := new(MockPaymentWriter)
	courtsM := new(MockCourtReader)
	snap := new(MockSnap)

	reader.On("GetByID", mock.Anything, int64(42)).Return(pendingBooking(), nil)
	writer.On("AttachPaymentOrder", mock.Anything, int64(42), mock.AnythingOfType("string"), int64(100000)).Return(nil)
	snap.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(&SnapTransactionResponse{Token: "tok", RedirectURL: "https://snap/redirect"}, nil)

	svc := newTestService(reader, writer, courtsM, snap, false)
	resp, err := svc.InitPayment(context.Background(), 42, 7)

	assert.NoError(t, err)
	assert.Equal(t, "tok", resp.Token)
	assert.Equal(t, int64(42), resp.BookingID)
	assert.True(t, strings.HasPrefix(resp.OrderID, "SPORTFY-42-"))
	writer.AssertExpectations(t)
}

func TestInitPayment_ReusesPendingOrderID(t *testing.T) {
	reader := new(MockBookingReader)
	writer := new(MockPaymentWriter)
	courtsM := new(MockCourtReader)
	snap := new(MockSnap)

	b := pendingBooking()
	b.PaymentOrderID = "SPORTFY-42-abcd1234"
	reader.On("GetByID", mock.Anything, int64(42)).Return(b, nil)
	writer.On("AttachPaymentOrder", mock.Anything, int64(42), "SPORTFY-42-abcd1234", int64(100000)).Return(nil)
	snap.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(&SnapTransactionResponse{Token: "tok2", RedirectURL: "https://snap/redirect"}, nil)

	svc := newTestService(reader, writer, courtsM, snap, false)
	resp, err := svc.InitPayment(context.Background(), 42, 7)

	assert.NoError(t, err)
	assert.Equal(t, "SPORTFY-42-abcd1234", resp.OrderID)
}

func TestInitPayment_NewOrderIDAfterExpiry(t *testing.T) {
	reader := new(MockBookingReader)
	writer := new(MockPaymentWriter)
	courtsM := new(MockCourtReader)
	snap := new(MockSnap)

	b := pendingBooking()
	b.PaymentOrderID = "SPORTFY-42-abcd1234"
	b.PaymentStatus = domain.PaymentExpired
	b.Status = domain.BookingPending
	reader.On("GetByID", mock.Anything, int64(42)).Return(b, nil)
	writer.On("AttachPaymentOrder", mock.Anything, int64(42), mock.AnythingOfType("string"), int64(100000)).Return(nil)
	snap.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(&SnapTransactionResponse{Token: "tok3"}, nil)

	svc := newTestService(reader, writer, courtsM, snap, false)
	resp, err := svc.InitPayment(context.Background(), 42, 7)

	assert.NoError(t, err)
	assert.NotEqual(t, "SPORTFY-42-abcd1234", resp.OrderID, "expired session must get a fresh order id")
}

func TestInitPayment_Forbidden(t *testing.T) {
	reader := new(MockBookingReader)
	reader.On("GetByID", mock.Anything, int64(42)).Return(pendingBooking(), nil)

	svc := newTestService(reader, new(MockPaymentWriter), new(MockCourtReader), new(MockSnap), false)
	_, err := svc.InitPayment(context.Background(), 42, 99)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestInitPayment_NotFound(t *testing.T) {
	reader := new(MockBookingReader)
	reader.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	svc := newTestService(reader, new(MockPaymentWriter), new(MockCourtReader), new(MockSnap), false)
	_, err := svc.InitPayment(context.Background(), 42, 7)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHandleNotification_Settlement(t *testing.T) {
	reader := new(MockBookingReader)
	writer := new(MockPaymentWriter)

	writer.On("ApplyPaymentStatus", mock.Anything, "SPORTFY-42-abcd1234", domain.PaymentPaid).Return(true, nil)

	svc := newTestService(reader, writer, new(MockCourtReader), new(MockSnap), false)
	err := svc.HandleNotification(context.Background(), Notification{
		OrderID:           "SPORTFY-42-abcd1234",
		TransactionStatus: "settlement",
	})

	assert.NoError(t, err)
	writer.AssertExpectations(t)
}

func TestHandleNotification_DuplicateAbsorbed(t *testing.T) {
	writer := new(MockPaymentWriter)
	// second delivery of the same settlement: writer reports nothing changed
	writer.On("ApplyPaymentStatus", mock.Anything, "SPORTFY-42-abcd1234", domain.PaymentPaid).Return(false, nil)

	svc := newTestService(new(MockBookingReader), writer, new(MockCourtReader), new(MockSnap), false)
	err := svc.HandleNotification(context.Background(), Notification{
		OrderID:           "SPORTFY-42-abcd1234",
		TransactionStatus: "settlement",
	})

	assert.NoError(t, err)
}

func TestHandleNotification_UnknownOrderAcknowledged(t *testing.T) {
	writer := new(MockPaymentWriter)
	writer.On("ApplyPaymentStatus", mock.Anything, "SPORTFY-99-deadbeef", domain.PaymentPaid).
		Return(false, gorm.ErrRecordNotFound)

	svc := newTestService(new(MockBookingReader), writer, new(MockCourtReader), new(MockSnap), false)
	err := svc.HandleNotification(context.Background(), Notification{
		OrderID:           "SPORTFY-99-deadbeef",
		TransactionStatus: "settlement",
	})

	assert.NoError(t, err, "unknown order id must be acknowledged, not retried")
}

func TestHandleNotification_EmptyOrderID(t *testing.T) {
	writer := new(MockPaymentWriter)

	svc := newTestService(new(MockBookingReader), writer, new(MockCourtReader), new(MockSnap), false)
	err := svc.HandleNotification(context.Background(), Notification{TransactionStatus: "settlement"})

	assert.NoError(t, err)
	writer.AssertNotCalled(t, "ApplyPaymentStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleNotification_UnknownStatusToken(t *testing.T) {
	writer := new(MockPaymentWriter)

	svc := newTestService(new(MockBookingReader), writer, new(MockCourtReader), new(MockSnap), false)
	err := svc.HandleNotification(context.Background(), Notification{
		OrderID:           "SPORTFY-42-abcd1234",
		TransactionStatus: "refund_v2",
	})

	assert.NoError(t, err)
	writer.AssertNotCalled(t, "ApplyPaymentStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestMapTransactionStatus(t *testing.T) {
	svc := newTestService(new(MockBookingReader), new(MockPaymentWriter), new(MockCourtReader), new(MockSnap), false)

	cases := []struct {
		raw, fraud string
		want       domain.PaymentStatus
		ok         bool
	}{
		{"settlement", "", domain.PaymentPaid, true},
		{"capture", "accept", domain.PaymentPaid, true},
		{"capture", "challenge", domain.PaymentPending, true},
		{"pending", "", domain.PaymentPending, true},
		{"expire", "", domain.PaymentExpired, true},
		{"cancel", "", domain.PaymentCancelled, true},
		{"deny", "", domain.PaymentCancelled, true},
		{"Settlement", "", domain.PaymentPaid, true},
		{"chargeback", "", "", false},
	}
	for _, tc := range cases {
		got, ok := svc.mapTransactionStatus(tc.raw, tc.fraud)
		assert.Equal(t, tc.ok, ok, "token %q", tc.raw)
		if tc.ok {
			assert.Equal(t, tc.want, got, "token %q", tc.raw)
		}
	}
}

func TestMapTransactionStatus_SandboxAutoPaid(t *testing.T) {
	svc := newTestService(new(MockBookingReader), new(MockPaymentWriter), new(MockCourtReader), new(MockSnap), true)

	got, ok := svc.mapTransactionStatus("pending", "")
	assert.True(t, ok)
	assert.Equal(t, domain.PaymentPaid, got)
}

func TestHandleNotification_NotifiesOpenMatchFeed(t *testing.T) {
	reader := new(MockBookingReader)
	writer := new(MockPaymentWriter)
	feed := new(MockMatchNotifier)

	b := pendingBooking()
	b.FindOpponent = true
	writer.On("ApplyPaymentStatus", mock.Anything, "SPORTFY-42-abcd1234", domain.PaymentPaid).Return(true, nil)
	reader.On("GetByOrderID", mock.Anything, "SPORTFY-42-abcd1234").Return(b, nil)
	feed.On("NotifyMatchChanged", b, "payment_paid").Return()

	svc := NewService(reader, writer, new(MockCourtReader), new(MockSnap), feed, nil, "http://localhost:5173", false)
	err := svc.HandleNotification(context.Background(), Notification{
		OrderID:           "SPORTFY-42-abcd1234",
		TransactionStatus: "settlement",
	})

	assert.NoError(t, err)
	feed.AssertExpectations(t)
}

type MockMatchNotifier struct {
	mock.Mock
}

func (m *MockMatchNotifier) NotifyMatchChanged(b *domain.Booking, event string) {
	m.Called(b, event)
}
