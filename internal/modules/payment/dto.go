package payment

// Notification is the gateway's webhook payload. Delivery is at-least-once,
// unordered and possibly duplicated; processing must stay idempotent.
type Notification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
}

type InitPaymentResponse struct {
	RedirectURL string `json:"redirect_url"`
	Token       string `json:"token"`
	BookingID   int64  `json:"booking_id"`
	OrderID     string `json:"order_id"`
}
