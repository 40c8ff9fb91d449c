package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SnapClient is a thin wrapper over the Midtrans Snap sandbox API. The server
// key goes into HTTP basic auth with an empty password.
type SnapClient struct {
	serverKey string
	baseURL   string
	httpc     *http.Client
}

func NewSnapClient(serverKey, baseURL string) *SnapClient {
	return &SnapClient{
		serverKey: serverKey,
		baseURL:   baseURL,
		httpc:     &http.Client{Timeout: 15 * time.Second},
	}
}

type SnapTransactionRequest struct {
	TransactionDetails struct {
		OrderID     string `json:"order_id"`
		GrossAmount int64  `json:"gross_amount"`
	} `json:"transaction_details"`
	CustomerDetails struct {
		FirstName string `json:"first_name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
	} `json:"customer_details"`
	ItemDetails []SnapItem `json:"item_details"`
	Callbacks   struct {
		Finish string `json:"finish"`
	} `json:"callbacks"`
}

type SnapItem struct {
	ID       string `json:"id"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
}

type SnapTransactionResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

func (c *SnapClient) CreateTransaction(ctx context.Context, req SnapTransactionRequest) (*SnapTransactionResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transactions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.SetBasicAuth(c.serverKey, "")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("snap request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("snap returned status %d", resp.StatusCode)
	}

	var out SnapTransactionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("snap response decode failed: %w", err)
	}
	return &out, nil
}
