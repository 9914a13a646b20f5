// Package checkout talks to the hosted payment provider behind the browser checkout widget.
package checkout

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/stpnv0/EventZone/internal/service/ports"
)

const defaultBaseURL = "https://api.razorpay.com"

var ErrGateway = errors.New("payment gateway error")

type Razorpay struct {
	keyID     string
	keySecret string
	baseURL   string
	client    *http.Client
}

func NewRazorpay(keyID, keySecret, baseURL string, timeout time.Duration) *Razorpay {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Razorpay{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   baseURL,
		client:    &http.Client{Timeout: timeout},
	}
}

func (r *Razorpay) KeyID() string {
	return r.keyID
}

type orderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type orderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

func (r *Razorpay) CreateOrder(ctx context.Context, req ports.OrderRequest) (string, error) {
	body, err := json.Marshal(orderRequest{
		Amount:   req.AmountMinor,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Notes:    req.Notes,
	})
	if err != nil {
		return "", fmt.Errorf("marshal order: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build order request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(r.keyID, r.keySecret)

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrGateway, err)
	}

	if resp.StatusCode != http.StatusOK {
		var e errorResponse
		_ = json.Unmarshal(raw, &e)
		return "", fmt.Errorf("%w: status %d: %s", ErrGateway, resp.StatusCode, e.Error.Description)
	}

	var order orderResponse
	if err = json.Unmarshal(raw, &order); err != nil {
		return "", fmt.Errorf("%w: decode order: %v", ErrGateway, err)
	}
	if order.ID == "" {
		return "", fmt.Errorf("%w: empty order id", ErrGateway)
	}
	return order.ID, nil
}

// VerifySignature checks the widget's callback: hex(HMAC-SHA256(secret, order_id|payment_id)).
func (r *Razorpay) VerifySignature(orderID, paymentID, signature string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}
	return hmac.Equal([]byte(Sign(r.keySecret, orderID, paymentID)), []byte(signature))
}

func Sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
