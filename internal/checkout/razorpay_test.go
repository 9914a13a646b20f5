package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stpnv0/EventZone/internal/service/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRazorpay_CreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/orders", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "secret", pass)

		var body orderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(19900), body.Amount)
		assert.Equal(t, "INR", body.Currency)
		assert.Equal(t, "vip_subscription", body.Notes["purpose"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"order_123","status":"created"}`))
	}))
	defer srv.Close()

	rp := NewRazorpay("rzp_test_key", "secret", srv.URL, time.Second)

	id, err := rp.CreateOrder(context.Background(), ports.OrderRequest{
		AmountMinor: 19900,
		Currency:    "INR",
		Receipt:     "r1",
		Notes:       map[string]string{"purpose": "vip_subscription"},
	})

	require.NoError(t, err)
	assert.Equal(t, "order_123", id)
	assert.Equal(t, "rzp_test_key", rp.KeyID())
}

func TestRazorpay_CreateOrder_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"amount too small"}}`))
	}))
	defer srv.Close()

	rp := NewRazorpay("k", "s", srv.URL, time.Second)

	_, err := rp.CreateOrder(context.Background(), ports.OrderRequest{AmountMinor: 1, Currency: "INR"})

	assert.ErrorIs(t, err, ErrGateway)
	assert.Contains(t, err.Error(), "amount too small")
}

func TestRazorpay_VerifySignature(t *testing.T) {
	rp := NewRazorpay("k", "secret", "", time.Second)
	good := Sign("secret", "order_1", "pay_1")

	tests := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		want      bool
	}{
		{name: "valid", orderID: "order_1", paymentID: "pay_1", signature: good, want: true},
		{name: "other payment", orderID: "order_1", paymentID: "pay_2", signature: good, want: false},
		{name: "wrong secret", orderID: "order_1", paymentID: "pay_1", signature: Sign("other", "order_1", "pay_1"), want: false},
		{name: "empty signature", orderID: "order_1", paymentID: "pay_1", signature: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rp.VerifySignature(tt.orderID, tt.paymentID, tt.signature))
		})
	}
}
