package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carwash-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(baseURL string) utils.GatewayConfig {
	return utils.GatewayConfig{
		BaseURL:          baseURL,
		AccessToken:      "test-token",
		EntityID:         "ent-main",
		ApplePayEntityID: "ent-applepay",
		Currency:         "SAR",
		Timeout:          2 * time.Second,
	}
}

func TestPrepareCheckout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/checkouts", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "ent-main", r.PostForm.Get("entityId"))
		assert.Equal(t, "360.00", r.PostForm.Get("amount"))
		assert.Equal(t, "SAR", r.PostForm.Get("currency"))
		assert.Equal(t, "DB", r.PostForm.Get("paymentType"))
		assert.Equal(t, "noura@example.com", r.PostForm.Get("customer.email"))

		json.NewEncoder(w).Encode(CheckoutResponse{
			ID:     "CHK-12345",
			Result: Result{Code: "000.200.100", Description: "successfully created checkout"},
		})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), zap.NewNop())
	checkout, err := client.PrepareCheckout(context.Background(), &CheckoutRequest{
		Amount:                360,
		PaymentType:           "DB",
		MerchantTransactionID: "WASH-20260831-120000-0001",
		CustomerEmail:         "noura@example.com",
		GivenName:             "Noura",
		Surname:               "Alqahtani",
	})
	require.NoError(t, err)
	assert.Equal(t, "CHK-12345", checkout.ID)
}

func TestPrepareCheckoutRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(CheckoutResponse{
			Result: Result{Code: "200.300.404", Description: "invalid or missing parameter"},
		})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), zap.NewNop())
	_, err := client.PrepareCheckout(context.Background(), &CheckoutRequest{Amount: 100, PaymentType: "DB"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "200.300.404")
}

func TestPaymentStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkouts/CHK-12345/payment", r.URL.Path)
		assert.Equal(t, "ent-main", r.URL.Query().Get("entityId"))

		json.NewEncoder(w).Encode(StatusResponse{
			ID:     "8ac7a4a0123",
			Amount: "360.00",
			Result: Result{Code: "000.000.000", Description: "Transaction succeeded"},
		})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), zap.NewNop())
	status, err := client.PaymentStatus(context.Background(), "/v1/checkouts/CHK-12345/payment", "ent-main")
	require.NoError(t, err)
	assert.Equal(t, "000.000.000", status.Result.Code)
	assert.Equal(t, "8ac7a4a0123", status.ID)
}

// A wrong-entity rejection on the primary id must trigger a second poll
// with the Apple Pay entity id.
func TestPaymentStatusWithFallback(t *testing.T) {
	var calls []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entityID := r.URL.Query().Get("entityId")
		calls = append(calls, entityID)

		if entityID == "ent-main" {
			json.NewEncoder(w).Encode(StatusResponse{
				Result: Result{Code: "200.300.404", Description: "invalid or missing parameter"},
			})
			return
		}
		json.NewEncoder(w).Encode(StatusResponse{
			ID:     "8ac7a4a0456",
			Result: Result{Code: "000.000.000", Description: "Transaction succeeded"},
		})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), zap.NewNop())
	status, err := client.PaymentStatusWithFallback(context.Background(), "/v1/checkouts/CHK-12345/payment")
	require.NoError(t, err)
	assert.Equal(t, "000.000.000", status.Result.Code)
	assert.Equal(t, []string{"ent-main", "ent-applepay"}, calls)
}

func TestPaymentStatusWithFallbackUsableFirstTry(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(StatusResponse{
			ID:     "8ac7a4a0789",
			Result: Result{Code: "800.100.151", Description: "transaction declined"},
		})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), zap.NewNop())
	status, err := client.PaymentStatusWithFallback(context.Background(), "/v1/checkouts/CHK-12345/payment")
	require.NoError(t, err)

	// A decline is a usable answer; no fallback poll.
	assert.Equal(t, "800.100.151", status.Result.Code)
	assert.Equal(t, 1, calls)
}

func TestIsSuccessCode(t *testing.T) {
	assert.True(t, IsSuccessCode("000.000.000"))
	assert.True(t, IsSuccessCode("000.100.110"))
	assert.True(t, IsSuccessCode("000.600.000"))

	assert.False(t, IsSuccessCode("800.100.151"))
	assert.False(t, IsSuccessCode("200.300.404"))
	assert.False(t, IsSuccessCode("000.200.999"))
	assert.False(t, IsSuccessCode(""))
}
