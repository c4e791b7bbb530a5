package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"carwash-booking/pkg/utils"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// Client encapsulates HTTP interaction with the HyperPay gateway.
type Client struct {
	cfg        utils.GatewayConfig
	httpClient *retryablehttp.Client
	log        *zap.Logger
}

// Result is the code/description pair every gateway response carries.
type Result struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// CheckoutRequest holds the fields sent to the prepare-checkout call.
type CheckoutRequest struct {
	Amount                float64
	PaymentType           string
	MerchantTransactionID string
	CustomerEmail         string
	GivenName             string
	Surname               string
	Street                string
	City                  string
	Country               string
}

// CheckoutResponse is the gateway answer to a prepare-checkout call. ID is
// the opaque checkout identifier the hosted form is keyed by.
type CheckoutResponse struct {
	ID        string `json:"id"`
	Integrity string `json:"integrity"`
	Result    Result `json:"result"`
}

// StatusResponse is the gateway answer to a payment-status poll.
type StatusResponse struct {
	ID                    string `json:"id"`
	Amount                string `json:"amount"`
	Currency              string `json:"currency"`
	PaymentBrand          string `json:"paymentBrand"`
	MerchantTransactionID string `json:"merchantTransactionId"`
	Result                Result `json:"result"`
}

// NewClient creates a gateway client with bounded retries and an explicit
// per-request timeout. A hung gateway connection must not hold requests open.
func NewClient(cfg utils.GatewayConfig, log *zap.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 2
	rc.HTTPClient.Timeout = cfg.Timeout
	rc.Logger = nil

	return &Client{
		cfg:        cfg,
		httpClient: rc,
		log:        log.With(zap.String("client", "hyperpay")),
	}
}

// PrepareCheckout creates a hosted checkout session for the given amount.
func (c *Client) PrepareCheckout(ctx context.Context, req *CheckoutRequest) (*CheckoutResponse, error) {
	form := url.Values{}
	form.Set("entityId", c.cfg.EntityID)
	form.Set("amount", fmt.Sprintf("%.2f", req.Amount))
	form.Set("currency", c.cfg.Currency)
	form.Set("paymentType", req.PaymentType)
	form.Set("merchantTransactionId", req.MerchantTransactionID)
	form.Set("customer.email", req.CustomerEmail)
	form.Set("customer.givenName", req.GivenName)
	form.Set("customer.surname", req.Surname)
	form.Set("billing.street1", req.Street)
	form.Set("billing.city", req.City)
	form.Set("billing.country", req.Country)

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/v1/checkouts"

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create checkout request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("prepare checkout: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("prepare checkout: unexpected status %d", resp.StatusCode)
	}

	var checkout CheckoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&checkout); err != nil {
		return nil, fmt.Errorf("decode checkout response: %w", err)
	}

	if checkout.ID == "" {
		return nil, fmt.Errorf("prepare checkout rejected: %s %s", checkout.Result.Code, checkout.Result.Description)
	}

	c.log.Info("Checkout prepared",
		zap.String("checkout_id", checkout.ID),
		zap.String("merchant_transaction_id", req.MerchantTransactionID))

	return &checkout, nil
}

// PaymentStatus polls the final status of a checkout via its resource path.
func (c *Client) PaymentStatus(ctx context.Context, resourcePath, entityID string) (*StatusResponse, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + resourcePath + "?entityId=" + url.QueryEscape(entityID)

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create status request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("payment status: %w", err)
	}
	defer resp.Body.Close()

	var status StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("decode status response: %w", err)
	}

	return &status, nil
}

// PaymentStatusWithFallback queries with the primary merchant entity id and
// retries with the Apple Pay entity id when the first yields no usable result.
func (c *Client) PaymentStatusWithFallback(ctx context.Context, resourcePath string) (*StatusResponse, error) {
	status, err := c.PaymentStatus(ctx, resourcePath, c.cfg.EntityID)
	if err == nil && usableResult(status) {
		return status, nil
	}

	if c.cfg.ApplePayEntityID == "" {
		if err != nil {
			return nil, err
		}
		return status, nil
	}

	c.log.Info("Primary entity returned no usable result, trying Apple Pay entity",
		zap.String("resource_path", resourcePath),
		zap.Error(err))

	fallback, fbErr := c.PaymentStatus(ctx, resourcePath, c.cfg.ApplePayEntityID)
	if fbErr != nil {
		if err != nil {
			return nil, fmt.Errorf("payment status fallback: %w", fbErr)
		}
		return status, nil
	}

	return fallback, nil
}

func usableResult(status *StatusResponse) bool {
	// Requests rejected for a wrong entity id come back with a 200.* or
	// 800.900.* parameter error and no transaction id.
	if status.ID == "" {
		return false
	}
	return !strings.HasPrefix(status.Result.Code, "200.") && !strings.HasPrefix(status.Result.Code, "800.900.")
}
