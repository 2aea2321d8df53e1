package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/pawtraits-dev/pawtraits-backend/pkg/errors"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/types"
)

const (
	referralValidatePath = "/referrals/validate"
	cartValidatePath     = "/cart/validate"
	shippingOptionsPath  = "/shipping/options"

	responseBodyReadLimit int64 = 1 << 20
)

var errBaseURLRequired = errors.New("platform base url is required")

// Client calls the sibling storefront API that owns carts, referral codes,
// and shipping quotes. Every method issues exactly one request; retrying is
// left to the end user.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient builds the platform client for the given base URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errBaseURLRequired
	}

	client := &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

// ReferralValidateRequest is the payload for the referral eligibility check.
type ReferralValidateRequest struct {
	ReferralCode  string      `json:"referralCode"`
	CustomerEmail string      `json:"customerEmail"`
	OrderTotal    types.Money `json:"orderTotal"`
}

// ValidateReferral checks a referral code against an order total.
func (c *Client) ValidateReferral(ctx context.Context, req ReferralValidateRequest) (*types.ReferralValidation, error) {
	var result types.ReferralValidation
	if err := c.post(ctx, referralValidatePath, "", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type cartValidateRequest struct {
	Mode string `json:"mode"`
}

// ValidateCart runs the platform's full cart availability check on behalf of
// the bearer of authToken.
func (c *Client) ValidateCart(ctx context.Context, authToken string) (*types.CartValidation, error) {
	if strings.TrimSpace(authToken) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "auth token is required for cart validation")
	}
	var result types.CartValidation
	if err := c.post(ctx, cartValidatePath, authToken, cartValidateRequest{Mode: "full"}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ShippingOptionsRequest is the payload for the shipping quote.
type ShippingOptionsRequest struct {
	ShippingAddress types.CheckoutAddress `json:"shippingAddress"`
	CartItems       []types.CartItem      `json:"cartItems"`
}

type shippingOptionsResponse struct {
	ShippingOptions []types.ShippingOption `json:"shippingOptions"`
}

// ShippingOptions fetches the fulfillment choices for an address and cart.
// An empty list is a hard failure: the print vendor cannot ship the order.
func (c *Client) ShippingOptions(ctx context.Context, req ShippingOptionsRequest) ([]types.ShippingOption, error) {
	var result shippingOptionsResponse
	if err := c.post(ctx, shippingOptionsPath, "", req, &result); err != nil {
		return nil, err
	}
	if len(result.ShippingOptions) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "no shipping options available")
	}
	return result.ShippingOptions, nil
}

func (c *Client) post(ctx context.Context, path, authToken string, payload, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode platform request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build platform request")
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("calling platform %s", path))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("reading platform %s response", path))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("platform %s returned status %d", path, resp.StatusCode)).
			WithDetails(map[string]any{"status": resp.StatusCode})
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("decoding platform %s response", path))
	}
	return nil
}
