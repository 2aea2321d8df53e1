package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/pawtraits-dev/pawtraits-backend/pkg/errors"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/types"
)

func TestValidateReferralDecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != referralValidatePath {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["referralCode"] != "PAL10" {
			t.Fatalf("unexpected referral code %v", body["referralCode"])
		}
		json.NewEncoder(w).Encode(types.ReferralValidation{
			Valid: true,
			Discount: &types.ReferralDiscount{
				Eligible:    true,
				Amount:      500,
				Description: "10% off first order",
			},
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("build client: %v", err)
	}

	result, err := client.ValidateReferral(context.Background(), ReferralValidateRequest{
		ReferralCode:  "PAL10",
		CustomerEmail: "buyer@example.com",
		OrderTotal:    5000,
	})
	if err != nil {
		t.Fatalf("validate referral: %v", err)
	}
	if !result.Valid || result.Discount == nil || result.Discount.Amount != 500 {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestValidateCartForwardsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Fatalf("unexpected auth header %q", got)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["mode"] != "full" {
			t.Fatalf("expected full mode, got %q", body["mode"])
		}
		json.NewEncoder(w).Encode(types.CartValidation{IsValid: true})
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("build client: %v", err)
	}

	result, err := client.ValidateCart(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("validate cart: %v", err)
	}
	if !result.IsValid {
		t.Fatalf("expected valid cart, got %+v", result)
	}
}

func TestValidateCartRequiresToken(t *testing.T) {
	client, err := NewClient("http://localhost:9")
	if err != nil {
		t.Fatalf("build client: %v", err)
	}
	_, err = client.ValidateCart(context.Background(), "  ")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestNon2xxBecomesDependencyError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("build client: %v", err)
	}

	_, err = client.ValidateReferral(context.Background(), ReferralValidateRequest{ReferralCode: "X"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestShippingOptionsEmptyListIsHardFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"shippingOptions": []any{}})
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("build client: %v", err)
	}

	_, err = client.ShippingOptions(context.Background(), ShippingOptionsRequest{})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error for empty options, got %v", err)
	}
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient("   "); err == nil {
		t.Fatal("expected error for missing base url")
	}
}
