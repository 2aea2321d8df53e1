package address

import (
	"strings"
	"testing"

	"github.com/pawtraits-dev/pawtraits-backend/pkg/enums"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/types"
)

func strPtr(value string) *string {
	return &value
}

func TestCustomerEmailPrefersClient(t *testing.T) {
	t.Parallel()

	addr := types.CheckoutAddress{
		Email:       "partner@example.com",
		IsForClient: true,
		ClientEmail: strPtr("client@example.com"),
	}
	if got := CustomerEmail(addr); got != "client@example.com" {
		t.Fatalf("expected client email, got %q", got)
	}

	addr.ClientEmail = nil
	if got := CustomerEmail(addr); got != "partner@example.com" {
		t.Fatalf("expected submitter email fallback, got %q", got)
	}

	addr.IsForClient = false
	addr.ClientEmail = strPtr("client@example.com")
	if got := CustomerEmail(addr); got != "partner@example.com" {
		t.Fatalf("client email must be ignored when not for client, got %q", got)
	}
}

func TestCustomerNameFallsBackToFullName(t *testing.T) {
	t.Parallel()

	addr := types.CheckoutAddress{FirstName: " Ada ", LastName: "Lovelace"}
	if got := CustomerName(addr); got != "Ada Lovelace" {
		t.Fatalf("unexpected name %q", got)
	}

	addr.IsForClient = true
	addr.ClientName = strPtr("Charlie's Human")
	if got := CustomerName(addr); got != "Charlie's Human" {
		t.Fatalf("expected client name, got %q", got)
	}

	addr.ClientName = strPtr("   ")
	if got := CustomerName(addr); got != "Ada Lovelace" {
		t.Fatalf("blank client name must fall back, got %q", got)
	}
}

func TestOrderTypeDecisionTable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		userType    enums.UserType
		isForClient bool
		want        enums.OrderType
	}{
		{enums.UserTypePartner, true, enums.OrderTypePartnerForClient},
		{enums.UserTypePartner, false, enums.OrderTypePartner},
		{enums.UserTypeCustomer, false, enums.OrderTypeCustomer},
		{enums.UserTypeCustomer, true, enums.OrderTypeCustomer},
		{enums.UserTypeAdmin, true, enums.OrderTypeCustomer},
	}
	for _, tc := range cases {
		if got := OrderTypeFor(tc.userType, tc.isForClient); got != tc.want {
			t.Fatalf("OrderTypeFor(%s, %t) = %s, want %s", tc.userType, tc.isForClient, got, tc.want)
		}
	}
}

func TestGelatoLinesPrefersStructured(t *testing.T) {
	t.Parallel()

	addr := types.CheckoutAddress{
		AddressLine1: strPtr("12 Paw Lane"),
		AddressLine2: strPtr("Flat 3"),
		Address:      "ignored legacy line",
	}
	line1, line2 := GelatoLines(addr)
	if line1 != "12 Paw Lane" || line2 != "Flat 3" {
		t.Fatalf("unexpected lines %q / %q", line1, line2)
	}
}

func TestGelatoLinesLegacyPassThrough(t *testing.T) {
	t.Parallel()

	legacy := "12 Paw Lane, Flat 3, Whiskerton"
	addr := types.CheckoutAddress{Address: legacy}
	line1, line2 := GelatoLines(addr)
	if line1 != legacy {
		t.Fatalf("legacy line must pass through verbatim, got %q", line1)
	}
	if line2 != "" {
		t.Fatalf("legacy addresses never synthesize a second line, got %q", line2)
	}
}

func TestCombinedAddressRoundTrip(t *testing.T) {
	t.Parallel()

	addr := types.CheckoutAddress{
		AddressLine1: strPtr("12 Paw Lane"),
		AddressLine2: strPtr("Flat 3"),
	}
	line1, line2 := GelatoLines(addr)
	rebuilt := types.CheckoutAddress{AddressLine1: &line1, AddressLine2: &line2}

	combined := CombinedAddress(rebuilt)
	if !strings.Contains(combined, "12 Paw Lane") || !strings.Contains(combined, "Flat 3") {
		t.Fatalf("combined address %q lost line content", combined)
	}
}

func TestCombinedAddressSingleLine(t *testing.T) {
	t.Parallel()

	addr := types.CheckoutAddress{Address: "12 Paw Lane"}
	if got := CombinedAddress(addr); got != "12 Paw Lane" {
		t.Fatalf("unexpected combined address %q", got)
	}
}
