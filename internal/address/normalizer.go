package address

import (
	"strings"

	"github.com/pawtraits-dev/pawtraits-backend/pkg/enums"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/types"
)

// GelatoLineLimit is the print vendor's hard cap on address line length.
const GelatoLineLimit = 35

// CustomerEmail resolves who the order belongs to: the partner's client
// when the order is placed on a client's behalf, otherwise the submitter.
func CustomerEmail(addr types.CheckoutAddress) string {
	if addr.IsForClient && addr.ClientEmail != nil && strings.TrimSpace(*addr.ClientEmail) != "" {
		return strings.TrimSpace(*addr.ClientEmail)
	}
	return strings.TrimSpace(addr.Email)
}

// CustomerName mirrors the CustomerEmail precedence, falling back to the
// submitter's full name.
func CustomerName(addr types.CheckoutAddress) string {
	if addr.IsForClient && addr.ClientName != nil && strings.TrimSpace(*addr.ClientName) != "" {
		return strings.TrimSpace(*addr.ClientName)
	}
	return strings.TrimSpace(strings.TrimSpace(addr.FirstName) + " " + strings.TrimSpace(addr.LastName))
}

// OrderTypeFor classifies the order by who placed it and for whom.
// IsForClient only matters for partners.
func OrderTypeFor(userType enums.UserType, isForClient bool) enums.OrderType {
	if userType == enums.UserTypePartner {
		if isForClient {
			return enums.OrderTypePartnerForClient
		}
		return enums.OrderTypePartner
	}
	return enums.OrderTypeCustomer
}

// GelatoLines returns the two vendor-facing address lines. Structured
// fields win; a legacy single-line address is passed through verbatim as
// line 1 with no line 2. No splitting is attempted, so legacy content past
// the vendor limit is caught by validation rather than truncated here.
func GelatoLines(addr types.CheckoutAddress) (string, string) {
	if addr.AddressLine1 != nil && strings.TrimSpace(*addr.AddressLine1) != "" {
		return strings.TrimSpace(*addr.AddressLine1), addr.Line2()
	}
	return strings.TrimSpace(addr.Address), ""
}

// CombinedAddress is the display-only comma-joined form of the lines.
func CombinedAddress(addr types.CheckoutAddress) string {
	line1 := addr.Line1()
	line2 := addr.Line2()
	if line2 == "" {
		return line1
	}
	if line1 == "" {
		return line2
	}
	return line1 + ", " + line2
}
