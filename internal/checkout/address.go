package checkout

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/multierr"

	"github.com/pawtraits-dev/pawtraits-backend/internal/address"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/db/models"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/types"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// postcodePatterns is keyed by ISO 3166-1 alpha-2 code. Countries without
// an entry are accepted as-is (open-world default).
var postcodePatterns = map[string]*regexp.Regexp{
	"GB": regexp.MustCompile(`(?i)^[A-Z]{1,2}[0-9][A-Z0-9]?\s?[0-9][A-Z]{2}$`),
	"US": regexp.MustCompile(`^[0-9]{5}(-[0-9]{4})?$`),
	"CA": regexp.MustCompile(`(?i)^[A-Z][0-9][A-Z]\s?[0-9][A-Z][0-9]$`),
	"DE": regexp.MustCompile(`^[0-9]{5}$`),
	"FR": regexp.MustCompile(`^[0-9]{5}$`),
	"AU": regexp.MustCompile(`^[0-9]{4}$`),
}

// ValidateAddress checks every field and accumulates all violations into a
// single result; it never stops at the first problem.
func ValidateAddress(addr types.CheckoutAddress, countries []models.Country) types.ValidationResult {
	var violations error

	appendIf := func(failed bool, message string) {
		if failed {
			violations = multierr.Append(violations, fmt.Errorf("%s", message))
		}
	}

	appendIf(strings.TrimSpace(addr.FirstName) == "", "first name is required")
	appendIf(strings.TrimSpace(addr.LastName) == "", "last name is required")

	email := strings.TrimSpace(addr.Email)
	appendIf(email == "", "email is required")
	appendIf(email != "" && !emailPattern.MatchString(email), "email is not valid")

	line1 := addr.Line1()
	appendIf(line1 == "", "address line is required")
	// The print vendor's limit is 35 characters, not bytes: accented
	// addresses must not lose headroom to their UTF-8 encoding.
	appendIf(utf8.RuneCountInString(line1) > address.GelatoLineLimit,
		fmt.Sprintf("address line 1 exceeds the %d character limit", address.GelatoLineLimit))
	appendIf(utf8.RuneCountInString(addr.Line2()) > address.GelatoLineLimit,
		fmt.Sprintf("address line 2 exceeds the %d character limit", address.GelatoLineLimit))

	appendIf(strings.TrimSpace(addr.City) == "", "city is required")

	country := strings.TrimSpace(addr.Country)
	appendIf(country == "", "country is required")
	if country != "" && len(countries) > 0 && lookupCountry(country, countries) == nil {
		appendIf(true, fmt.Sprintf("country %q is not supported", country))
	}

	postcode := strings.TrimSpace(addr.Postcode)
	appendIf(postcode == "", "postcode is required")
	if postcode != "" && country != "" {
		if res := validatePostcode(postcode, country, countries); !res.IsValid {
			appendIf(true, res.Error)
		}
	}

	if addr.IsForClient {
		appendIf(addr.ClientName == nil || strings.TrimSpace(*addr.ClientName) == "",
			"client name is required for client orders")
		clientEmail := ""
		if addr.ClientEmail != nil {
			clientEmail = strings.TrimSpace(*addr.ClientEmail)
		}
		appendIf(clientEmail == "", "client email is required for client orders")
		appendIf(clientEmail != "" && !emailPattern.MatchString(clientEmail), "client email is not valid")
	}

	if violations != nil {
		return types.Invalid(violations.Error())
	}
	return types.Valid()
}

// validatePostcode applies the country-specific format rule. The country
// may arrive as a display name or an ISO code; unlisted countries pass.
func validatePostcode(postcode, country string, countries []models.Country) types.ValidationResult {
	code := strings.ToUpper(strings.TrimSpace(country))
	if match := lookupCountry(country, countries); match != nil {
		code = strings.ToUpper(match.Code)
	}

	pattern, ok := postcodePatterns[code]
	if !ok {
		return types.Valid()
	}
	if !pattern.MatchString(strings.TrimSpace(postcode)) {
		return types.Invalid(fmt.Sprintf("postcode %q is not valid for %s", postcode, country))
	}
	return types.Valid()
}

func lookupCountry(country string, countries []models.Country) *models.Country {
	for i := range countries {
		if strings.EqualFold(countries[i].Name, country) || strings.EqualFold(countries[i].Code, country) {
			return &countries[i]
		}
	}
	return nil
}
