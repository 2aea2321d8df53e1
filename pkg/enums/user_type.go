package enums

import "fmt"

// UserType identifies who is acting on the storefront.
type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypePartner  UserType = "partner"
	UserTypeAdmin    UserType = "admin"
)

var validUserTypes = []UserType{
	UserTypeCustomer,
	UserTypePartner,
	UserTypeAdmin,
}

// String implements fmt.Stringer.
func (u UserType) String() string {
	return string(u)
}

// IsValid reports whether the user type is recognized.
func (u UserType) IsValid() bool {
	for _, candidate := range validUserTypes {
		if candidate == u {
			return true
		}
	}
	return false
}

// ParseUserType converts a raw string into a UserType.
func ParseUserType(value string) (UserType, error) {
	for _, candidate := range validUserTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user type %q", value)
}
