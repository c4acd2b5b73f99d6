// validator/phone.go
package validator

import "github.com/nyaruka/phonenumbers"

// IsValidPhoneNumber reports whether number parses as a valid phone number in
// E.164-style international format. Validation delegates to the libphonenumber
// port so country numbering plans stay current; numbers without a leading +
// cannot be resolved to a region and are rejected.
func IsValidPhoneNumber(number string) bool {
	parsed, err := phonenumbers.Parse(number, "")
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(parsed)
}
