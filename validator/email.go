// validator/email.go
package validator

import "regexp"

// emailPattern requires a local part, an @, and a domain with a dotted TLD of
// at least two letters.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// IsValidEmail reports whether addr satisfies the email grammar the
// notification platform accepts.
func IsValidEmail(addr string) bool {
	return addr != "" && emailPattern.MatchString(addr)
}
