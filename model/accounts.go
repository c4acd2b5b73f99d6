// model/accounts.go
package model

// EmailAccountSelector tells the server which sender identity an email should
// originate from. Exactly one of Name or Category is set; both empty means the
// server falls back to its default account.
type EmailAccountSelector struct {
	// Name is a concrete account name supplied by the caller. When set it is
	// used verbatim and the type-based lookup is bypassed.
	Name string

	// Category is the sender-identity bucket declared by the notification
	// type.
	Category EmailAccountCategory
}

// IsDefault reports whether neither an explicit account nor a category was
// resolved, leaving account selection to the server.
func (s EmailAccountSelector) IsDefault() bool {
	return s.Name == "" && s.Category == ""
}

// ResolveEmailAccount maps a request to the sender identity its email should
// originate from. Precedence: the request's explicit EmailAccountName wins
// outright; otherwise the type's statically declared category applies; if the
// type declares none, the selector is the server default. Pure lookup, the
// request is never modified.
func ResolveEmailAccount(req *SendNotificationRequest) EmailAccountSelector {
	if req.EmailAccountName != "" {
		return EmailAccountSelector{Name: req.EmailAccountName}
	}
	if category, ok := req.Type.EmailAccountCategory(); ok {
		return EmailAccountSelector{Category: category}
	}
	return EmailAccountSelector{}
}
