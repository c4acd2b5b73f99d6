// model/enums.go
package model

// NotificationChannel is the delivery medium for a notification.
type NotificationChannel string

const (
	ChannelEmail NotificationChannel = "EMAIL"
	ChannelSMS   NotificationChannel = "SMS"
	ChannelPush  NotificationChannel = "PUSH"
)

// Valid reports whether the channel is one of the supported values.
func (c NotificationChannel) Valid() bool {
	switch c {
	case ChannelEmail, ChannelSMS, ChannelPush:
		return true
	}
	return false
}

// NotificationPriority controls delivery ordering on the server side.
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "LOW"
	PriorityNormal NotificationPriority = "NORMAL"
	PriorityHigh   NotificationPriority = "HIGH"
	PriorityUrgent NotificationPriority = "URGENT"
)

// NotificationStatus is the server-reported delivery state.
type NotificationStatus string

const (
	StatusPending    NotificationStatus = "PENDING"
	StatusProcessing NotificationStatus = "PROCESSING"
	StatusSent       NotificationStatus = "SENT"
	StatusFailed     NotificationStatus = "FAILED"
	StatusRetry      NotificationStatus = "RETRY"
	StatusCancelled  NotificationStatus = "CANCELLED"
)

// PlatformType identifies the push platform a device token belongs to.
type PlatformType string

const (
	PlatformAndroid PlatformType = "ANDROID"
	PlatformIOS     PlatformType = "IOS"
	PlatformWeb     PlatformType = "WEB"
)

// EmailAccountCategory is a logical sender-identity bucket. It names a class
// of sender (noreply, marketing, support, info), not a concrete mailbox; the
// server resolves the actual account. Values are append-only: renaming or
// removing one is a breaking contract change.
type EmailAccountCategory string

const (
	// AccountNotifications covers system and transactional mail, typically
	// sent from a no-reply address.
	AccountNotifications EmailAccountCategory = "NOTIFICATIONS"

	// AccountMarketing covers campaigns, offers and engagement mail.
	AccountMarketing EmailAccountCategory = "MARKETING"

	// AccountSupport is the reply-enabled sender for customer communication
	// and compliance workflows.
	AccountSupport EmailAccountCategory = "SUPPORT"

	// AccountInformational covers policy updates and announcements that are
	// neither transactional nor marketing.
	AccountInformational EmailAccountCategory = "INFORMATIONAL"
)
