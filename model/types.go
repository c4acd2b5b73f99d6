// model/types.go
package model

// NotificationType tags the business use-case of a request. The catalog is a
// strict contract with the notification platform: any type added on the server
// side must be added here as well.
type NotificationType string

const (
	TypePushNotification NotificationType = "PUSH_NOTIFICATION"

	// Account & auth
	TypeEmailVerification NotificationType = "EMAIL_VERIFICATION"
	TypePasswordReset     NotificationType = "PASSWORD_RESET"
	TypeWelcomeEmail      NotificationType = "WELCOME_EMAIL"

	// Transactions
	TypeTransactionReceipt  NotificationType = "TRANSACTION_RECEIPT"
	TypeSMSTransactionAlert NotificationType = "SMS_TRANSACTION_ALERT"

	// Subscriptions & promos
	TypeSubscriptionExpiring NotificationType = "SUBSCRIPTION_EXPIRING"
	TypePromotionalOffer     NotificationType = "PROMOTIONAL_OFFER"
	TypeSMSPromotionalOffer  NotificationType = "SMS_PROMOTIONAL_OFFER"
	TypePushPromotional      NotificationType = "PUSH_PROMOTIONAL"

	// Sports
	TypeMatchTicketAvailable NotificationType = "MATCH_TICKET_AVAILABLE"
	TypeSMSMatchReminder     NotificationType = "SMS_MATCH_REMINDER"
	TypePushMatchUpdate      NotificationType = "PUSH_MATCH_UPDATE"
	TypePushBetUpdate        NotificationType = "PUSH_BET_UPDATE"

	// Security
	TypeSMSVerification  NotificationType = "SMS_VERIFICATION"
	TypeSMSSecurityAlert NotificationType = "SMS_SECURITY_ALERT"

	// KYC - user facing
	TypeKYCSubmitted            NotificationType = "KYC_SUBMITTED"
	TypeKYCApproved             NotificationType = "KYC_APPROVED"
	TypeKYCRejected             NotificationType = "KYC_REJECTED"
	TypeKYCResubmissionRequired NotificationType = "KYC_RESUBMISSION_REQUIRED"
	TypeKYCDocumentExpiring     NotificationType = "KYC_DOCUMENT_EXPIRING"

	// KYC - admin / compliance
	TypeKYCReviewRequired     NotificationType = "KYC_REVIEW_REQUIRED"
	TypeKYCManualVerification NotificationType = "KYC_MANUAL_VERIFICATION"
	TypeKYCSLABreach          NotificationType = "KYC_SLA_BREACH"

	// System & maintenance
	TypeSystemMaintenanceScheduled NotificationType = "SYSTEM_MAINTENANCE_SCHEDULED"
	TypeSystemMaintenanceStarted   NotificationType = "SYSTEM_MAINTENANCE_STARTED"
	TypeSystemMaintenanceCompleted NotificationType = "SYSTEM_MAINTENANCE_COMPLETED"
	TypeSystemOutage               NotificationType = "SYSTEM_OUTAGE"
	TypeSystemRecovery             NotificationType = "SYSTEM_RECOVERY"
)

// typeAttributes are the static per-type properties the platform declares:
// the channel the type is normally delivered over, a human-readable name, and
// for email types the sender-identity category (empty when the server should
// fall back to its default account).
type typeAttributes struct {
	defaultChannel NotificationChannel
	displayName    string
	emailCategory  EmailAccountCategory
}

var typeCatalog = map[NotificationType]typeAttributes{
	TypePushNotification: {ChannelPush, "Generic Push Notification", ""},

	TypeEmailVerification: {ChannelEmail, "Email Verification", AccountNotifications},
	TypePasswordReset:     {ChannelEmail, "Password Reset", AccountNotifications},
	TypeWelcomeEmail:      {ChannelEmail, "Welcome Email", AccountNotifications},

	TypeTransactionReceipt:  {ChannelEmail, "Transaction Receipt", AccountNotifications},
	TypeSMSTransactionAlert: {ChannelSMS, "Transaction Alert", ""},

	TypeSubscriptionExpiring: {ChannelEmail, "Subscription Expiring", AccountNotifications},
	TypePromotionalOffer:     {ChannelEmail, "Promotional Offer", AccountMarketing},
	TypeSMSPromotionalOffer:  {ChannelSMS, "Promotional Offer", ""},
	TypePushPromotional:      {ChannelPush, "Promotional Notification", ""},

	TypeMatchTicketAvailable: {ChannelEmail, "Match Ticket Available", AccountMarketing},
	TypeSMSMatchReminder:     {ChannelSMS, "Match Reminder", ""},
	TypePushMatchUpdate:      {ChannelPush, "Match Update", ""},
	TypePushBetUpdate:        {ChannelPush, "Bet Update", ""},

	TypeSMSVerification:  {ChannelSMS, "SMS Verification", ""},
	TypeSMSSecurityAlert: {ChannelSMS, "Security Alert", ""},

	TypeKYCSubmitted:            {ChannelEmail, "KYC Submitted", AccountNotifications},
	TypeKYCApproved:             {ChannelEmail, "KYC Approved", AccountNotifications},
	TypeKYCRejected:             {ChannelEmail, "KYC Rejected", AccountNotifications},
	TypeKYCResubmissionRequired: {ChannelEmail, "KYC Resubmission Required", AccountNotifications},
	TypeKYCDocumentExpiring:     {ChannelEmail, "KYC Document Expiring", AccountNotifications},

	TypeKYCReviewRequired:     {ChannelEmail, "KYC Review Required", AccountSupport},
	TypeKYCManualVerification: {ChannelEmail, "KYC Manual Verification", AccountSupport},
	TypeKYCSLABreach:          {ChannelEmail, "KYC SLA Breach", AccountSupport},

	TypeSystemMaintenanceScheduled: {ChannelEmail, "Scheduled Maintenance", AccountNotifications},
	TypeSystemMaintenanceStarted:   {ChannelPush, "Maintenance Started", ""},
	TypeSystemMaintenanceCompleted: {ChannelPush, "Maintenance Completed", ""},
	TypeSystemOutage:               {ChannelSMS, "System Outage", ""},
	TypeSystemRecovery:             {ChannelSMS, "System Recovery", ""},
}

// Valid reports whether the type is part of the catalog.
func (t NotificationType) Valid() bool {
	_, ok := typeCatalog[t]
	return ok
}

// DefaultChannel returns the channel this type is normally delivered over.
func (t NotificationType) DefaultChannel() NotificationChannel {
	return typeCatalog[t].defaultChannel
}

// DisplayName returns the human-readable name of the type.
func (t NotificationType) DisplayName() string {
	return typeCatalog[t].displayName
}

// EmailAccountCategory returns the sender-identity category the type declares.
// The second result is false for types with no email mapping (push/SMS types
// and system types the server routes itself).
func (t NotificationType) EmailAccountCategory() (EmailAccountCategory, bool) {
	attrs := typeCatalog[t]
	return attrs.emailCategory, attrs.emailCategory != ""
}

// UsesEmailAccountCategory reports whether the type is email-based and
// declares a sender category.
func (t NotificationType) UsesEmailAccountCategory() bool {
	attrs, ok := typeCatalog[t]
	return ok && attrs.defaultChannel == ChannelEmail && attrs.emailCategory != ""
}
