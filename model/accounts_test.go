// model/accounts_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Type Catalog
// ==========================

func TestNotificationType_EmailAccountCategory(t *testing.T) {
	tests := []struct {
		typ      NotificationType
		category EmailAccountCategory
		declared bool
	}{
		{TypeEmailVerification, AccountNotifications, true},
		{TypePasswordReset, AccountNotifications, true},
		{TypePromotionalOffer, AccountMarketing, true},
		{TypeMatchTicketAvailable, AccountMarketing, true},
		{TypeKYCReviewRequired, AccountSupport, true},
		{TypeSubscriptionExpiring, AccountNotifications, true},
		{TypePushNotification, "", false},
		{TypeSMSVerification, "", false},
		{TypeSystemOutage, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			category, ok := tt.typ.EmailAccountCategory()
			assert.Equal(t, tt.declared, ok)
			assert.Equal(t, tt.category, category)
		})
	}
}

func TestNotificationType_DefaultChannel(t *testing.T) {
	assert.Equal(t, ChannelEmail, TypeEmailVerification.DefaultChannel())
	assert.Equal(t, ChannelSMS, TypeSMSVerification.DefaultChannel())
	assert.Equal(t, ChannelPush, TypePushMatchUpdate.DefaultChannel())
}

func TestNotificationType_Valid(t *testing.T) {
	assert.True(t, TypeWelcomeEmail.Valid())
	assert.False(t, NotificationType("CARRIER_PIGEON").Valid())
	assert.False(t, NotificationType("").Valid())
}

// ==========================
// Account Resolution
// ==========================

func TestResolveEmailAccount_ExplicitNameWins(t *testing.T) {
	req := NewSendRequest(TypePromotionalOffer, ChannelEmail).
		Recipient("user@example.com").
		EmailAccountName("support").
		Build()

	selector := ResolveEmailAccount(&req)
	assert.Equal(t, "support", selector.Name)
	assert.Empty(t, selector.Category)
	assert.False(t, selector.IsDefault())
}

func TestResolveEmailAccount_TypeCategory(t *testing.T) {
	tests := []struct {
		typ      NotificationType
		category EmailAccountCategory
	}{
		{TypePromotionalOffer, AccountMarketing},
		{TypeKYCReviewRequired, AccountSupport},
		{TypeEmailVerification, AccountNotifications},
		{TypeKYCSLABreach, AccountSupport},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			req := NewSendRequest(tt.typ, ChannelEmail).Build()

			selector := ResolveEmailAccount(&req)
			assert.Empty(t, selector.Name)
			assert.Equal(t, tt.category, selector.Category)
		})
	}
}

func TestResolveEmailAccount_Default(t *testing.T) {
	// Push types declare no email category, so the server default applies.
	req := NewSendRequest(TypePushNotification, ChannelPush).Build()

	selector := ResolveEmailAccount(&req)
	assert.True(t, selector.IsDefault())
}

func TestResolveEmailAccount_DoesNotModifyRequest(t *testing.T) {
	req := NewSendRequest(TypePromotionalOffer, ChannelEmail).
		Recipient("user@example.com").
		Build()
	before := req

	ResolveEmailAccount(&req)
	assert.Equal(t, before, req)
}
