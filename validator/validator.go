// Package validator checks notification requests before any network call.
// Rules run in order and the first failure wins; validation is synchronous,
// local, and never performs I/O.
package validator

import (
	"fmt"
	"strings"

	"notification-client/apierror"
	"notification-client/model"
)

// ValidateSendRequest validates a single notification request. It returns a
// *apierror.Error with code VALIDATION_FAILED naming the offending field, or
// nil when the request is well-formed.
func ValidateSendRequest(req *model.SendNotificationRequest) error {
	if req == nil {
		return apierror.NewValidationError("request cannot be nil")
	}

	if req.Type == "" {
		return apierror.NewValidationError("notification type is required")
	}
	if !req.Type.Valid() {
		return apierror.NewValidationError(fmt.Sprintf("unknown notification type: %s", req.Type))
	}

	if req.Channel == "" {
		return apierror.NewValidationError("channel is required")
	}
	if !req.Channel.Valid() {
		return apierror.NewValidationError(fmt.Sprintf("unknown channel: %s", req.Channel))
	}

	if strings.TrimSpace(req.Recipient) == "" {
		return apierror.NewValidationError("recipient is required")
	}

	if strings.TrimSpace(req.TemplateID) == "" {
		return apierror.NewValidationError("template ID is required")
	}

	if err := validateRecipient(req.Channel, req.Recipient); err != nil {
		return err
	}

	switch req.Channel {
	case model.ChannelEmail:
		if strings.TrimSpace(req.Subject) == "" {
			return apierror.NewValidationError("subject is required for email notifications")
		}
	case model.ChannelPush:
		if strings.TrimSpace(req.Title) == "" {
			return apierror.NewValidationError("title is required for push notifications")
		}
		if strings.TrimSpace(req.Body) == "" {
			return apierror.NewValidationError("body is required for push notifications")
		}
	}

	return nil
}

func validateRecipient(channel model.NotificationChannel, recipient string) error {
	switch channel {
	case model.ChannelEmail:
		if !IsValidEmail(recipient) {
			return apierror.NewValidationError(fmt.Sprintf("invalid email address: %s", recipient))
		}
	case model.ChannelSMS:
		if !IsValidPhoneNumber(recipient) {
			return apierror.NewValidationError(fmt.Sprintf("invalid phone number: %s", recipient))
		}
	case model.ChannelPush:
		// The recipient is either a user ID or a legacy device token. Short
		// user IDs and long tokens are both accepted for backward
		// compatibility, so the check is deliberately permissive.
		if len(recipient) < 3 {
			return apierror.NewValidationError("invalid recipient: must be a user ID or device token")
		}
	}
	return nil
}

// ValidateDeviceRegistration validates a device token registration.
func ValidateDeviceRegistration(req *model.RegisterDeviceTokenRequest) error {
	if req == nil {
		return apierror.NewValidationError("request cannot be nil")
	}
	if strings.TrimSpace(req.UserID) == "" {
		return apierror.NewValidationError("user ID is required")
	}
	if strings.TrimSpace(req.Token) == "" {
		return apierror.NewValidationError("device token is required")
	}
	switch req.Platform {
	case model.PlatformAndroid, model.PlatformIOS, model.PlatformWeb:
	default:
		return apierror.NewValidationError(fmt.Sprintf("unknown platform: %s", req.Platform))
	}
	if strings.TrimSpace(req.DeviceID) == "" {
		return apierror.NewValidationError("device ID is required")
	}
	return nil
}
