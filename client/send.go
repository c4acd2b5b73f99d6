// client/send.go
//
// Convenience senders covering the common channel/type combinations. Each one
// builds a full request and funnels it through SendNotification, so every
// helper gets the same validation, routing, and retry pipeline.
package client

import (
	"context"

	"notification-client/model"
)

// SendEmail sends an email notification with NORMAL priority.
func (c *Client) SendEmail(ctx context.Context, email, subject, templateID string, variables map[string]interface{}) (*model.NotificationResponse, error) {
	return c.SendEmailWithPriority(ctx, email, subject, templateID, variables, model.PriorityNormal)
}

// SendEmailWithPriority sends an email notification with an explicit
// priority.
func (c *Client) SendEmailWithPriority(ctx context.Context, email, subject, templateID string, variables map[string]interface{}, priority model.NotificationPriority) (*model.NotificationResponse, error) {
	req := model.NewSendRequest(model.TypeEmailVerification, model.ChannelEmail).
		Recipient(email).
		Subject(subject).
		TemplateID(templateID).
		TemplateVariables(variables).
		Priority(priority).
		Build()
	return c.SendNotification(ctx, req)
}

// SendSMS sends an SMS notification. The phone number must be in
// international format, e.g. +14155552671.
func (c *Client) SendSMS(ctx context.Context, phoneNumber, templateID string, variables map[string]interface{}) (*model.NotificationResponse, error) {
	req := model.NewSendRequest(model.TypeSMSVerification, model.ChannelSMS).
		Recipient(phoneNumber).
		TemplateID(templateID).
		TemplateVariables(variables).
		Build()
	return c.SendNotification(ctx, req)
}

// SendPushToUser sends a push notification to all of a user's registered
// devices.
func (c *Client) SendPushToUser(ctx context.Context, userID, title, body, templateID string, variables map[string]interface{}) (*model.NotificationResponse, error) {
	req := model.NewSendRequest(model.TypePushNotification, model.ChannelPush).
		Recipient(userID).
		Title(title).
		Body(body).
		TemplateID(templateID).
		TemplateVariables(variables).
		Build()
	return c.SendNotification(ctx, req)
}

// SendPushToUserWithOptions sends a push notification with image, custom data
// and click action.
func (c *Client) SendPushToUserWithOptions(ctx context.Context, userID, title, body, templateID string, variables map[string]interface{}, imageURL string, data map[string]string, clickAction string) (*model.NotificationResponse, error) {
	req := model.NewSendRequest(model.TypePushNotification, model.ChannelPush).
		Recipient(userID).
		Title(title).
		Body(body).
		TemplateID(templateID).
		TemplateVariables(variables).
		ImageURL(imageURL).
		Data(data).
		ClickAction(clickAction).
		Build()
	return c.SendNotification(ctx, req)
}

// SendPush sends a push notification directly to a device token.
//
// Deprecated: direct token sends bypass the server's device registry; use
// SendPushToUser instead, which covers all of a user's devices.
func (c *Client) SendPush(ctx context.Context, deviceToken, title, body, templateID string, variables map[string]interface{}) (*model.NotificationResponse, error) {
	return c.SendPushToUser(ctx, deviceToken, title, body, templateID, variables)
}
