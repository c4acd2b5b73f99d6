// Package client implements the dispatch layer for the remote notification
// service: requests are validated locally, email routing is resolved from the
// type catalog, and the HTTP call runs with bounded exponential-backoff retry
// before transport failures are translated into typed errors.
//
// A Client is safe for concurrent use; all configuration is fixed at
// construction.
//
//	c, err := client.NewBuilder().
//		BaseURL("https://api.example.com").
//		APIKey("secret").
//		Build()
//	if err != nil {
//		...
//	}
//	resp, err := c.SendEmail(ctx, "user@example.com", "Verify your email",
//		"email-verification", map[string]interface{}{"code": "123456"})
package client

import (
	"context"
	"net/http"
	"net/url"

	"notification-client/apierror"
	"notification-client/internal/common/logger"
	"notification-client/internal/common/transport"
	"notification-client/model"
	"notification-client/validator"
)

const (
	pathNotifications  = "/api/v1/notifications"
	pathBulk           = "/api/v1/notifications/bulk"
	pathRetryFailed    = "/api/v1/notifications/retry"
	pathDeviceRegister = "/api/v1/devices/register"
	pathDeviceRefresh  = "/api/v1/devices/refresh"
	pathDevices        = "/api/v1/devices/"
	pathTemplates      = "/api/v1/templates"
	pathMetrics        = "/api/v1/metrics"
	pathProviderHealth = "/api/v1/providers/health"
)

// Client talks to the notification service.
type Client struct {
	transport *transport.Transport
	log       logger.Logger
	retry     RetryPolicy
}

// SendNotification validates, resolves email routing, and sends a single
// notification. Validation failures surface immediately without touching the
// network; transient transport failures are retried per the retry policy.
// The server's response is returned unchanged.
func (c *Client) SendNotification(ctx context.Context, req model.SendNotificationRequest) (*model.NotificationResponse, error) {
	if err := validator.ValidateSendRequest(&req); err != nil {
		return nil, err
	}

	outgoing := withEmailRouting(req)

	c.log.Debug("sending notification", map[string]interface{}{
		"type":      outgoing.Type,
		"channel":   outgoing.Channel,
		"recipient": outgoing.Recipient,
	})

	var resp model.NotificationResponse
	if err := c.dispatch(ctx, "send", http.MethodPost, pathNotifications, nil, outgoing, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SendBulk submits a batch. Entries are validated individually before any
// network call; the first invalid one aborts the whole batch. Once accepted,
// per-item outcomes are reported by the server under the returned batch ID.
func (c *Client) SendBulk(ctx context.Context, requests []model.SendNotificationRequest) (*model.BulkNotificationResponse, error) {
	if len(requests) == 0 {
		return nil, apierror.NewValidationError("notifications list cannot be empty")
	}

	outgoing := make([]model.SendNotificationRequest, 0, len(requests))
	for i := range requests {
		if err := validator.ValidateSendRequest(&requests[i]); err != nil {
			return nil, err
		}
		outgoing = append(outgoing, withEmailRouting(requests[i]))
	}

	c.log.Debug("sending bulk notifications", map[string]interface{}{
		"count": len(outgoing),
	})

	var resp model.BulkNotificationResponse
	payload := model.BulkNotificationRequest{Notifications: outgoing}
	if err := c.dispatch(ctx, "sendBulk", http.MethodPost, pathBulk, nil, payload, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetStatus fetches a notification by ID. Read-your-write is best effort:
// status lookups are never retried.
func (c *Client) GetStatus(ctx context.Context, notificationID string) (*model.NotificationResponse, error) {
	var resp model.NotificationResponse
	if err := c.dispatch(ctx, "getStatus", http.MethodGet, pathNotifications+"/"+url.PathEscape(notificationID), nil, nil, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RetryFailed asks the server to replay failed notifications in a date range.
func (c *Client) RetryFailed(ctx context.Context, req model.RetryFailedRequest) (*model.BulkNotificationResponse, error) {
	if req.From.IsZero() || req.To.IsZero() {
		return nil, apierror.NewValidationError("from and to dates are required")
	}
	var resp model.BulkNotificationResponse
	if err := c.dispatch(ctx, "retryFailed", http.MethodPost, pathRetryFailed, nil, req, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// withEmailRouting attaches the resolved sender identity to an outgoing copy
// of an email request. The caller's request is never mutated; an explicit
// account name passes through verbatim, and a default selector leaves both
// routing fields empty for the server to fall back.
func withEmailRouting(req model.SendNotificationRequest) model.SendNotificationRequest {
	if req.Channel != model.ChannelEmail {
		return req
	}
	selector := model.ResolveEmailAccount(&req)
	if selector.Name == "" && selector.Category != "" {
		req.EmailAccountCategory = selector.Category
	}
	return req
}
