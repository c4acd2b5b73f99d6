// client/devices.go
package client

import (
	"context"
	"net/http"
	"net/url"

	"notification-client/model"
	"notification-client/validator"
)

// RegisterDevice registers a device token for push delivery.
func (c *Client) RegisterDevice(ctx context.Context, req model.RegisterDeviceTokenRequest) (*model.DeviceTokenResponse, error) {
	if err := validator.ValidateDeviceRegistration(&req); err != nil {
		return nil, err
	}

	c.log.Debug("registering device", map[string]interface{}{
		"userId":   req.UserID,
		"platform": req.Platform,
		"deviceId": req.DeviceID,
	})

	var resp model.DeviceTokenResponse
	if err := c.dispatch(ctx, "registerDevice", http.MethodPost, pathDeviceRegister, nil, req, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UnregisterDevice removes a device registration.
func (c *Client) UnregisterDevice(ctx context.Context, userID, deviceID string) error {
	query := url.Values{}
	query.Set("userId", userID)
	return c.dispatch(ctx, "unregisterDevice", http.MethodDelete, pathDevices+url.PathEscape(deviceID), query, nil, nil, true)
}

// RefreshDeviceToken swaps a rotated device token.
func (c *Client) RefreshDeviceToken(ctx context.Context, userID, oldToken, newToken string) error {
	req := model.RefreshDeviceTokenRequest{
		UserID:   userID,
		OldToken: oldToken,
		NewToken: newToken,
	}
	return c.dispatch(ctx, "refreshDeviceToken", http.MethodPut, pathDeviceRefresh, nil, req, nil, true)
}
