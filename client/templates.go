// client/templates.go
package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"notification-client/apierror"
	"notification-client/model"
)

// CreateTemplate registers a notification template. Content passes through
// untouched; rendering is server-side.
func (c *Client) CreateTemplate(ctx context.Context, req model.CreateTemplateRequest) (*model.TemplateResponse, error) {
	if !req.Type.Valid() {
		return nil, apierror.NewValidationError("notification type is required")
	}
	if !req.Channel.Valid() {
		return nil, apierror.NewValidationError("channel is required")
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, apierror.NewValidationError("template name is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, apierror.NewValidationError("template content is required")
	}

	var resp model.TemplateResponse
	if err := c.dispatch(ctx, "createTemplate", http.MethodPost, pathTemplates, nil, req, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateTemplate modifies an existing template; empty fields are left
// unchanged server-side.
func (c *Client) UpdateTemplate(ctx context.Context, templateID string, req model.UpdateTemplateRequest) (*model.TemplateResponse, error) {
	if strings.TrimSpace(templateID) == "" {
		return nil, apierror.NewValidationError("template ID is required")
	}

	var resp model.TemplateResponse
	if err := c.dispatch(ctx, "updateTemplate", http.MethodPut, pathTemplates+"/"+url.PathEscape(templateID), nil, req, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTemplate fetches a template by ID. Not retried.
func (c *Client) GetTemplate(ctx context.Context, templateID string) (*model.TemplateResponse, error) {
	var resp model.TemplateResponse
	if err := c.dispatch(ctx, "getTemplate", http.MethodGet, pathTemplates+"/"+url.PathEscape(templateID), nil, nil, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetMetrics returns the platform-wide delivery metrics snapshot. Not
// retried.
func (c *Client) GetMetrics(ctx context.Context) (*model.MetricsResponse, error) {
	var resp model.MetricsResponse
	if err := c.dispatch(ctx, "getMetrics", http.MethodGet, pathMetrics, nil, nil, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProviderHealth returns per-provider health. Not retried.
func (c *Client) GetProviderHealth(ctx context.Context) ([]model.ProviderHealthResponse, error) {
	var resp []model.ProviderHealthResponse
	if err := c.dispatch(ctx, "getProviderHealth", http.MethodGet, pathProviderHealth, nil, nil, &resp, false); err != nil {
		return nil, err
	}
	return resp, nil
}
