// model/request.go
package model

// SendNotificationRequest is the unit of work for a single send. Requests are
// treated as immutable once built: retries resend the identical payload, and
// the dispatcher works on a copy when it attaches routing metadata.
type SendNotificationRequest struct {
	Type              NotificationType       `json:"type"`
	Channel           NotificationChannel    `json:"channel"`
	Recipient         string                 `json:"recipient"`
	TemplateID        string                 `json:"templateId"`
	TemplateVariables map[string]interface{} `json:"templateVariables,omitempty"`
	Priority          NotificationPriority   `json:"priority,omitempty"`
	ScheduledAt       *LocalDateTime         `json:"scheduledAt,omitempty"`

	// Email-specific fields.
	Subject       string   `json:"subject,omitempty"`
	CCRecipients  []string `json:"ccRecipients,omitempty"`
	BCCRecipients []string `json:"bccRecipients,omitempty"`
	Attachments   []string `json:"attachments,omitempty"`

	// EmailAccountName pins the concrete sender account, bypassing the
	// type-based category lookup.
	EmailAccountName string `json:"emailAccountName,omitempty"`

	// EmailAccountCategory is filled in by the client from the type catalog
	// before the request goes on the wire; callers normally leave it empty.
	EmailAccountCategory EmailAccountCategory `json:"emailAccountCategory,omitempty"`

	// Push-specific fields.
	Title       string            `json:"title,omitempty"`
	Body        string            `json:"body,omitempty"`
	Data        map[string]string `json:"data,omitempty"`
	ImageURL    string            `json:"imageUrl,omitempty"`
	ClickAction string            `json:"clickAction,omitempty"`

	// SMS-specific fields.
	Provider string `json:"provider,omitempty"`
}

// SendRequestBuilder assembles a SendNotificationRequest step by step. Every
// method takes and returns the builder by value, so a half-built request is
// never shared.
type SendRequestBuilder struct {
	req SendNotificationRequest
}

// NewSendRequest starts a builder for the given type and channel with NORMAL
// priority.
func NewSendRequest(t NotificationType, channel NotificationChannel) SendRequestBuilder {
	return SendRequestBuilder{req: SendNotificationRequest{
		Type:     t,
		Channel:  channel,
		Priority: PriorityNormal,
	}}
}

func (b SendRequestBuilder) Recipient(recipient string) SendRequestBuilder {
	b.req.Recipient = recipient
	return b
}

func (b SendRequestBuilder) TemplateID(templateID string) SendRequestBuilder {
	b.req.TemplateID = templateID
	return b
}

func (b SendRequestBuilder) TemplateVariables(vars map[string]interface{}) SendRequestBuilder {
	b.req.TemplateVariables = vars
	return b
}

func (b SendRequestBuilder) Priority(priority NotificationPriority) SendRequestBuilder {
	b.req.Priority = priority
	return b
}

// ScheduledAt passes the caller-supplied delivery time through unchanged; the
// client does not check that it lies in the future.
func (b SendRequestBuilder) ScheduledAt(t LocalDateTime) SendRequestBuilder {
	b.req.ScheduledAt = &t
	return b
}

func (b SendRequestBuilder) Subject(subject string) SendRequestBuilder {
	b.req.Subject = subject
	return b
}

func (b SendRequestBuilder) CC(recipients ...string) SendRequestBuilder {
	b.req.CCRecipients = recipients
	return b
}

func (b SendRequestBuilder) BCC(recipients ...string) SendRequestBuilder {
	b.req.BCCRecipients = recipients
	return b
}

func (b SendRequestBuilder) Attachments(urls ...string) SendRequestBuilder {
	b.req.Attachments = urls
	return b
}

// EmailAccountName sets an explicit sender account, overriding the type's
// declared category.
func (b SendRequestBuilder) EmailAccountName(name string) SendRequestBuilder {
	b.req.EmailAccountName = name
	return b
}

func (b SendRequestBuilder) Title(title string) SendRequestBuilder {
	b.req.Title = title
	return b
}

func (b SendRequestBuilder) Body(body string) SendRequestBuilder {
	b.req.Body = body
	return b
}

func (b SendRequestBuilder) Data(data map[string]string) SendRequestBuilder {
	b.req.Data = data
	return b
}

func (b SendRequestBuilder) ImageURL(url string) SendRequestBuilder {
	b.req.ImageURL = url
	return b
}

func (b SendRequestBuilder) ClickAction(action string) SendRequestBuilder {
	b.req.ClickAction = action
	return b
}

// Provider hints which SMS provider to use; the server auto-selects when
// empty.
func (b SendRequestBuilder) Provider(provider string) SendRequestBuilder {
	b.req.Provider = provider
	return b
}

// Build returns the assembled request. The builder stays usable afterwards.
func (b SendRequestBuilder) Build() SendNotificationRequest {
	return b.req
}

// BulkNotificationRequest submits several independently valid notifications
// under one batch.
type BulkNotificationRequest struct {
	Notifications []SendNotificationRequest `json:"notifications"`
}

// RegisterDeviceTokenRequest registers a device token for push delivery.
type RegisterDeviceTokenRequest struct {
	UserID     string       `json:"userId"`
	Token      string       `json:"token"`
	Platform   PlatformType `json:"platform"`
	DeviceID   string       `json:"deviceId"`
	AppVersion string       `json:"appVersion,omitempty"`
}

// RefreshDeviceTokenRequest swaps a rotated device token.
type RefreshDeviceTokenRequest struct {
	UserID   string `json:"userId"`
	OldToken string `json:"oldToken"`
	NewToken string `json:"newToken"`
}

// RetryFailedRequest asks the server to replay failed notifications in a
// date range, optionally limited to one channel.
type RetryFailedRequest struct {
	From    LocalDateTime `json:"from"`
	To      LocalDateTime `json:"to"`
	Channel string        `json:"channel,omitempty"`
}

// CreateTemplateRequest registers a notification template. The client passes
// template content through untouched; rendering happens server-side.
type CreateTemplateRequest struct {
	Type              NotificationType    `json:"type"`
	Channel           NotificationChannel `json:"channel"`
	Name              string              `json:"name"`
	Subject           string              `json:"subject,omitempty"`
	Content           string              `json:"content"`
	Language          string              `json:"language,omitempty"`
	RequiredVariables []string            `json:"requiredVariables,omitempty"`
	Active            *bool               `json:"active,omitempty"`
}

// UpdateTemplateRequest modifies an existing template. Nil/empty fields leave
// the server-side value unchanged.
type UpdateTemplateRequest struct {
	Name              string   `json:"name,omitempty"`
	Subject           string   `json:"subject,omitempty"`
	Content           string   `json:"content,omitempty"`
	Language          string   `json:"language,omitempty"`
	RequiredVariables []string `json:"requiredVariables,omitempty"`
	Active            *bool    `json:"active,omitempty"`
}
