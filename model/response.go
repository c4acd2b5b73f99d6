// model/response.go
package model

// NotificationResponse carries the server-assigned identity and delivery
// state of a single notification. The client passes it through unchanged.
type NotificationResponse struct {
	ID                string                 `json:"id"`
	Type              NotificationType       `json:"type"`
	Channel           NotificationChannel    `json:"channel"`
	Recipient         string                 `json:"recipient"`
	Status            NotificationStatus     `json:"status"`
	Priority          NotificationPriority   `json:"priority"`
	RetryCount        int                    `json:"retryCount"`
	ErrorMessage      string                 `json:"errorMessage,omitempty"`
	ProviderName      string                 `json:"providerName,omitempty"`
	TemplateID        string                 `json:"templateId"`
	TemplateVariables map[string]interface{} `json:"templateVariables,omitempty"`
	CreatedAt         LocalDateTime          `json:"createdAt"`
	SentAt            LocalDateTime          `json:"sentAt"`
	ScheduledAt       LocalDateTime          `json:"scheduledAt"`
}

// BulkNotificationResponse identifies an accepted batch. Per-item outcomes
// are the server's responsibility to report, not the client's to reconcile.
type BulkNotificationResponse struct {
	BatchID    string        `json:"batchId"`
	TotalCount int           `json:"totalCount"`
	Status     string        `json:"status"`
	CreatedAt  LocalDateTime `json:"createdAt"`
}

// DeviceTokenResponse describes a registered push device.
type DeviceTokenResponse struct {
	ID           string        `json:"id"`
	UserID       string        `json:"userId"`
	Platform     PlatformType  `json:"platform"`
	DeviceID     string        `json:"deviceId"`
	Active       bool          `json:"active"`
	RegisteredAt LocalDateTime `json:"registeredAt"`
}

// TemplateResponse describes a stored notification template.
type TemplateResponse struct {
	ID                string              `json:"id"`
	Type              NotificationType    `json:"type"`
	Channel           NotificationChannel `json:"channel"`
	Name              string              `json:"name"`
	Subject           string              `json:"subject,omitempty"`
	Content           string              `json:"content"`
	Language          string              `json:"language,omitempty"`
	RequiredVariables []string            `json:"requiredVariables,omitempty"`
	Active            bool                `json:"active"`
	CreatedAt         LocalDateTime       `json:"createdAt"`
	UpdatedAt         LocalDateTime       `json:"updatedAt"`
}

// ChannelMetrics aggregates delivery counters for one channel.
type ChannelMetrics struct {
	Sent        int64   `json:"sent"`
	Failed      int64   `json:"failed"`
	SuccessRate float64 `json:"successRate"`
}

// MetricsResponse is the platform-wide delivery metrics snapshot.
type MetricsResponse struct {
	TotalNotifications  int64                     `json:"totalNotifications"`
	SentToday           int64                     `json:"sentToday"`
	FailedToday         int64                     `json:"failedToday"`
	SuccessRate         float64                   `json:"successRate"`
	AverageDeliveryTime float64                   `json:"averageDeliveryTime"`
	ByChannel           map[string]ChannelMetrics `json:"byChannel,omitempty"`
	ByStatus            map[string]int64          `json:"byStatus,omitempty"`
}

// ProviderHealthResponse reports a delivery provider's health.
type ProviderHealthResponse struct {
	Name         string        `json:"name"`
	Channel      string        `json:"channel"`
	Status       string        `json:"status"`
	ResponseTime int64         `json:"responseTime"`
	LastCheck    LocalDateTime `json:"lastCheck"`
}
