// internal/common/transport/transport.go
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"notification-client/internal/common/logger"
)

// Config holds the transport settings, fixed at construction time.
type Config struct {
	BaseURL        string
	APIKey         string
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	Log            logger.Logger
	LogRequests    bool
}

// Transport sends JSON requests to the notification service. It owns the
// single I/O path of the client: base URL joining, authentication header,
// timeouts, request IDs, and decoding. It is safe for concurrent use.
type Transport struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	log         logger.Logger
	logRequests bool
}

// StatusError is a non-2xx response from the service, kept raw so the caller
// can classify it.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned status %d: %s", e.Status, e.Body)
}

// New creates a Transport for the given endpoint.
func New(cfg Config) (*Transport, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", cfg.BaseURL)
	}

	log := cfg.Log
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	dialer := &net.Dialer{Timeout: cfg.ConnectTimeout}
	base := &http.Transport{
		DialContext:         dialer.DialContext,
		TLSHandshakeTimeout: cfg.ConnectTimeout,
	}

	return &Transport{
		httpClient: &http.Client{
			Timeout:   cfg.ReadTimeout,
			Transport: otelhttp.NewTransport(base),
		},
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		log:         log,
		logRequests: cfg.LogRequests,
	}, nil
}

// Do issues one request. body (when non-nil) is JSON-encoded; out (when
// non-nil) receives the decoded response body. A non-2xx status is returned
// as *StatusError; network-level failures come back wrapped.
func (t *Transport) Do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	target := t.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.apiKey != "" {
		req.Header.Set("X-API-Key", t.apiKey)
	}

	if t.logRequests {
		t.log.Debug("sending request", map[string]interface{}{
			"method":    method,
			"path":      path,
			"requestId": requestID,
		})
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if t.logRequests {
		t.log.Debug("received response", map[string]interface{}{
			"status":    resp.StatusCode,
			"path":      path,
			"requestId": requestID,
		})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}

	return nil
}
