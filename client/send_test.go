// client/send_test.go
package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notification-client/model"
)

func captureSendServer(t *testing.T, gotBody *map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(gotBody))
		w.Write([]byte(`{"id":"ntf-100","status":"PENDING"}`))
	}))
}

func TestSendEmail(t *testing.T) {
	var gotBody map[string]interface{}
	srv := captureSendServer(t, &gotBody)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	resp, err := c.SendEmail(context.Background(), "user@example.com", "Verify your email",
		"email-verification", map[string]interface{}{"code": "123456"})

	require.NoError(t, err)
	assert.Equal(t, "ntf-100", resp.ID)
	assert.Equal(t, "EMAIL_VERIFICATION", gotBody["type"])
	assert.Equal(t, "EMAIL", gotBody["channel"])
	assert.Equal(t, "NORMAL", gotBody["priority"])
	assert.Equal(t, "user@example.com", gotBody["recipient"])
	assert.Equal(t, "Verify your email", gotBody["subject"])
}

func TestSendEmailWithPriority(t *testing.T) {
	var gotBody map[string]interface{}
	srv := captureSendServer(t, &gotBody)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.SendEmailWithPriority(context.Background(), "user@example.com", "Reset your password",
		"password-reset", nil, model.PriorityUrgent)

	require.NoError(t, err)
	assert.Equal(t, "URGENT", gotBody["priority"])
}

func TestSendSMS(t *testing.T) {
	var gotBody map[string]interface{}
	srv := captureSendServer(t, &gotBody)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.SendSMS(context.Background(), "+14155552671", "sms-verification",
		map[string]interface{}{"code": "654321"})

	require.NoError(t, err)
	assert.Equal(t, "SMS_VERIFICATION", gotBody["type"])
	assert.Equal(t, "SMS", gotBody["channel"])
	assert.Equal(t, "+14155552671", gotBody["recipient"])
}

func TestSendPushToUser(t *testing.T) {
	var gotBody map[string]interface{}
	srv := captureSendServer(t, &gotBody)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.SendPushToUser(context.Background(), "user-123", "Match Alert",
		"Kickoff in 10 minutes", "match-update", nil)

	require.NoError(t, err)
	assert.Equal(t, "PUSH_NOTIFICATION", gotBody["type"])
	assert.Equal(t, "PUSH", gotBody["channel"])
	assert.Equal(t, "user-123", gotBody["recipient"])
	assert.Equal(t, "Match Alert", gotBody["title"])
	assert.Equal(t, "Kickoff in 10 minutes", gotBody["body"])
}

func TestSendPushToUserWithOptions(t *testing.T) {
	var gotBody map[string]interface{}
	srv := captureSendServer(t, &gotBody)
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.SendPushToUserWithOptions(context.Background(), "user-123", "Goal!",
		"1-0 in the 23rd minute", "match-update", nil,
		"https://cdn.example.com/goal.png",
		map[string]string{"matchId": "m-42"},
		"OPEN_MATCH")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/goal.png", gotBody["imageUrl"])
	assert.Equal(t, "OPEN_MATCH", gotBody["clickAction"])
	assert.Equal(t, map[string]interface{}{"matchId": "m-42"}, gotBody["data"])
}
