package whop

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMessaging(t *testing.T, handler http.HandlerFunc) *MessagingClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewMessagingClient(Credentials{
		APIKey:  "app-key",
		AppID:   "app_1",
		BaseURL: server.URL,
	}, WithHTTPClient(server.Client()))
}

func TestSendMessageToChat(t *testing.T) {
	client := newTestMessaging(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v5/messages", r.URL.Path)
		assert.Equal(t, "Bearer app-key", r.Header.Get("Authorization"))
		assert.Equal(t, "app_1", r.Header.Get("x-whop-app-id"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"experienceId": "exp_1", "message": "oi"}, body)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.SendMessageToChat(context.Background(), "exp_1", "oi"))
}

func TestListMessagesFromChatPassthrough(t *testing.T) {
	upstream := `[{"id":"m2","content":"b"},{"id":"m1","content":"a"}]`
	client := newTestMessaging(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "exp_1", r.URL.Query().Get("chatExperienceId"))
		io.WriteString(w, upstream)
	})

	raw, err := client.ListMessagesFromChat(context.Background(), "exp_1")
	require.NoError(t, err)
	assert.JSONEq(t, upstream, string(raw))
}

func TestListMessagesFromChatEmptyBody(t *testing.T) {
	client := newTestMessaging(t, func(w http.ResponseWriter, r *http.Request) {})

	raw, err := client.ListMessagesFromChat(context.Background(), "exp_1")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestGetCurrentUserOnBehalfOf(t *testing.T) {
	client := newTestMessaging(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v5/me", r.URL.Path)
		assert.Equal(t, "user_9", r.Header.Get("x-on-behalf-of"))
		io.WriteString(w, `{"id":"user_9","username":"ana"}`)
	})

	ctx := WithOnBehalfOf(context.Background(), "user_9")
	raw, err := client.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"user_9","username":"ana"}`, string(raw))
}

func TestGetCurrentUserInvalidJSON(t *testing.T) {
	client := newTestMessaging(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html>`)
	})

	_, err := client.GetCurrentUser(context.Background())
	assert.Error(t, err)
}

func TestSendWebsocketMessage(t *testing.T) {
	client := newTestMessaging(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v5/websockets/messages", r.URL.Path)

		var body websocketMessageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "digitando", body.Message)
		assert.Equal(t, Target{Experience: "exp_2"}, body.Target)
	})

	require.NoError(t, client.SendWebsocketMessage(context.Background(), "digitando", Target{Experience: "exp_2"}))
}

func TestMessagingUpstreamError(t *testing.T) {
	client := newTestMessaging(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, `{"error":"forbidden"}`)
	})

	err := client.SendMessageToChat(context.Background(), "exp", "oi")

	upErr, ok := IsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, upErr.Status)
	assert.Contains(t, upErr.Message, "forbidden")
}
