package notification

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSendDiscordSuccessNotification(t *testing.T) {
	var payload []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		payload = body
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()
	t.Setenv("DISCORD_SUCCESS_NOTIFICATION_URL", server.URL)

	require.NoError(t, SendDiscordSuccessNotification("Hampi Hills analyzed"))

	var message DiscordMessage
	require.NoError(t, json.Unmarshal(payload, &message))
	require.Len(t, message.Embeds, 1)
	require.Equal(t, "✅ Analysis Finished", message.Embeds[0].Title)
	require.Equal(t, "Hampi Hills analyzed", message.Embeds[0].Description)
}

func TestSendDiscordErrorNotificationBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()
	t.Setenv("DISCORD_ERROR_NOTIFICATION_URL", server.URL)

	err := SendDiscordErrorNotification("boom")
	require.ErrorContains(t, err, "status code: 400")
}

func TestSendDiscordNotificationSkipsUnsetWebhook(t *testing.T) {
	t.Setenv("DISCORD_SUCCESS_NOTIFICATION_URL", "")

	require.NoError(t, SendDiscordSuccessNotification("nothing to send"))
}
