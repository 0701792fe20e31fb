package push

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMessage() Message {
	return Message{
		Token:        "device-token",
		Notification: Notification{Title: "Event reminder", Body: "Starts soon"},
		Data:         map[string]string{"eventId": "event-42"},
	}
}

func TestClient_Send_Success(t *testing.T) {
	var got sendRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")

	err := c.Send(context.Background(), testMessage())
	require.NoError(t, err)
	assert.Equal(t, "device-token", got.Message.Token)
	assert.Equal(t, "Event reminder", got.Message.Notification.Title)
}

func TestClient_Send_TokenNotRegistered(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"status":"UNREGISTERED","message":"Requested entity was not found."}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")

	err := c.Send(context.Background(), testMessage())
	assert.ErrorIs(t, err, ErrTokenNotRegistered)
}

func TestClient_Send_InvalidToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"status":"INVALID_ARGUMENT","message":"The registration token is not a valid FCM registration token"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")

	err := c.Send(context.Background(), testMessage())
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClient_Send_GenericError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"status":"INTERNAL","message":"Internal error encountered."}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")

	err := c.Send(context.Background(), testMessage())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidToken)
	assert.NotErrorIs(t, err, ErrTokenNotRegistered)
}
