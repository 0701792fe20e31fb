// Package push provides a client for delivering push notifications through an
// FCM-style HTTP messaging API.
//
// Transport failures caused by a bad device token are surfaced as typed errors
// so callers can revoke the token and fall back to another channel.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidToken is returned when the messaging API rejects the device token
	// as malformed.
	ErrInvalidToken = errors.New("invalid device token")

	// ErrTokenNotRegistered is returned when the device token is no longer
	// registered with the messaging API.
	ErrTokenNotRegistered = errors.New("device token not registered")
)

// Client represents a push transport client.
type Client struct {
	endpoint string       // messaging API send URL
	apiKey   string       // bearer token for authentication
	client   *http.Client // HTTP client used to make requests
}

// NewClient creates a new push Client for the given API endpoint.
func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{},
	}
}

// Notification is the user-visible part of a push message.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// AndroidNotification carries Android-specific delivery hints.
type AndroidNotification struct {
	Sound     string `json:"sound,omitempty"`
	ChannelID string `json:"channel_id,omitempty"`
	Priority  string `json:"priority,omitempty"`
}

// AndroidConfig carries Android-specific message options.
type AndroidConfig struct {
	Priority     string              `json:"priority,omitempty"`
	Notification AndroidNotification `json:"notification"`
}

// APS is the Apple push payload dictionary.
type APS struct {
	Sound            string `json:"sound,omitempty"`
	Badge            int    `json:"badge,omitempty"`
	ContentAvailable bool   `json:"content-available,omitempty"`
}

// APNSPayload wraps the aps dictionary.
type APNSPayload struct {
	APS APS `json:"aps"`
}

// APNSConfig carries Apple-specific message options.
type APNSConfig struct {
	Payload APNSPayload `json:"payload"`
}

// Message is a push message keyed by a device token.
type Message struct {
	Token        string            `json:"token"`
	Notification Notification      `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
	Android      *AndroidConfig    `json:"android,omitempty"`
	APNS         *APNSConfig       `json:"apns,omitempty"`
}

// sendRequest is the envelope the messaging API expects.
type sendRequest struct {
	Message Message `json:"message"`
}

// errorResponse is the error envelope returned by the messaging API.
type errorResponse struct {
	Error struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// Send delivers a message to the device identified by its token.
//
// It returns ErrInvalidToken or ErrTokenNotRegistered for token-level rejections
// and a generic error for any other transport failure.
func (c *Client) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(sendRequest{Message: msg})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return nil
	}

	var apiErr errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
		return fmt.Errorf("push API error: %s", resp.Status)
	}

	switch {
	case apiErr.Error.Status == "UNREGISTERED" || resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrTokenNotRegistered, apiErr.Error.Message)
	case apiErr.Error.Status == "INVALID_ARGUMENT":
		return fmt.Errorf("%w: %s", ErrInvalidToken, apiErr.Error.Message)
	default:
		return fmt.Errorf("push API error: %s: %s", resp.Status, apiErr.Error.Message)
	}
}
