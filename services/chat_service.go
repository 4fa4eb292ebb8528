package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

var (
	// ErrWebhookNotConfigured means CHAT_WEBHOOK_URL is missing: a server
	// misconfiguration, reported to the visitor with a fixed message.
	ErrWebhookNotConfigured = errors.New("chat_webhook_not_configured")
	// ErrWebhookUnavailable covers network failures and non-OK upstream
	// responses alike.
	ErrWebhookUnavailable = errors.New("chat_webhook_unavailable")
)

// ChatService relays chat messages to the external automation webhook.
// It holds no conversational state; the upstream addresses the
// conversation by the client-generated session id.
type ChatService struct {
	WebhookURL string
	Client     *http.Client
}

func NewChatService(webhookURL string) *ChatService {
	return &ChatService{
		WebhookURL: webhookURL,
		Client:     &http.Client{Timeout: 30 * time.Second},
	}
}

type chatPayload struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
	Source    string `json:"source"`
}

// Relay posts {message, sessionId, source:"web"} to the webhook and
// returns the upstream JSON body untouched, so the widget sees whatever
// fields the automation emits. No retry, no streaming.
func (s *ChatService) Relay(message, sessionID string) ([]byte, error) {
	if s.WebhookURL == "" {
		return nil, ErrWebhookNotConfigured
	}

	body, err := json.Marshal(chatPayload{
		Message:   message,
		SessionID: sessionID,
		Source:    "web",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode chat payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		log.Printf("chat webhook unreachable: %v", err)
		return nil, ErrWebhookUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("chat webhook returned %s", resp.Status)
		return nil, ErrWebhookUnavailable
	}

	reply, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("chat webhook reply unreadable: %v", err)
		return nil, ErrWebhookUnavailable
	}
	return reply, nil
}
