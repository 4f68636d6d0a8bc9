package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const sendEndpoint = "https://api.sendgrid.com/v3/mail/send"

// Sender sends transactional email
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// Config holds email sender settings
type Config struct {
	APIKey     string
	SenderName string
	SenderMail string
	Enabled    bool
}

// Service implements Sender against the SendGrid v3 API
type Service struct {
	cfg    Config
	client *http.Client
}

// NewService creates an email sender. When disabled, Send logs and
// returns nil so booking flows never fail on email.
func NewService(cfg Config) *Service {
	return &Service{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

type personalization struct {
	To []address `json:"to"`
}

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Send delivers a single HTML email
func (s *Service) Send(ctx context.Context, to, subject, htmlBody string) error {
	if !s.cfg.Enabled || s.cfg.APIKey == "" {
		log.Debug().Str("to", to).Str("subject", subject).Msg("Email disabled, skipping send")
		return nil
	}

	payload := sendRequest{
		Personalizations: []personalization{{To: []address{{Email: to}}}},
		From:             address{Email: s.cfg.SenderMail, Name: s.cfg.SenderName},
		Subject:          subject,
		Content:          []content{{Type: "text/html", Value: htmlBody}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendEndpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}
	return nil
}
