// Package mailer is the outbound email capability. The concrete implementation
// posts SendGrid-style JSON payloads; everything else in the service depends on
// the Mailer interface only.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Message struct {
	To      []string
	Subject string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type Config struct {
	APIKey    string
	Endpoint  string
	FromEmail string
	FromName  string
}

type sendGridMailer struct {
	cfg  Config
	http *http.Client
}

func NewSendGridMailer(cfg Config) Mailer {
	return &sendGridMailer{
		cfg:  cfg,
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

type sgEmail struct {
	Email string `json:"email"`
}

type sgPersonalization struct {
	To      []sgEmail `json:"to"`
	Subject string    `json:"subject"`
}

type sgFrom struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sgPayload struct {
	Personalizations []sgPersonalization `json:"personalizations"`
	From             sgFrom              `json:"from"`
	Content          []sgContent         `json:"content"`
}

func (m *sendGridMailer) Send(ctx context.Context, msg Message) error {
	to := make([]sgEmail, 0, len(msg.To))
	for _, addr := range msg.To {
		to = append(to, sgEmail{Email: addr})
	}

	payload := sgPayload{
		Personalizations: []sgPersonalization{{To: to, Subject: msg.Subject}},
		From:             sgFrom{Email: m.cfg.FromEmail, Name: m.cfg.FromName},
		Content:          []sgContent{{Type: "text/html", Value: msg.HTML}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)

	resp, err := m.http.Do(req)
	if err != nil {
		return fmt.Errorf("mail send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail provider returned %d", resp.StatusCode)
	}
	return nil
}
