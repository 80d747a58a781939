// Package mailer sends transactional email through the Brevo REST API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	brevoEndpoint  = "https://api.brevo.com/v3/smtp/email"
	requestTimeout = 15 * time.Second
)

type Message struct {
	ToEmail     string
	ToName      string
	Subject     string
	HTMLContent string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type BrevoMailer struct {
	apiKey      string
	senderName  string
	senderEmail string
	endpoint    string
	httpClient  *http.Client
}

func NewBrevoMailer(apiKey, senderName, senderEmail string) (*BrevoMailer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("brevo API key is required")
	}
	if senderEmail == "" {
		return nil, fmt.Errorf("sender email is required")
	}

	return &BrevoMailer{
		apiKey:      apiKey,
		senderName:  senderName,
		senderEmail: senderEmail,
		endpoint:    brevoEndpoint,
		httpClient:  &http.Client{Timeout: requestTimeout},
	}, nil
}

type brevoParty struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type brevoSendRequest struct {
	Sender      brevoParty   `json:"sender"`
	To          []brevoParty `json:"to"`
	Subject     string       `json:"subject"`
	HTMLContent string       `json:"htmlContent"`
}

func (m *BrevoMailer) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(brevoSendRequest{
		Sender:      brevoParty{Name: m.senderName, Email: m.senderEmail},
		To:          []brevoParty{{Name: msg.ToName, Email: msg.ToEmail}},
		Subject:     msg.Subject,
		HTMLContent: msg.HTMLContent,
	})
	if err != nil {
		return fmt.Errorf("marshal brevo payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build brevo request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", m.apiKey)

	res, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send brevo request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return fmt.Errorf("brevo responded %d: %s", res.StatusCode, string(body))
	}
	return nil
}
