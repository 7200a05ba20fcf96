package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"coden/config"

	"go.uber.org/zap"
)

// FonnteProvider implements Provider using the Fonnte WhatsApp gateway.
type FonnteProvider struct {
	baseURL string
	token   string
	client  *http.Client
	logger  *zap.Logger
}

// NewFonnteProvider builds a provider from the loaded configuration.
func NewFonnteProvider(logger *zap.Logger) *FonnteProvider {
	return &FonnteProvider{
		baseURL: config.AppConfig.FonnteBaseURL,
		token:   config.AppConfig.FonnteToken,
		client:  &http.Client{Timeout: config.ProviderTimeout()},
		logger:  logger,
	}
}

type fonnteSendResponse struct {
	Status bool     `json:"status"`
	ID     []string `json:"id"`
	Reason string   `json:"reason"`
}

// Send delivers a text message over WhatsApp and returns the message ID.
func (p *FonnteProvider) Send(ctx context.Context, phone, message string) (string, error) {
	form := url.Values{}
	form.Set("target", phone)
	form.Set("message", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/send", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build fonnte request: %w", err)
	}
	req.Header.Set("Authorization", p.token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fonnte request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fonnte returned status %d sending to %s", resp.StatusCode, phone)
	}

	var out fonnteSendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode fonnte response: %w", err)
	}
	if !out.Status || len(out.ID) == 0 {
		return "", fmt.Errorf("fonnte rejected message: %s", out.Reason)
	}

	p.logger.Info("sent WhatsApp message", zap.String("phone", phone), zap.String("messageId", out.ID[0]))
	return out.ID[0], nil
}

type fonnteStatusResponse struct {
	Status string `json:"status"`
}

// GetStatus reports delivery status for a previously sent message.
func (p *FonnteProvider) GetStatus(ctx context.Context, messageID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/get-status?id="+url.QueryEscape(messageID), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build fonnte status request: %w", err)
	}
	req.Header.Set("Authorization", p.token)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fonnte request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fonnte returned status %d for message %s", resp.StatusCode, messageID)
	}

	var out fonnteStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode fonnte status: %w", err)
	}
	return out.Status, nil
}
