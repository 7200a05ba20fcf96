package network

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"coden/config"
	"coden/models"
	"coden/utils"

	"go.uber.org/zap"
)

// MikrotikProvider implements Provider against the RouterOS REST API
// (hotspot users). Logins are named coden_<bookingID> so staff can match
// them to bookings from the router console.
type MikrotikProvider struct {
	baseURL  string
	username string
	password string
	profile  string
	client   *http.Client
	logger   *zap.Logger
}

// NewMikrotikProvider builds a provider from the loaded configuration.
func NewMikrotikProvider(logger *zap.Logger) *MikrotikProvider {
	return &MikrotikProvider{
		baseURL:  fmt.Sprintf("https://%s/rest", config.AppConfig.MikrotikHost),
		username: config.AppConfig.MikrotikUsername,
		password: config.AppConfig.MikrotikPassword,
		profile:  config.AppConfig.MikrotikProfile,
		client:   &http.Client{Timeout: config.ProviderTimeout()},
		logger:   logger,
	}
}

// LoginName derives the hotspot username for a booking.
func LoginName(bookingID string) string {
	return "coden_" + strings.ToLower(bookingID)
}

func (p *MikrotikProvider) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal mikrotik request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build mikrotik request: %w", err)
	}
	req.SetBasicAuth(p.username, p.password)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("mikrotik request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("mikrotik returned status %d for %s %s", resp.StatusCode, method, path)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode mikrotik response: %w", err)
		}
	}
	return nil
}

// Create provisions a hotspot user with a generated password and an uptime
// limit matching the booking duration.
func (p *MikrotikProvider) Create(ctx context.Context, loginID string, durationMinutes int, bandwidth string) (*models.Credentials, error) {
	password, err := utils.GenerateSecret(8)
	if err != nil {
		return nil, fmt.Errorf("failed to generate hotspot password: %w", err)
	}
	if bandwidth == "" {
		bandwidth = config.AppConfig.DefaultBandwidth
	}

	body := map[string]string{
		"name":         loginID,
		"password":     password,
		"profile":      p.profile,
		"limit-uptime": fmt.Sprintf("%dm", durationMinutes),
		"rate-limit":   bandwidth,
	}
	if err := p.do(ctx, http.MethodPut, "/ip/hotspot/user", body, nil); err != nil {
		return nil, err
	}

	p.logger.Info("provisioned hotspot login",
		zap.String("login", loginID),
		zap.Int("durationMinutes", durationMinutes),
		zap.String("bandwidth", bandwidth))

	return &models.Credentials{
		Username:  loginID,
		Password:  password,
		Bandwidth: bandwidth,
		ExpiresAt: time.Now().Add(time.Duration(durationMinutes) * time.Minute),
	}, nil
}

// Enable re-activates a disabled hotspot user.
func (p *MikrotikProvider) Enable(ctx context.Context, loginID string) error {
	body := map[string]string{"disabled": "false"}
	return p.do(ctx, http.MethodPatch, "/ip/hotspot/user/"+loginID, body, nil)
}

// Disable deactivates a hotspot user without removing it.
func (p *MikrotikProvider) Disable(ctx context.Context, loginID string) error {
	body := map[string]string{"disabled": "true"}
	return p.do(ctx, http.MethodPatch, "/ip/hotspot/user/"+loginID, body, nil)
}

// Delete removes a hotspot user entirely.
func (p *MikrotikProvider) Delete(ctx context.Context, loginID string) error {
	return p.do(ctx, http.MethodDelete, "/ip/hotspot/user/"+loginID, nil, nil)
}

type hotspotUserStats struct {
	BytesIn  int64 `json:"bytes-in,string"`
	BytesOut int64 `json:"bytes-out,string"`
	Uptime   int64 `json:"uptime,string"`
}

// Usage returns the traffic counters for a hotspot user.
func (p *MikrotikProvider) Usage(ctx context.Context, loginID string) (*models.Usage, error) {
	var stats hotspotUserStats
	if err := p.do(ctx, http.MethodGet, "/ip/hotspot/user/"+loginID, nil, &stats); err != nil {
		return nil, err
	}
	return &models.Usage{
		UploadBytes:    stats.BytesIn,
		DownloadBytes:  stats.BytesOut,
		SessionSeconds: stats.Uptime,
	}, nil
}
