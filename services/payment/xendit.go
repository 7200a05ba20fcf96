package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"coden/config"
	"coden/models"

	"go.uber.org/zap"
)

// XenditProvider implements Provider against the Xendit invoice API,
// issuing QRIS invoices with a 24-hour expiry.
type XenditProvider struct {
	baseURL   string
	secretKey string
	client    *http.Client
	logger    *zap.Logger
}

// NewXenditProvider builds a provider from the loaded configuration.
func NewXenditProvider(logger *zap.Logger) *XenditProvider {
	return &XenditProvider{
		baseURL:   config.AppConfig.XenditBaseURL,
		secretKey: config.AppConfig.XenditSecretKey,
		client:    &http.Client{Timeout: config.ProviderTimeout()},
		logger:    logger,
	}
}

type xenditInvoice struct {
	ID         string `json:"id"`
	ExternalID string `json:"external_id"`
	Status     string `json:"status"`
	Amount     int64  `json:"amount"`
	PaidAmount int64  `json:"paid_amount"`
	InvoiceURL string `json:"invoice_url"`
	QRString   string `json:"qr_string"`
	ExpiryDate string `json:"expiry_date"`
	PaidAt     string `json:"paid_at"`
}

// CreateInvoice creates a QRIS invoice for a booking. External IDs use the
// CODEN_<bookingID> convention so invoices stay traceable from the dashboard.
func (p *XenditProvider) CreateInvoice(ctx context.Context, req InvoiceRequest) (*models.Invoice, error) {
	description := req.Description
	if description == "" {
		description = fmt.Sprintf("CODEN Booking - %s", req.BookingID)
	}

	payload := map[string]any{
		"external_id":     "CODEN_" + req.BookingID,
		"amount":          req.Amount,
		"description":     description,
		"currency":        "IDR",
		"payment_methods": []string{"QRIS"},
		"customer": map[string]string{
			"given_names":   req.PayerName,
			"mobile_number": req.PayerPhone,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal invoice request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v2/invoices", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build invoice request: %w", err)
	}
	httpReq.SetBasicAuth(p.secretKey, "")
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("xendit request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("xendit returned status %d creating invoice for booking %s", resp.StatusCode, req.BookingID)
	}

	var inv xenditInvoice
	if err := json.NewDecoder(resp.Body).Decode(&inv); err != nil {
		return nil, fmt.Errorf("failed to decode xendit invoice: %w", err)
	}

	expiresAt, _ := time.Parse(time.RFC3339, inv.ExpiryDate)
	p.logger.Info("created payment invoice",
		zap.String("bookingId", req.BookingID),
		zap.String("invoiceId", inv.ID),
		zap.Int64("amount", inv.Amount))

	return &models.Invoice{
		InvoiceID:   inv.ID,
		BookingID:   req.BookingID,
		Amount:      inv.Amount,
		CheckoutURL: inv.InvoiceURL,
		QRPayload:   inv.QRString,
		ExpiresAt:   expiresAt,
		CreatedAt:   time.Now(),
	}, nil
}

// GetInvoiceStatus reports the current payment progress of an invoice.
func (p *XenditProvider) GetInvoiceStatus(ctx context.Context, invoiceID string) (*models.InvoiceStatus, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/v2/invoices/"+invoiceID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build invoice status request: %w", err)
	}
	httpReq.SetBasicAuth(p.secretKey, "")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("xendit request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("xendit returned status %d for invoice %s", resp.StatusCode, invoiceID)
	}

	var inv xenditInvoice
	if err := json.NewDecoder(resp.Body).Decode(&inv); err != nil {
		return nil, fmt.Errorf("failed to decode xendit invoice: %w", err)
	}

	status := &models.InvoiceStatus{
		Status:     inv.Status,
		PaidAmount: inv.PaidAmount,
	}
	if inv.PaidAt != "" {
		if paidAt, err := time.Parse(time.RFC3339, inv.PaidAt); err == nil {
			status.PaidAt = &paidAt
		}
	}
	return status, nil
}
