// Package ledger holds the HTTP client for the external fungible-token
// ledger. The exchange never keeps balances itself; every value movement is
// delegated to this service.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"card-exchange/config"
	"card-exchange/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.Ledger against the ledger's REST API.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a ledger client.
func NewClient(cfg config.LedgerConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
		log:        log,
	}
}

type transferRequest struct {
	From   uuid.UUID `json:"from"`
	To     uuid.UUID `json:"to"`
	Amount int64     `json:"amount"`
}

type transferError struct {
	Message string `json:"message"`
}

// Transfer moves amount from one account to the other. A non-2xx response
// means no funds moved and maps to a gateway error the caller can
// compensate against.
func (c *Client) Transfer(ctx context.Context, from, to uuid.UUID, amount int64) error {
	body, err := json.Marshal(transferRequest{From: from, To: to, Amount: amount})
	if err != nil {
		return apperror.ErrLedgerTransferFailed(fmt.Errorf("marshal transfer: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/transfers", bytes.NewReader(body))
	if err != nil {
		return apperror.ErrLedgerTransferFailed(fmt.Errorf("build transfer request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperror.ErrLedgerTransferFailed(fmt.Errorf("ledger transfer: %w", err))
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var lerr transferError
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(raw, &lerr) != nil || lerr.Message == "" {
			lerr.Message = http.StatusText(resp.StatusCode)
		}
		c.log.Warn().
			Int("status", resp.StatusCode).
			Str("from", from.String()).
			Str("to", to.String()).
			Int64("amount", amount).
			Msg("Ledger transfer rejected")
		return apperror.ErrLedgerTransferFailed(fmt.Errorf("ledger returned %d: %s", resp.StatusCode, lerr.Message))
	}
	return nil
}
