// Package registry holds the HTTP client for the external card registry.
// The exchange reads ownership only; it never mutates registry records.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"card-exchange/config"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.CardRegistry against the registry's REST API.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a card registry client.
func NewClient(cfg config.RegistryConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
		log:        log,
	}
}

type ownerResponse struct {
	Owner uuid.UUID `json:"owner"`
}

// OwnerOf returns the current owner of the card.
func (c *Client) OwnerOf(ctx context.Context, cardID int64) (uuid.UUID, error) {
	url := fmt.Sprintf("%s/v1/cards/%d/owner", c.baseURL, cardID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("build owner request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return uuid.Nil, fmt.Errorf("registry owner lookup: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096)) //nolint:errcheck
		return uuid.Nil, fmt.Errorf("registry returned %d for card %d", resp.StatusCode, cardID)
	}

	var body ownerResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return uuid.Nil, fmt.Errorf("decode owner response: %w", err)
	}
	return body.Owner, nil
}
