// Package sheet loads question rows and matching-pair rows from a Google
// Sheets gviz endpoint. Fetch or parse failures are fatal for the session
// that requested them; nothing here retries.
package sheet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the public gviz endpoint root.
const DefaultBaseURL = "https://docs.google.com/spreadsheets/d"

const defaultTimeout = 15 * time.Second

// Client fetches tabular rows for an opaque sheet identifier.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient constructs a client for the public endpoint.
func NewClient() *Client {
	return NewClientWithBaseURL(DefaultBaseURL)
}

// NewClientWithBaseURL constructs a client against an alternate endpoint root.
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

// FetchTable retrieves and decodes the row grid for a sheet.
func (c *Client) FetchTable(ctx context.Context, sheetID string) ([][]string, error) {
	if sheetID == "" {
		return nil, fmt.Errorf("fetch sheet: empty sheet id")
	}
	url := fmt.Sprintf("%s/%s/gviz/tq?tqx=out:json", c.baseURL, sheetID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet %s: %w", sheetID, err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet %s: %w", sheetID, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch sheet %s: unexpected status %d", sheetID, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet %s: %w", sheetID, err)
	}
	rows, err := parseGviz(body)
	if err != nil {
		return nil, fmt.Errorf("parse sheet %s: %w", sheetID, err)
	}
	return rows, nil
}
