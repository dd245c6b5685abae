// Package provider contains the shared HTTP plumbing for the outbound
// geocoding, POI, weather and translation clients.
package provider

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"poi-finder-api/internal/apperr"
)

const maxErrorBody = 2048

// maxResponseBody caps decoded payloads; Overpass answers are the largest.
const maxResponseBody = 8 << 20

// NewHTTPClient returns the client shared by all providers.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// Overloaded reports whether the status means the provider is rate limiting
// or temporarily unable to serve.
func Overloaded(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

// DoJSON executes req exactly once and decodes a JSON body into out.
// Transport failures and unexpected statuses become apperr kinds.
func DoJSON(client *http.Client, req *http.Request, op string, out any) error {
	resp, err := client.Do(req)
	if err != nil {
		return apperr.ProviderError(op, err)
	}
	defer resp.Body.Close()

	if Overloaded(resp.StatusCode) {
		return apperr.ProviderOverloaded(op, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return apperr.ProviderError(op, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(out); err != nil {
		return apperr.ProviderError(op, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
