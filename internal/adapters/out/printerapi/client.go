// Package printerapi implements the PrinterProbe port against the HTTP
// status endpoint that shop printers expose on their local network.
package printerapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"printshop/internal/core/domain/model/printer"
	"printshop/internal/core/ports"
	"printshop/internal/pkg/errs"
)

// statusPath is the firmware status endpoint, common to the printers the
// shop runs.
const statusPath = "/api/v1/status"

// apiKeyHeader carries the printer's API credential.
const apiKeyHeader = "X-Api-Key"

// statusResponse is the firmware's status payload.
type statusResponse struct {
	// State is the firmware's printer state name (idle, printing, paused,
	// maintenance, offline).
	State string `json:"state"`
	// Progress is the completion percentage of the running job; null when
	// no job is running.
	Progress *float64 `json:"progress"`
}

// Client probes printers over their firmware HTTP API. The per-probe
// deadline comes from the caller's context; the embedded http.Client
// carries no timeout of its own.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a firmware probe client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
	}
}

// Probe queries the printer's status endpoint and maps the reported state
// onto the domain status set. An exceeded deadline is reported as a
// TimeoutError so callers can distinguish an unreachable printer from a
// broken one; caller cancellation is passed through unchanged.
func (c *Client) Probe(ctx context.Context, p *printer.Printer) (ports.ProbeResult, error) {
	if err := p.Validate(); err != nil {
		return ports.ProbeResult{}, err
	}
	if p.IPAddress() == "" {
		return ports.ProbeResult{}, errs.NewValueIsRequiredError("printer IP address")
	}

	url := fmt.Sprintf("http://%s%s", p.IPAddress(), statusPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.ProbeResult{}, err
	}
	if p.APIKey() != "" {
		req.Header.Set(apiKeyHeader, p.APIKey())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return ports.ProbeResult{}, context.Canceled
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return ports.ProbeResult{}, errs.NewTimeoutErrorWithCause(
				fmt.Sprintf("probe printer %s", p.IPAddress()), err)
		}
		return ports.ProbeResult{}, fmt.Errorf("probe printer %s: %w", p.IPAddress(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.ProbeResult{}, fmt.Errorf("probe printer %s: unexpected status %d",
			p.IPAddress(), resp.StatusCode)
	}

	var payload statusResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ports.ProbeResult{}, fmt.Errorf("probe printer %s: %w", p.IPAddress(), err)
	}

	status, err := printer.ParseStatus(payload.State)
	if err != nil {
		return ports.ProbeResult{}, err
	}

	result := ports.ProbeResult{
		Status:   status,
		Progress: -1,
	}
	if payload.Progress != nil {
		result.Progress = *payload.Progress
	}
	return result, nil
}
