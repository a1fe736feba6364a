package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kth-tools/kthprofile/internal/config"
	"github.com/kth-tools/kthprofile/internal/ctxlog"
	"github.com/kth-tools/kthprofile/pkg/domain"
)

const (
	maxErrorBody   = 1 << 20  // 1 MB
	maxProfileBody = 10 << 20 // 10 MB
)

// Client is the KTH profile API client.
type Client struct {
	cfg        config.Config
	httpClient *http.Client
}

// New creates a client whose timeout and redirect policy come from cfg.
func New(cfg config.Config) *Client {
	maxRedirects := cfg.MaxRedirects
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			// Past the limit the redirect response itself is returned and
			// fails the status check.
			CheckRedirect: func(_ *http.Request, via []*http.Request) error {
				if len(via) > maxRedirects {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
	}
}

// GetProfile fetches and decodes the profile for identifier.
func (c *Client) GetProfile(ctx context.Context, identifier string) (*domain.Profile, error) {
	body, err := c.FetchProfile(ctx, identifier)
	if err != nil {
		return nil, err
	}
	p, err := domain.DecodeProfile(body)
	if err != nil {
		return nil, fmt.Errorf("client.GetProfile: %w", err)
	}
	return p, nil
}

// FetchProfile returns the raw profile body for identifier. Every call hits
// the network.
func (c *Client) FetchProfile(ctx context.Context, identifier string) ([]byte, error) {
	body, err := c.get(ctx, c.cfg.ProfileURL(identifier))
	if err != nil {
		return nil, fmt.Errorf("client.FetchProfile: %w", err)
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	log := ctxlog.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug("profile request failed", "url", target, "error", err)
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close
	log.Debug("profile request", "url", target, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, readHTTPError(resp)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProfileBody))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

func readHTTPError(resp *http.Response) error {
	respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if readErr != nil {
		return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
	}
	var apiErr struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
		return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}
	return &HTTPError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
}
