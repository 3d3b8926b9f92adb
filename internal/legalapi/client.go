// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package legalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// DefaultBaseURL is the local development origin of the backend.
const DefaultBaseURL = "http://localhost:8000"

// ClientConfig holds configuration options for the legal API client.
type ClientConfig struct {
	// BaseURL is the backend origin (default: http://localhost:8000)
	BaseURL string

	// ChatTimeout bounds a single chat exchange (default: 60s).
	// Free-tier hosting suspends idle backends, so the first request after
	// an idle period can take most of a minute.
	ChatTimeout time.Duration

	// ProbeTimeout bounds health/catalog requests (default: 10s)
	ProbeTimeout time.Duration

	// UserAgent sent with every request
	UserAgent string
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:      DefaultBaseURL,
		ChatTimeout:  60 * time.Second,
		ProbeTimeout: 10 * time.Second,
		UserAgent:    "lexterm",
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the Legal Assistant Chatbot API.
// It is safe for concurrent use.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	limiter    *rate.Limiter
	sessionID  string
}

// NewClient creates a client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	// Fill in defaults for any zero values
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.ChatTimeout == 0 {
		config.ChatTimeout = 60 * time.Second
	}
	if config.ProbeTimeout == 0 {
		config.ProbeTimeout = 10 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = "lexterm"
	}

	return &Client{
		config: config,
		// The per-call context carries the deadline, so no transport timeout.
		httpClient: &http.Client{},
		// Keeps status polling from hammering a backend that is still waking.
		limiter:   rate.NewLimiter(rate.Every(200*time.Millisecond), 5),
		sessionID: uuid.NewString(),
	}
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// ChatTimeout returns the bound applied to one chat exchange.
func (c *Client) ChatTimeout() time.Duration {
	return c.config.ChatTimeout
}

// SessionID returns the correlation id sent with chat requests.
func (c *Client) SessionID() string {
	return c.sessionID
}

// IsLoopback reports whether the configured origin points at this machine.
// Diagnostics use it to tell "start the local backend" apart from "check the
// remote origin".
func (c *Client) IsLoopback() bool {
	return IsLoopbackOrigin(c.config.BaseURL)
}

// IsLoopbackOrigin reports whether rawURL's host is a loopback address.
func IsLoopbackOrigin(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := u.Hostname()
	if host == "localhost" {
		return true
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback()
	}
	return false
}

// =============================================================================
// CHAT
// =============================================================================

// Chat sends one question and returns the structured answer. The caller's
// context bounds the wait; the 60s chat bound comes from the UI command that
// issues the request.
func (c *Client) Chat(ctx context.Context, message string, country Country, userType UserType) (*ChatResponse, error) {
	reqBody := ChatRequest{
		Message:   message,
		Country:   country,
		UserType:  userType,
		SessionID: c.sessionID,
	}

	var result ChatResponse
	if err := c.post(ctx, "/chat", reqBody, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// =============================================================================
// PROBES
// =============================================================================

// Health checks the backend's own health endpoint.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var result HealthResponse
	if err := c.get(ctx, "/health", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SupportedCountries fetches the jurisdictions the backend answers for.
func (c *Client) SupportedCountries(ctx context.Context) (*CountriesResponse, error) {
	var result CountriesResponse
	if err := c.get(ctx, "/countries", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// =============================================================================
// ENGLISH LAW CATALOG
// =============================================================================

// EnglishLaws lists the catalog entries for one topic.
func (c *Client) EnglishLaws(ctx context.Context, topic string) (*EnglishLawsResponse, error) {
	var result EnglishLawsResponse
	if err := c.get(ctx, "/english-laws?topic="+url.QueryEscape(topic), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// EnglishLawCatalog fetches the full catalog grouped by topic.
func (c *Client) EnglishLawCatalog(ctx context.Context) (*EnglishLawCatalogResponse, error) {
	var result EnglishLawCatalogResponse
	if err := c.get(ctx, "/english-laws", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// EnglishLawURL builds the law.go.kr English-law page URL for a statute.
// Promulgation number and date are optional and must be given together.
func (c *Client) EnglishLawURL(ctx context.Context, lawName, promulgationNo, promulgationDate string) (*LawURLResponse, error) {
	q := url.Values{}
	q.Set("law_name", lawName)
	if promulgationNo != "" {
		q.Set("promulgation_no", promulgationNo)
	}
	if promulgationDate != "" {
		q.Set("promulgation_date", promulgationDate)
	}

	var result LawURLResponse
	if err := c.get(ctx, "/english-laws/url?"+q.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchLaws queries the National Law Information search proxied by the backend.
func (c *Client) SearchLaws(ctx context.Context, req LawSearchRequest) (*LawSearchResponse, error) {
	if req.SearchType == "" {
		req.SearchType = "law"
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if req.Count == 0 {
		req.Count = 10
	}

	var result LawSearchResponse
	if err := c.post(ctx, "/laws/search", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// LawDetail fetches the full text of one statute by its MST number as
// returned in law search results.
func (c *Client) LawDetail(ctx context.Context, id string) (*LawDetailResponse, error) {
	if id == "" {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "law id is required"}
	}

	var result LawDetailResponse
	if err := c.get(ctx, "/laws/"+url.PathEscape(id), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// =============================================================================
// TRANSPORT
// =============================================================================

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return classifyTransportErr(err)
	}

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reader)
	if err != nil {
		return &ClientError{Type: ErrTypeUnreachable, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", c.config.UserAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Detail != "" {
			return NewDetailError(errBody.Detail)
		}
		return &ClientError{
			Type:    ErrTypeInvalidResponse,
			Message: "unexpected status from legal API: " + resp.Status,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	return nil
}

// classifyTransportErr maps a transport failure onto the client taxonomy.
// Timeouts take precedence over unreachable so a slow connect attempt still
// reads as a timeout.
func classifyTransportErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return ErrTimeout
	}
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return &ClientError{Type: ErrTypeUnreachable, Message: "legal API is not reachable", Cause: uerr}
	}
	return &ClientError{Type: ErrTypeUnknown, Message: "request failed", Cause: err}
}
