// Package nanocreatures is a client for the Nano Creatures HTTP API:
// user authentication, creature management, memory sources and chat.
//
// The client is stateless: every authenticated call takes the credential
// explicitly, and nothing (tokens, creatures, session ids) is retained
// between calls.
package nanocreatures

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL is the production service origin.
const DefaultBaseURL = "https://nano-creatures.ai"

const defaultTimeout = 30 * time.Second

type Client struct {
	baseURL       string
	apiKey        string
	signingSecret string
	httpClient    *http.Client
	logger        *slog.Logger
}

type Option func(*Client)

// WithBaseURL overrides the service origin, e.g. for a local deployment.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithAPIKey sets the key sent on sign-up and sign-in. All other operations
// take their credential per call and ignore this.
func WithAPIKey(apiKey string) Option {
	return func(c *Client) { c.apiKey = apiKey }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithLogger enables per-request debug logging. Without it the client is
// silent.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithTokenSigner enables local session-token minting on sign-in for
// deployments whose sign-in response carries no token. A server-issued
// token always wins; the secret is never sent anywhere.
func WithTokenSigner(secret string) Option {
	return func(c *Client) { c.signingSecret = secret }
}

func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do issues one request and decodes the response into out (nil for
// no-content operations). fallback is the operation's error message when
// the server provides none.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any, fallback string) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.logger.DebugContext(ctx, "api call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", requestID,
		"credential", credentialKind(token),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, raw, fallback)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Body: string(raw), err: err}
	}
	return nil
}

// credentialKind labels the credential for logging. API keys conventionally
// carry an "sk-" prefix; the transport treats both kinds identically.
func credentialKind(token string) string {
	switch {
	case token == "":
		return "none"
	case strings.HasPrefix(token, "sk-"):
		return "api_key"
	default:
		return "token"
	}
}
