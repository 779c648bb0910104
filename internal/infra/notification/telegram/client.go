// Package telegram delivers messages through the Telegram Bot API.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gabapcia/starwatch/internal/dispatch"
	transporthttp "github.com/gabapcia/starwatch/internal/pkg/transport/http"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	DefaultAPIURL = "https://api.telegram.org"

	parseModeMarkdownV2 = "MarkdownV2"

	// sendTimeout matches what a slow proxy needs for one request.
	sendTimeout = 60 * time.Second
)

// ErrSendFailed is returned when the Bot API rejects a message.
var ErrSendFailed = errors.New("telegram send failed")

type client struct {
	apiURL string
	token  string
	http   *retryablehttp.Client
}

var _ dispatch.Channel = (*client)(nil)

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

// Send posts text to the chat target. Transport retries are left to the
// dispatcher, so a single request is made per call.
func (c *client) Send(ctx context.Context, target, text string, formatted bool) error {
	msg := sendMessageRequest{
		ChatID: target,
		Text:   text,
	}
	if formatted {
		msg.ParseMode = parseModeMarkdownV2
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.apiURL, c.token)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		// the token is part of the URL and must not leak into logs
		return fmt.Errorf("%w: %s", ErrSendFailed, redact(err.Error(), c.token))
	}
	defer res.Body.Close()

	var data apiResponse
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return fmt.Errorf("%w: status %d: %w", ErrSendFailed, res.StatusCode, err)
	}

	if !data.OK {
		return fmt.Errorf("%w: [%d] - %s", ErrSendFailed, data.ErrorCode, data.Description)
	}

	return nil
}

func redact(s, token string) string {
	if token == "" {
		return s
	}
	return strings.ReplaceAll(s, token, "<redacted>")
}

// ParseProxy accepts a proxy URL or a bare host:port, which is taken as an
// HTTP proxy. An empty string means no proxy.
func ParseProxy(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy %q: %w", raw, err)
	}

	if u.Host == "" {
		return nil, fmt.Errorf("invalid proxy %q: missing host", raw)
	}

	return u, nil
}

type config struct {
	apiURL string
	proxy  *url.URL
	http   *retryablehttp.Client
}

type Option func(*config)

// NewClient builds a Bot API client for token.
func NewClient(token string, opts ...Option) *client {
	cfg := config{
		apiURL: DefaultAPIURL,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.http == nil {
		cfg.http = transporthttp.NewClient(
			transporthttp.WithTimeout(sendTimeout),
			transporthttp.WithRetryMax(0),
			transporthttp.WithProxy(cfg.proxy),
		)
	}

	return &client{
		apiURL: strings.TrimRight(cfg.apiURL, "/"),
		token:  token,
		http:   cfg.http,
	}
}

// WithAPIURL points the client at a Bot API server other than Telegram's.
func WithAPIURL(apiURL string) Option {
	return func(c *config) {
		if apiURL != "" {
			c.apiURL = apiURL
		}
	}
}

// WithProxy routes requests through proxy. Ignored when WithHTTPClient is
// also given.
func WithProxy(proxy *url.URL) Option {
	return func(c *config) {
		c.proxy = proxy
	}
}

func WithHTTPClient(h *retryablehttp.Client) Option {
	return func(c *config) {
		c.http = h
	}
}
