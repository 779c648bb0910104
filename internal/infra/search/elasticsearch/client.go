// Package elasticsearch reads the explorer's search index: the indexing
// tip stored in the blocks index mapping and the transfer documents used by
// the daily digest.
package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gabapcia/starwatch/internal/digest"
	"github.com/gabapcia/starwatch/internal/indexwatch"
	transporthttp "github.com/gabapcia/starwatch/internal/pkg/transport/http"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	DefaultBlocksIndex   = "main.0727.blocks"
	DefaultTransferIndex = "main.0727.transfer"
	DefaultPageSize      = 100

	// maxErrorBody caps how much of a failed response ends up in the error.
	maxErrorBody = 1 << 10
)

var (
	// ErrUnexpectedStatus is returned for any non 2xx response.
	ErrUnexpectedStatus = errors.New("unexpected elasticsearch status")

	// ErrTipNotFound is returned when the blocks index mapping carries no
	// indexing tip.
	ErrTipNotFound = errors.New("index tip not found")
)

type client struct {
	baseURL       string
	username      string
	password      string
	blocksIndex   string
	transferIndex string
	pageSize      int
	http          *retryablehttp.Client
}

var (
	_ indexwatch.IndexCache = (*client)(nil)
	_ digest.Searcher       = (*client)(nil)
)

func (c *client) do(ctx context.Context, method, index, endpoint string, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(data)
	}

	target, err := url.JoinPath(c.baseURL, url.PathEscape(index), endpoint)
	if err != nil {
		return err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.username != "" || c.password != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return fmt.Errorf("%w: %d - %s", ErrUnexpectedStatus, res.StatusCode, strings.TrimSpace(string(msg)))
	}

	return json.NewDecoder(res.Body).Decode(out)
}

// Config is the connection and index layout of the search cluster.
type Config struct {
	URL           string
	Username      string
	Password      string
	BlocksIndex   string
	TransferIndex string
	PageSize      int
}

type config struct {
	http *retryablehttp.Client
}

type Option func(*config)

// NewClient builds a search index client. Empty index names and a non
// positive page size fall back to the defaults.
func NewClient(cfg Config, opts ...Option) *client {
	c := config{
		http: transporthttp.NewClient(),
	}
	for _, opt := range opts {
		opt(&c)
	}

	if cfg.BlocksIndex == "" {
		cfg.BlocksIndex = DefaultBlocksIndex
	}
	if cfg.TransferIndex == "" {
		cfg.TransferIndex = DefaultTransferIndex
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}

	return &client{
		baseURL:       strings.TrimRight(cfg.URL, "/"),
		username:      cfg.Username,
		password:      cfg.Password,
		blocksIndex:   cfg.BlocksIndex,
		transferIndex: cfg.TransferIndex,
		pageSize:      cfg.PageSize,
		http:          c.http,
	}
}

// WithHTTPClient replaces the default retrying HTTP client.
func WithHTTPClient(h *retryablehttp.Client) Option {
	return func(c *config) {
		c.http = h
	}
}
