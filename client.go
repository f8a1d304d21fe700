// Package fiveoneone is a client for the 511.org transit API.
//
// JSON endpoints are returned as value.Value trees (or typed records where a
// typed variant exists), GTFS-Realtime endpoints are decoded from protobuf
// with epoch timestamps rewritten to ISO8601, and GTFS static feeds are
// streamed to disk.
//
// Every call is a single authenticated GET. Failures surface as
// *TransportError, *HTTPError or *DecodeError; nothing is retried or cached.
package fiveoneone

import (
	"net"
	"net/http"
	"time"

	"github.com/theoremus-urban-solutions/go-fiveoneone/config"
)

const userAgent = "go-fiveoneone/1.0"

// Client issues authenticated requests against the 511 API. Its fields are
// fixed at construction, so one Client may be shared between goroutines.
type Client struct {
	baseURL           string
	apiKey            string
	httpClient        *http.Client
	chunkSize         int
	convertTimestamps bool
}

// Option customises a Client beyond what ClientConfig covers.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Timeouts from the
// configuration are not applied to it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client from cfg. Unset fields take their defaults; an
// empty API key falls back to the FIVEONEONE_API_KEY environment variable and
// is otherwise sent as is.
func NewClient(cfg config.ClientConfig, opts ...Option) *Client {
	cfg.ApplyDefaults()

	c := &Client{
		baseURL:           cfg.BaseURL,
		apiKey:            cfg.APIKey,
		httpClient:        newHTTPClient(cfg),
		chunkSize:         cfg.ChunkSize,
		convertTimestamps: cfg.TimestampConversion(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// New creates a client with default settings and the given API key.
func New(apiKey string, opts ...Option) *Client {
	return NewClient(config.ClientConfig{APIKey: apiKey}, opts...)
}

// BaseURL returns the API root requests are made against.
func (c *Client) BaseURL() string { return c.baseURL }

// newHTTPClient applies the connect timeout to dialing and the read timeout
// to waiting for response headers. Zero leaves either unbounded. There is no
// overall client timeout; a download is bounded only by its context.
func newHTTPClient(cfg config.ClientConfig) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if d := cfg.ConnectTimeout(); d > 0 {
		dialer := &net.Dialer{Timeout: d, KeepAlive: 30 * time.Second}
		transport.DialContext = dialer.DialContext
		transport.TLSHandshakeTimeout = d
	}
	if d := cfg.ReadTimeout(); d > 0 {
		transport.ResponseHeaderTimeout = d
	}
	return &http.Client{Transport: transport}
}
