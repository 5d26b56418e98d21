package jsonbank

import (
	"crypto/tls"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

// DefaultHost is the JsonBank production API host.
const DefaultHost = "https://api.jsonbank.io"

// Doer issues a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config contains configuration for the JsonBank client.
type Config struct {
	// Host is the base URL of the JsonBank API.
	// Default: DefaultHost
	Host string `json:"host"`

	// Keys are the API credentials. Either key may be empty.
	Keys Keys `json:"-"` // Don't marshal keys to JSON

	// HTTPClient issues requests. Default: NewHTTPClient(30s, true).
	HTTPClient Doer `json:"-"`

	// FS is used to read files for UploadDocument. Default: afero.NewOsFs().
	FS afero.Fs `json:"-"`

	// Logger (optional)
	Logger hclog.Logger `json:"-"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Host:       DefaultHost,
		HTTPClient: NewHTTPClient(30*time.Second, true),
		FS:         afero.NewOsFs(),
		Logger:     hclog.NewNullLogger(),
	}
}

// applyDefaults fills every unset field from DefaultConfig.
func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.HTTPClient == nil {
		c.HTTPClient = NewHTTPClient(30*time.Second, true)
	}
	if c.FS == nil {
		c.FS = afero.NewOsFs()
	}
	if c.Logger == nil {
		c.Logger = hclog.NewNullLogger()
	}
}

// NewHTTPClient creates the HTTP client used when Config.HTTPClient is nil.
// Timeouts live here, on the transport, rather than in the client.
func NewHTTPClient(timeout time.Duration, tlsVerify bool) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	// Configure TLS verification
	if !tlsVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
