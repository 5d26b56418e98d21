// Package config loads JsonBank CLI configuration from HCL or YAML files.
// Files ending in .json are read as HCL's JSON syntax.
//
// Example configuration (HCL):
//
//	host        = "https://api.jsonbank.io"
//	public_key  = "..."
//	private_key = "..."
//	timeout     = "30s"
//	log_level   = "info"
//
// The environment variables JSONBANK_HOST, JSONBANK_PUBLIC_KEY and
// JSONBANK_PRIVATE_KEY override the file.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/jsonbankio/jsonbank-go/pkg/jsonbank"
)

// Environment variables that override file values.
const (
	EnvHost       = "JSONBANK_HOST"
	EnvPublicKey  = "JSONBANK_PUBLIC_KEY"
	EnvPrivateKey = "JSONBANK_PRIVATE_KEY"
)

const defaultTimeout = "30s"

// Config is the CLI configuration.
type Config struct {
	Host       string `hcl:"host,optional" yaml:"host"`
	PublicKey  string `hcl:"public_key,optional" yaml:"public_key"`
	PrivateKey string `hcl:"private_key,optional" yaml:"private_key"`

	// Timeout for API requests, as a Go duration. Default: 30s
	Timeout string `hcl:"timeout,optional" yaml:"timeout"`

	// TLSVerify controls TLS certificate verification. Default: true
	TLSVerify *bool `hcl:"tls_verify,optional" yaml:"tls_verify"`

	// LogLevel is an hclog level name. Default: info
	LogLevel string `hcl:"log_level,optional" yaml:"log_level"`
}

// Load reads the file at path (if path is not empty), applies defaults and
// environment overrides, and validates the result.
func Load(fs afero.Fs, path string) (*Config, error) {
	var cfg Config

	if path != "" {
		src, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file: %w", err)
		}

		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".hcl", ".json":
			if err := hclsimple.Decode(path, src, nil, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse configuration file: %w", err)
			}
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(src, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse configuration file: %w", err)
			}
		default:
			return nil, fmt.Errorf("unsupported configuration file extension %q", ext)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvHost); v != "" {
		c.Host = v
	}
	if v := os.Getenv(EnvPublicKey); v != "" {
		c.PublicKey = v
	}
	if v := os.Getenv(EnvPrivateKey); v != "" {
		c.PrivateKey = v
	}
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = jsonbank.DefaultHost
	}
	if c.Timeout == "" {
		c.Timeout = defaultTimeout
	}
	if c.TLSVerify == nil {
		tlsVerify := true
		c.TLSVerify = &tlsVerify
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports every problem with the configuration.
func (c *Config) Validate() error {
	var result *multierror.Error

	if err := validation.Validate(c.Host, validation.Required); err != nil {
		result = multierror.Append(result, fmt.Errorf("host: %w", err))
	} else if u, err := url.Parse(c.Host); err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid host: %w", err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		result = multierror.Append(result,
			fmt.Errorf("host must use http or https scheme, got: %q", u.Scheme))
	}

	if d, err := time.ParseDuration(c.Timeout); err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid timeout: %w", err))
	} else if d < 0 {
		result = multierror.Append(result, fmt.Errorf("timeout must be non-negative, got: %v", d))
	}

	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		result = multierror.Append(result, fmt.Errorf("unknown log_level %q", c.LogLevel))
	}

	return result.ErrorOrNil()
}

// ClientConfig builds the SDK configuration.
func (c *Config) ClientConfig(logger hclog.Logger) *jsonbank.Config {
	timeout, _ := time.ParseDuration(c.Timeout)
	tlsVerify := c.TLSVerify == nil || *c.TLSVerify

	return &jsonbank.Config{
		Host: c.Host,
		Keys: jsonbank.Keys{
			Public:  c.PublicKey,
			Private: c.PrivateKey,
		},
		HTTPClient: jsonbank.NewHTTPClient(timeout, tlsVerify),
		FS:         afero.NewOsFs(),
		Logger:     logger,
	}
}
