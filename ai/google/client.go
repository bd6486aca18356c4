package google

import (
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultTranslateBase = "https://translate.googleapis.com"
	defaultTTSBase       = "https://translate.google.com"
)

// Client talks to the public Google Translate endpoints. It implements
// ai.Translator, ai.LanguageDetector and ai.SpeechSynthesizer.
//
// These are the same unauthenticated endpoints the gtx web client uses; they
// need no API key but offer no SLA, so every caller in the pipeline treats
// failures as a degradation, never a fault.
type Client struct {
	httpClient    *http.Client
	translateBase string
	ttsBase       string
	logger        *slog.Logger
}

// Option configures a Client.
type Option func(*Client) error

// WithHTTPClient sets a custom HTTP client.
// Default is a client with a 15s timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc != nil {
			c.httpClient = hc
		}
		return nil
	}
}

// WithTranslateBase overrides the translation endpoint base URL.
func WithTranslateBase(base string) Option {
	return func(c *Client) error {
		if base != "" {
			c.translateBase = base
		}
		return nil
	}
}

// WithTTSBase overrides the speech endpoint base URL.
func WithTTSBase(base string) Option {
	return func(c *Client) error {
		if base != "" {
			c.ttsBase = base
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewClient creates a new Google Translate client.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		translateBase: defaultTranslateBase,
		ttsBase:       defaultTTSBase,
		logger:        slog.Default().With("component", "google-translate"),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}
