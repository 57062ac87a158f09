package imgproxy

import (
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"github.com/gobeaver/imgproxy-kit/config"
)

// Global instance management
var (
	defaultInstance *Endpoint
	defaultOnce     sync.Once
	defaultErr      error
)

// Define standard errors for the package
var (
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrNotInitialized = errors.New("service not initialized")
	ErrNotImplemented = errors.New("processing option not implemented")
)

// Endpoint represents a single imgproxy instance and holds everything needed
// to build request URLs for it: the base URL and the decoded signing key,
// signing salt and source URL encryption key. An Endpoint is immutable after
// construction and safe for concurrent use.
type Endpoint struct {
	url           string
	key           []byte
	salt          []byte
	encryptionKey []byte
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Init initializes the global instance with optional config
func Init(configs ...Config) error {
	defaultOnce.Do(func() {
		var cfg *Config
		if len(configs) > 0 {
			cfg = &configs[0]
		} else {
			cfg, defaultErr = GetConfig()
			if defaultErr != nil {
				return
			}
		}

		defaultInstance, defaultErr = New(*cfg)
	})

	return defaultErr
}

// New creates a new Endpoint with given config. The base URL must be set;
// key, salt and encryption key are optional hex strings that are decoded to
// raw bytes. Without both key and salt, produced URLs carry no signature
// segment and only work against an imgproxy instance that skips signature
// verification.
func New(cfg Config) (*Endpoint, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("%w: imgproxy URL not set", ErrInvalidConfig)
	}

	key, err := decodeHexField("key", cfg.Key)
	if err != nil {
		return nil, err
	}
	salt, err := decodeHexField("salt", cfg.Salt)
	if err != nil {
		return nil, err
	}
	encryptionKey, err := decodeHexField("source URL encryption key", cfg.SourceURLEncryptionKey)
	if err != nil {
		return nil, err
	}

	return &Endpoint{
		url:           cfg.URL,
		key:           key,
		salt:          salt,
		encryptionKey: encryptionKey,
	}, nil
}

// decodeHexField decodes an optional hex string to raw bytes. An empty
// string decodes to an empty slice.
func decodeHexField(name, value string) ([]byte, error) {
	if value == "" {
		return nil, nil
	}
	raw, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hex in %s: %v", ErrInvalidConfig, name, err)
	}
	return raw, nil
}

// Reset clears the global instance (for testing)
func Reset() {
	defaultInstance = nil
	defaultOnce = sync.Once{}
	defaultErr = nil
}

// Service returns the global endpoint instance
func Service() *Endpoint {
	if defaultInstance == nil {
		Init() // Initialize with defaults if needed
	}
	return defaultInstance
}

// URL returns the configured base URL of the endpoint.
func (e *Endpoint) URL() string {
	return e.url
}

// Image creates a request builder for the given source URL. The source may
// be an absolute URL or a path, depending on how the imgproxy instance
// resolves sources.
func (e *Endpoint) Image(sourceURL string) *Image {
	return &Image{endpoint: e, sourceURL: sourceURL}
}
