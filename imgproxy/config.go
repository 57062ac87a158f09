package imgproxy

// Config defines the configuration for an imgproxy endpoint.
type Config struct {
	// URL is the base URL of the imgproxy instance (scheme, host and an
	// optional path prefix, without a trailing slash)
	URL string `env:"IMGPROXY_URL"`

	// Key is the hex-encoded signing key
	Key string `env:"IMGPROXY_KEY"`

	// Salt is the hex-encoded signing salt
	Salt string `env:"IMGPROXY_SALT"`

	// SourceURLEncryptionKey is the hex-encoded source URL encryption key.
	// It is decoded and stored but not used yet; reserved for source URL
	// encryption support.
	SourceURLEncryptionKey string `env:"IMGPROXY_SOURCE_URL_ENCRYPTION_KEY"`
}
