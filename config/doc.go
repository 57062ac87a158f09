// Package config provides configuration loading from environment variables
// with automatic type conversion and .env file support.
//
// This package follows the twelve-factor app methodology for configuration
// management, allowing applications to be configured across different
// environments without code changes. Configuration is described by plain Go
// structs with field tags.
//
// # Basic Usage
//
// Define a configuration struct with environment variable tags:
//
//	type Config struct {
//	    URL     string        `env:"IMGPROXY_URL"`
//	    Key     string        `env:"IMGPROXY_KEY"`
//	    Timeout time.Duration `env:"IMGPROXY_TIMEOUT,default:30s"`
//	}
//
// Load configuration from environment variables:
//
//	import "github.com/gobeaver/imgproxy-kit/config"
//
//	var cfg Config
//	err := config.Load(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Custom Prefixes
//
// Use custom prefixes to avoid environment variable conflicts:
//
//	// Will look for MYAPP_IMGPROXY_URL, MYAPP_IMGPROXY_KEY, etc.
//	err := config.Load(&cfg, config.LoadOptions{Prefix: "MYAPP_"})
//
// # .env Files
//
// A .env file in the current directory is loaded automatically (via
// github.com/joho/godotenv) before the environment is read. Variables
// already present in the environment take precedence over the file.
package config
