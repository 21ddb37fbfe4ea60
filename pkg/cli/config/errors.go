package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound     = goerr.New("configuration file not found")
	ErrInvalidConfig      = goerr.New("invalid configuration")
	ErrUnsupportedFormat  = goerr.New("unsupported configuration file format")
	ErrMissingToken       = goerr.New("GitLab access token is required")
	ErrInvalidBaseURL     = goerr.New("invalid GitLab API base URL")
	ErrInvalidLogLevel    = goerr.New("invalid log level")
	ErrInvalidLogFormat   = goerr.New("invalid log format")
	ErrIncompleteSlackCfg = goerr.New("both Slack bot token and channel are required")
)

// Context keys for error values
const (
	ConfigPathKey = "config_path"
	BaseURLKey    = "base_url"
	LogLevelKey   = "log_level"
	LogFormatKey  = "log_format"
)
