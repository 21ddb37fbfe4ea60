package gitlab

import (
	"net/http"
)

const (
	// DefaultBaseURL is the GitLab.com REST API endpoint
	DefaultBaseURL = "https://gitlab.com/api/v4"

	// MaxPageSize is the largest page GitLab returns for a single list call
	MaxPageSize = 100

	issueStateOpened = "opened"
	dueDateToday     = "today"
	scopeAll         = "all"
)

type options struct {
	baseURL    string
	retryMax   int
	httpClient *http.Client
}

// Option is a functional option for client configuration
type Option func(*options)

// WithBaseURL sets the API endpoint, e.g. https://gitlab.example.com/api/v4
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithRetryMax enables transport level retries for rate limited and 5xx responses.
// Zero (the default) disables retries.
func WithRetryMax(n int) Option {
	return func(o *options) {
		o.retryMax = n
	}
}

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}
