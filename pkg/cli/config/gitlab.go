package config

import (
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/snooze/pkg/domain/interfaces"
	"github.com/secmon-lab/snooze/pkg/domain/types"
	"github.com/secmon-lab/snooze/pkg/service/gitlab"
	"github.com/urfave/cli/v3"
)

const (
	// DefaultConfigFile is read from the working directory when neither a
	// config path nor a token is given
	DefaultConfigFile = "conf.json"

	// DefaultTimeout bounds a single GitLab API request
	DefaultTimeout = 30 * time.Second
)

// GitLab holds configuration for the GitLab tracker. Flag and environment
// values take precedence over the configuration file.
type GitLab struct {
	configPath  string
	baseURL     string
	token       string
	exemptLabel string
	retryMax    int
	timeout     time.Duration
}

// Flags returns CLI flags for GitLab configuration
func (g *GitLab) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Configuration file (.toml, .yaml, .yml or .json) with base_url, token and exempt_label",
			Sources:     cli.EnvVars("SNOOZE_CONFIG"),
			Destination: &g.configPath,
		},
		&cli.StringFlag{
			Name:        "gitlab-url",
			Usage:       "GitLab API base URL (default: " + gitlab.DefaultBaseURL + ")",
			Category:    "GitLab",
			Sources:     cli.EnvVars("SNOOZE_GITLAB_URL"),
			Destination: &g.baseURL,
		},
		&cli.StringFlag{
			Name:        "gitlab-token",
			Usage:       "GitLab personal access token (api scope)",
			Category:    "GitLab",
			Sources:     cli.EnvVars("SNOOZE_GITLAB_TOKEN"),
			Destination: &g.token,
		},
		&cli.IntFlag{
			Name:        "gitlab-retry-max",
			Usage:       "Retries for rate limited or failed GitLab requests (0 disables)",
			Category:    "GitLab",
			Sources:     cli.EnvVars("SNOOZE_GITLAB_RETRY_MAX"),
			Destination: &g.retryMax,
		},
		&cli.DurationFlag{
			Name:        "gitlab-timeout",
			Usage:       "Timeout of a single GitLab API request",
			Category:    "GitLab",
			Value:       DefaultTimeout,
			Sources:     cli.EnvVars("SNOOZE_GITLAB_TIMEOUT"),
			Destination: &g.timeout,
		},
		&cli.StringFlag{
			Name:        "exempt-label",
			Usage:       "Issues with this label are never postponed (default: " + types.DefaultExemptLabel + ")",
			Sources:     cli.EnvVars("SNOOZE_EXEMPT_LABEL"),
			Destination: &g.exemptLabel,
		},
	}
}

// LogAttrs returns log attributes for the GitLab configuration (token hidden)
func (g *GitLab) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("config", g.configPath),
		slog.String("base_url", g.BaseURL()),
		slog.String("exempt_label", g.ExemptLabel().String()),
		slog.Int("retry_max", g.retryMax),
		slog.Duration("timeout", g.timeout),
		slog.Bool("token_set", g.token != ""),
	}
}

// BaseURL returns the configured API URL or the GitLab.com default
func (g *GitLab) BaseURL() string {
	if g.baseURL == "" {
		return gitlab.DefaultBaseURL
	}
	return g.baseURL
}

// ExemptLabel returns the configured exemption label or the default
func (g *GitLab) ExemptLabel() types.Label {
	if g.exemptLabel == "" {
		return types.DefaultExemptLabel
	}
	return types.Label(g.exemptLabel)
}

// SetConfigPath sets the configuration file unless --config already did
func (g *GitLab) SetConfigPath(path string) {
	if g.configPath == "" {
		g.configPath = path
	}
}

// Load merges the configuration file, if any, under the flag values. Without
// a config path or token, conf.json in the working directory is used when present.
func (g *GitLab) Load() error {
	if g.configPath == "" && g.token == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			g.configPath = DefaultConfigFile
		}
	}
	if g.configPath == "" {
		return nil
	}

	file, err := LoadFile(g.configPath)
	if err != nil {
		return err
	}

	if g.baseURL == "" {
		g.baseURL = file.BaseURL
	}
	if g.token == "" {
		g.token = file.Token
	}
	if g.exemptLabel == "" {
		g.exemptLabel = file.ExemptLabel
	}
	return nil
}

// Validate checks that a usable token and endpoint are configured
func (g *GitLab) Validate() error {
	if g.token == "" {
		return goerr.Wrap(ErrMissingToken, "set --gitlab-token, SNOOZE_GITLAB_TOKEN or token in the config file")
	}

	u, err := url.Parse(g.BaseURL())
	if err != nil {
		return goerr.Wrap(ErrInvalidBaseURL, "failed to parse base URL", goerr.V(BaseURLKey, g.BaseURL()), goerr.V("cause", err.Error()))
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return goerr.Wrap(ErrInvalidBaseURL, "base URL must be an absolute http(s) URL", goerr.V(BaseURLKey, g.BaseURL()))
	}

	if err := g.ExemptLabel().Validate(); err != nil {
		return goerr.Wrap(err, "invalid exemption label")
	}
	return nil
}

// Configure loads, validates and creates the GitLab tracker
func (g *GitLab) Configure() (interfaces.Tracker, error) {
	if err := g.Load(); err != nil {
		return nil, goerr.Wrap(err, "failed to load configuration file")
	}
	if err := g.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid GitLab configuration")
	}

	timeout := g.timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	svc, err := gitlab.New(g.token,
		gitlab.WithBaseURL(g.BaseURL()),
		gitlab.WithRetryMax(g.retryMax),
		gitlab.WithHTTPClient(&http.Client{Timeout: timeout}),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitLab service")
	}
	return svc, nil
}
