package config

// NewGitLabForTest creates a GitLab config for testing purposes
func NewGitLabForTest(configPath, baseURL, token, exemptLabel string) *GitLab {
	return &GitLab{
		configPath:  configPath,
		baseURL:     baseURL,
		token:       token,
		exemptLabel: exemptLabel,
	}
}

// NewSlackForTest creates a Slack config for testing purposes
func NewSlackForTest(botToken, channelID string) *Slack {
	return &Slack{
		botToken:  botToken,
		channelID: channelID,
	}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}
