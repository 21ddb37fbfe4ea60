package usecase

import (
	"github.com/google/uuid"
	"github.com/secmon-lab/snooze/pkg/domain/interfaces"
	"github.com/secmon-lab/snooze/pkg/domain/types"
	"github.com/secmon-lab/snooze/pkg/service/slack"
)

type UseCases struct {
	tracker      interfaces.Tracker
	exemptLabel  types.Label
	slack        slack.Service
	slackChannel string
	newRunID     func() string

	Postpone *PostponeUseCase
}

type Option func(*UseCases)

// WithExemptLabel overrides the label that excludes an issue from postponement
func WithExemptLabel(label types.Label) Option {
	return func(uc *UseCases) {
		uc.exemptLabel = label
	}
}

// WithSlackService posts a run report to channelID after every run
func WithSlackService(svc slack.Service, channelID string) Option {
	return func(uc *UseCases) {
		uc.slack = svc
		uc.slackChannel = channelID
	}
}

// WithRunIDGenerator replaces the run ID generator
func WithRunIDGenerator(fn func() string) Option {
	return func(uc *UseCases) {
		uc.newRunID = fn
	}
}

func New(tracker interfaces.Tracker, opts ...Option) *UseCases {
	uc := &UseCases{
		tracker:     tracker,
		exemptLabel: types.DefaultExemptLabel,
		newRunID:    uuid.NewString,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Postpone = NewPostponeUseCase(tracker, uc.exemptLabel,
		withNotifier(uc.slack, uc.slackChannel),
		withRunID(uc.newRunID),
	)

	return uc
}
