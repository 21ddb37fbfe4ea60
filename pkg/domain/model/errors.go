package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/snooze/pkg/domain/types"
)

// Tracker errors. Gateway implementations wrap their failures so that
// errors.Is matches one of these.
var (
	ErrAuth      = goerr.New("tracker rejected the credentials")
	ErrTransport = goerr.New("tracker request failed")
	ErrDateParse = types.ErrInvalidDueDate
)

// Context keys for error values
const (
	UserIDKey     = "user_id"
	ProjectIDKey  = "project_id"
	IssueIIDKey   = "iid"
	IssueTitleKey = "title"
	DueDateKey    = "due_date"
	StatusKey     = "status"
)
