package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/snooze/pkg/domain/types"
)

func TestOutcome_String(t *testing.T) {
	gt.Value(t, types.OutcomePostponed.String()).Equal("POSTPONED")
	gt.Value(t, types.OutcomeFailed.String()).Equal("FAILED")
}

func TestLabel_Validate(t *testing.T) {
	gt.NoError(t, types.Label(types.DefaultExemptLabel).Validate())
	gt.Error(t, types.Label("").Validate())
}
