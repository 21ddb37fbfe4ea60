package safe

import (
	"context"
	"io"
	"log/slog"

	"github.com/secmon-lab/snooze/pkg/utils/logging"
)

// Close closes closer and logs a failure instead of returning it. A nil closer is ignored.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.From(ctx).Error("Failed to close", slog.Any("error", err))
	}
}
