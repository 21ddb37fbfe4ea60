package safe_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/snooze/pkg/utils/logging"
	"github.com/secmon-lab/snooze/pkg/utils/safe"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestClose(t *testing.T) {
	t.Run("nil closer is ignored", func(t *testing.T) {
		safe.Close(context.Background(), nil)
	})

	t.Run("closes and logs failure", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := logging.With(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

		called := 0
		safe.Close(ctx, closerFunc(func() error {
			called++
			return errors.New("disk gone")
		}))

		gt.Number(t, called).Equal(1)
		gt.String(t, buf.String()).Contains("Failed to close")
		gt.String(t, buf.String()).Contains("disk gone")
	})
}
