package logging_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/atelier/pkg/utils/logging"
)

func TestWith(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	newCtx := logging.With(ctx, logger)
	retrieved := logging.From(newCtx)
	gt.V(t, retrieved).Equal(logger)
}

func TestFrom(t *testing.T) {
	t.Run("get logger from context with logger", func(t *testing.T) {
		ctx := logging.With(context.Background(), slog.Default())
		gt.V(t, logging.From(ctx)).Equal(slog.Default())
	})

	t.Run("get logger from context without logger", func(t *testing.T) {
		ctx := context.Background()
		retrieved := logging.From(ctx)
		gt.V(t, retrieved.Handler()).Equal(logging.Default().Handler())
	})
}

func TestCtxRequestID(t *testing.T) {
	t.Run("get new request ID from context", func(t *testing.T) {
		reqID, newCtx := logging.CtxRequestID(context.Background())
		gt.V(t, reqID).NotEqual("")

		retrievedID, _ := logging.CtxRequestID(newCtx)
		gt.V(t, retrievedID).Equal(reqID)
	})

	t.Run("get existing request ID from context", func(t *testing.T) {
		reqID1, ctx1 := logging.CtxRequestID(context.Background())
		reqID2, _ := logging.CtxRequestID(ctx1)
		gt.V(t, reqID1).Equal(reqID2)
	})
}

func TestCtxTime(t *testing.T) {
	t.Run("get current time from context", func(t *testing.T) {
		tm := logging.CtxTime(context.Background())
		gt.V(t, tm.IsZero()).Equal(false)
	})

	t.Run("set and get custom time from context", func(t *testing.T) {
		called := false
		ctx := logging.CtxWithTime(context.Background(), func() time.Time {
			called = true
			return time.UnixMilli(1712345678901)
		})

		tm := logging.CtxTime(ctx)
		gt.True(t, called)
		gt.V(t, tm.UnixMilli()).Equal(int64(1712345678901))
	})
}
