package logger

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// resetLogger resets the global logger state for testing
func resetLogger() {
	baseLogger = nil
	initBaseLoggerOnce = sync.Once{}
}

// observe swaps the base logger for an in-memory one and returns its recorded entries.
func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	resetLogger()

	core, logs := observer.New(zapcore.DebugLevel)
	baseLogger = zap.New(core).Sugar()
	t.Cleanup(resetLogger)

	return logs
}

func TestInit(t *testing.T) {
	t.Run("successful initialization with valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			resetLogger()
			err := Init(level)
			require.NoError(t, err)
			assert.NotNil(t, baseLogger)
		}
	})

	t.Run("error with invalid level", func(t *testing.T) {
		resetLogger()
		err := Init("invalid")
		assert.Error(t, err)
		assert.Nil(t, baseLogger)
	})

	t.Run("init only once", func(t *testing.T) {
		resetLogger()

		require.NoError(t, Init("debug"))
		firstLogger := baseLogger

		require.NoError(t, Init("error"))
		assert.Equal(t, firstLogger, baseLogger, "Init() should only initialize once")
	})
}

func TestDerive(t *testing.T) {
	t.Run("derived fields are attached to every entry", func(t *testing.T) {
		logs := observe(t)

		ctx := Derive(t.Context(), "action.name", "GET_BALANCE", "invocation.id", "abc")
		Info(ctx, "balance computed", "balance", "1.00000")

		entries := logs.All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "GET_BALANCE", fields["action.name"])
		assert.Equal(t, "abc", fields["invocation.id"])
		assert.Equal(t, "1.00000", fields["balance"])
	})

	t.Run("derivations stack on top of each other", func(t *testing.T) {
		logs := observe(t)

		ctx := Derive(t.Context(), "agent.id", "modescope")
		ctx = Derive(ctx, "action.name", "GET_LATEST_BLOCK")
		Warn(ctx, "no blocks")

		fields := logs.All()[0].ContextMap()
		assert.Equal(t, "modescope", fields["agent.id"])
		assert.Equal(t, "GET_LATEST_BLOCK", fields["action.name"])
	})

	t.Run("stores a sugared logger in the context", func(t *testing.T) {
		observe(t)

		ctx := Derive(t.Context())
		l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
		assert.True(t, ok)
		assert.NotNil(t, l)
	})
}

func TestDeriveFromCtx(t *testing.T) {
	t.Run("adds trace identifiers when a span context is present", func(t *testing.T) {
		logs := observe(t)

		traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
		spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
		ctx := trace.ContextWithSpanContext(t.Context(), trace.NewSpanContext(trace.SpanContextConfig{
			TraceID: traceID,
			SpanID:  spanID,
		}))

		Error(ctx, "explorer request failed")

		fields := logs.All()[0].ContextMap()
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", fields["trace_id"])
		assert.Equal(t, "00f067aa0ba902b7", fields["span_id"])
	})

	t.Run("skips trace identifiers for an invalid span context", func(t *testing.T) {
		logs := observe(t)

		ctx := trace.ContextWithSpanContext(t.Context(), trace.SpanContext{})
		Debug(ctx, "no span")

		fields := logs.All()[0].ContextMap()
		assert.NotContains(t, fields, "trace_id")
		assert.NotContains(t, fields, "span_id")
	})

	t.Run("falls back to the base logger", func(t *testing.T) {
		observe(t)

		l := deriveFromCtx(t.Context())
		assert.Same(t, baseLogger, l)
	})
}

func TestLog(t *testing.T) {
	t.Run("respects the requested level", func(t *testing.T) {
		logs := observe(t)

		levels := []zapcore.Level{
			zapcore.DebugLevel,
			zapcore.InfoLevel,
			zapcore.WarnLevel,
			zapcore.ErrorLevel,
		}
		for _, level := range levels {
			log(t.Context(), level, "test message", "key", "value")
		}

		entries := logs.All()
		require.Len(t, entries, len(levels))
		for i, level := range levels {
			assert.Equal(t, level, entries[i].Level)
		}
	})

	t.Run("tolerates odd key/value pairs", func(t *testing.T) {
		observe(t)

		assert.NotPanics(t, func() {
			Info(t.Context(), "test message", "key1", "value1", "key2")
		})
	})
}

func TestSync(t *testing.T) {
	t.Run("sync without init panics", func(t *testing.T) {
		resetLogger()

		assert.Panics(t, func() {
			Sync()
		}, "Sync() should panic when logger is not initialized")
	})

	t.Run("sync after init", func(t *testing.T) {
		resetLogger()
		require.NoError(t, Init("info"))

		assert.NotPanics(t, func() {
			Sync()
		})
	})
}

func TestPanic(t *testing.T) {
	observe(t)

	assert.Panics(t, func() {
		Panic(t.Context(), "panic message", "key", "value")
	}, "Panic() should panic")
}

func TestFatal(t *testing.T) {
	if os.Getenv("TEST_FATAL_SUBPROCESS") == "1" {
		_ = Init("debug")
		ctx := Derive(context.Background(), "action.name", "GET_BALANCE")
		Fatal(ctx, "fatal error for test")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal")
	cmd.Env = append(os.Environ(), "TEST_FATAL_SUBPROCESS=1")

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	exitErr, ok := err.(*exec.ExitError)
	require.True(t, ok, "the subprocess should exit with a non-zero status")
	assert.Equal(t, 1, exitErr.ExitCode(), "logger.Fatal should terminate with exit code 1")
	assert.Contains(t, stdout.String(), `"level":"fatal"`)
	assert.Contains(t, stdout.String(), `"action.name":"GET_BALANCE"`)
}
