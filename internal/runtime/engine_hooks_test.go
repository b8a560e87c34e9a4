package runtime_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/aretw0/clif/internal/runtime"
	"github.com/aretw0/clif/internal/testutils"
	"github.com/aretw0/clif/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_LifecycleHooks(t *testing.T) {
	var events []string
	var dispatches []*domain.DispatchEvent

	hooks := domain.LifecycleHooks{
		OnPoolStart: func(ctx context.Context, e *domain.PoolEvent) {
			events = append(events, "start:"+e.Pool)
		},
		OnPoolResume: func(ctx context.Context, e *domain.PoolEvent) {
			events = append(events, "resume:"+e.Pool)
		},
		OnPoolExit: func(ctx context.Context, e *domain.PoolEvent) {
			events = append(events, "exit:"+e.Pool)
		},
		OnDispatch: func(ctx context.Context, e *domain.DispatchEvent) {
			dispatches = append(dispatches, e)
		},
	}

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	engine := runtime.NewEngine(
		runtime.WithLifecycleHooks(hooks),
		runtime.WithEngineID("engine-1"),
		runtime.WithClock(func() time.Time { return fixed }),
	)

	rec := &testutils.Recorder{}
	sub := rec.Pool("Sub")
	testutils.MustPush(t, engine, rec.Pool("Root", testutils.Push("enter", sub)))

	require.NoError(t, engine.Dispatch(context.Background(), "enter"))
	require.NoError(t, engine.Dispatch(context.Background(), "exit"))
	assert.Error(t, engine.Dispatch(context.Background(), "bogus arg"))

	assert.Equal(t, []string{"start:Root", "start:Sub", "exit:Sub", "resume:Root"}, events)

	require.Len(t, dispatches, 3)
	assert.Equal(t, "enter", dispatches[0].Command)
	assert.Equal(t, "Root", dispatches[0].Pool)
	assert.Equal(t, domain.OutcomeOK, dispatches[0].Outcome)
	assert.Equal(t, "engine-1", dispatches[0].EngineID)
	assert.Equal(t, fixed, dispatches[0].Timestamp)
	assert.Equal(t, domain.EventDispatch, dispatches[0].Type)

	assert.Equal(t, "Sub", dispatches[1].Pool, "pool recorded as it was before the command ran")

	assert.Equal(t, domain.OutcomeNotFound, dispatches[2].Outcome)
	assert.Equal(t, []string{"arg"}, dispatches[2].Args)
	assert.ErrorIs(t, dispatches[2].Err, domain.ErrNoSuchCommand)
}

func TestEngine_ShadowWarning(t *testing.T) {
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelWarn}))

	var shadows []*domain.ShadowEvent
	engine := runtime.NewEngine(
		runtime.WithLogger(logger),
		runtime.WithLifecycleHooks(domain.LifecycleHooks{
			OnShadow: func(ctx context.Context, e *domain.ShadowEvent) {
				shadows = append(shadows, e)
			},
		}),
	)

	pool := (&testutils.Recorder{}).Pool("Root",
		testutils.Print("help", "my help"),
		domain.NewArgsCommand("exit", noop),
	)
	testutils.MustPush(t, engine, pool)

	require.Len(t, shadows, 1, "only the same name and arity shadows")
	assert.Equal(t, "help", shadows[0].Command)
	assert.Equal(t, domain.ArityNone, shadows[0].Arity)
	assert.Equal(t, "Root", shadows[0].Pool)

	assert.Contains(t, logs.String(), "pool command shadows built-in")
	assert.Contains(t, logs.String(), "command=help")
}
