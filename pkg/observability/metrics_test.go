package observability

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/clif/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Dispatch(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)
	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnDispatch(ctx, &domain.DispatchEvent{Command: "greet", Outcome: domain.OutcomeOK, Duration: time.Millisecond})
	hooks.OnDispatch(ctx, &domain.DispatchEvent{Command: "greet", Outcome: domain.OutcomeOK, Duration: time.Millisecond})
	hooks.OnDispatch(ctx, &domain.DispatchEvent{Command: "greet", Outcome: domain.OutcomeFailed})
	hooks.OnDispatch(ctx, &domain.DispatchEvent{Command: "frobnicate", Outcome: domain.OutcomeNotFound})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.dispatched.WithLabelValues("greet", domain.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dispatched.WithLabelValues("greet", domain.OutcomeFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dispatched.WithLabelValues("unknown", domain.OutcomeNotFound)))
	assert.Equal(t, 3, testutil.CollectAndCount(m.dispatched))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration), "only executed commands are timed")
}

func TestMetrics_PoolTransitions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)
	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnPoolStart(ctx, &domain.PoolEvent{EventBase: domain.EventBase{Type: domain.EventPoolStart}, Pool: "Root", Depth: 1})
	hooks.OnPoolStart(ctx, &domain.PoolEvent{EventBase: domain.EventBase{Type: domain.EventPoolStart}, Pool: "Calc", Depth: 2})
	assert.Equal(t, 2.0, testutil.ToFloat64(m.depth))

	hooks.OnPoolExit(ctx, &domain.PoolEvent{EventBase: domain.EventBase{Type: domain.EventPoolExit}, Pool: "Calc", Depth: 1})
	hooks.OnPoolResume(ctx, &domain.PoolEvent{EventBase: domain.EventBase{Type: domain.EventPoolResume}, Pool: "Root", Depth: 1})
	assert.Equal(t, 1.0, testutil.ToFloat64(m.depth))

	expected := `
# HELP clif_pool_transitions_total Pool lifecycle transitions by pool and event
# TYPE clif_pool_transitions_total counter
clif_pool_transitions_total{event="pool_exit",pool="Calc"} 1
clif_pool_transitions_total{event="pool_resume",pool="Root"} 1
clif_pool_transitions_total{event="pool_start",pool="Calc"} 1
clif_pool_transitions_total{event="pool_start",pool="Root"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "clif_pool_transitions_total"))
}

func TestMetrics_Shadow(t *testing.T) {
	m, err := NewMetrics(nil)
	require.NoError(t, err)

	m.Hooks().OnShadow(context.Background(), &domain.ShadowEvent{Pool: "Root", Command: "help"})
	assert.Equal(t, 1.0, testutil.ToFloat64(m.shadowed.WithLabelValues("Root", "help")))
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.Error(t, err)
}
