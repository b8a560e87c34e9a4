package observability

import (
	"context"

	"github.com/aretw0/clif/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors fed by engine events.
type Metrics struct {
	dispatched  *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	transitions *prometheus.CounterVec
	shadowed    *prometheus.CounterVec
	depth       prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		dispatched: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clif_commands_dispatched_total",
				Help: "Total number of dispatched input lines by command and outcome",
			},
			[]string{"command", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "clif_command_duration_seconds",
				Help:    "Duration of command handler executions",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"command"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clif_pool_transitions_total",
				Help: "Pool lifecycle transitions by pool and event",
			},
			[]string{"pool", "event"},
		),
		shadowed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clif_builtins_shadowed_total",
				Help: "Built-in commands made unreachable by a pool command",
			},
			[]string{"pool", "command"},
		),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "clif_stack_depth",
			Help: "Number of pools currently on the stack",
		}),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{m.dispatched, m.duration, m.transitions, m.shadowed, m.depth} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	pool := func(_ context.Context, e *domain.PoolEvent) {
		m.transitions.WithLabelValues(e.Pool, string(e.Type)).Inc()
		m.depth.Set(float64(e.Depth))
	}
	return domain.LifecycleHooks{
		OnPoolStart:  pool,
		OnPoolResume: pool,
		OnPoolExit:   pool,
		OnDispatch: func(_ context.Context, e *domain.DispatchEvent) {
			command := e.Command
			if e.Outcome == domain.OutcomeNotFound {
				// Unknown input would otherwise grow label cardinality without bound.
				command = "unknown"
			}
			m.dispatched.WithLabelValues(command, e.Outcome).Inc()
			if e.Outcome == domain.OutcomeOK || e.Outcome == domain.OutcomeFailed {
				m.duration.WithLabelValues(command).Observe(e.Duration.Seconds())
			}
		},
		OnShadow: func(_ context.Context, e *domain.ShadowEvent) {
			m.shadowed.WithLabelValues(e.Pool, e.Command).Inc()
		},
	}
}
