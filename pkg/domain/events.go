package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventPoolStart  EventType = "pool_start"
	EventPoolResume EventType = "pool_resume"
	EventPoolExit   EventType = "pool_exit"
	EventDispatch   EventType = "dispatch"
	EventShadow     EventType = "shadow"
)

// Dispatch outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeFailed   = "failed"
	OutcomeFault    = "fault"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	EngineID  string    `json:"engine_id"`
}

// PoolEvent represents a lifecycle transition of a pool.
type PoolEvent struct {
	EventBase
	Pool  string `json:"pool"`
	Depth int    `json:"depth"`
}

// DispatchEvent represents one resolved (or unresolved) input line.
type DispatchEvent struct {
	EventBase
	Pool     string        `json:"pool"`
	Command  string        `json:"command"`
	Args     []string      `json:"args,omitempty"`
	Outcome  string        `json:"outcome"`
	Duration time.Duration `json:"duration"`
	Err      error         `json:"-"`
}

// ShadowEvent reports a built-in made unreachable by a pool command of the
// same name and arity.
type ShadowEvent struct {
	EventBase
	Pool    string `json:"pool"`
	Command string `json:"command"`
	Arity   Arity  `json:"arity"`
}

// LifecycleHooks defines callbacks for engine observability.
// These are distinct from the Pool hooks: they observe, they never steer.
type LifecycleHooks struct {
	OnPoolStart  func(context.Context, *PoolEvent)
	OnPoolResume func(context.Context, *PoolEvent)
	OnPoolExit   func(context.Context, *PoolEvent)
	OnDispatch   func(context.Context, *DispatchEvent)
	OnShadow     func(context.Context, *ShadowEvent)
}

// ChainHooks combines several hook sets; callbacks run in argument order.
func ChainHooks(sets ...LifecycleHooks) LifecycleHooks {
	var out LifecycleHooks
	for _, s := range sets {
		s := s
		out.OnPoolStart = chain(out.OnPoolStart, s.OnPoolStart)
		out.OnPoolResume = chain(out.OnPoolResume, s.OnPoolResume)
		out.OnPoolExit = chain(out.OnPoolExit, s.OnPoolExit)
		out.OnDispatch = chain(out.OnDispatch, s.OnDispatch)
		out.OnShadow = chain(out.OnShadow, s.OnShadow)
	}
	return out
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
