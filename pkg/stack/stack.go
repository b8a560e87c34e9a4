// Package stack holds the ordered set of active command pools.
//
// The bottom entry is the first pool ever started and the top entry is the
// focused one. Only the top changes; entries below it are never reordered.
// Lifecycle callbacks are the engine's job, not the stack's.
package stack

import (
	"github.com/aretw0/clif/pkg/domain"
)

// Stack is a LIFO of pools. The zero value is an empty stack.
type Stack struct {
	pools []domain.Pool
}

// New creates an empty stack.
func New() *Stack {
	return &Stack{pools: make([]domain.Pool, 0, 4)}
}

// Push places p on top.
func (s *Stack) Push(p domain.Pool) {
	s.pools = append(s.pools, p)
}

// Pop removes and returns the top pool.
func (s *Stack) Pop() (domain.Pool, error) {
	n := len(s.pools)
	if n == 0 {
		return nil, domain.ErrEmptyStack
	}
	top := s.pools[n-1]
	s.pools[n-1] = nil
	s.pools = s.pools[:n-1]
	return top, nil
}

// Peek returns the top pool without removing it.
func (s *Stack) Peek() (domain.Pool, error) {
	n := len(s.pools)
	if n == 0 {
		return nil, domain.ErrEmptyStack
	}
	return s.pools[n-1], nil
}

// Size returns the number of pools.
func (s *Stack) Size() int {
	return len(s.pools)
}

// Empty reports whether the stack holds no pools.
func (s *Stack) Empty() bool {
	return len(s.pools) == 0
}

// Snapshot returns the pools from bottom to top.
func (s *Stack) Snapshot() []domain.Pool {
	out := make([]domain.Pool, len(s.pools))
	copy(out, s.pools)
	return out
}
