package engagement

import (
	"context"
	"sync"

	"video-gateway/domain/model"
	"video-gateway/infrastructure/logger"
)

// Status tags the lifecycle of one engagement fact on the client.
type Status int

const (
	// StatusUnknown means no authoritative read has resolved the fact yet.
	StatusUnknown Status = iota
	// StatusNotApplicable is the terminal state for unauthenticated sessions.
	StatusNotApplicable
	// StatusResolving means an authoritative read is in flight.
	StatusResolving
	// StatusSettled means the value reflects the store's last known answer.
	StatusSettled
	// StatusMutating means an optimistic flip is awaiting its mutation result.
	StatusMutating
)

type factKey struct {
	targetID string
	kind     model.EngagementKind
}

// factState carries the tagged state for one (target, kind) tuple. previous
// holds the pre-flip value while Mutating so rollback is a plain assignment.
type factState struct {
	status   Status
	value    bool
	previous bool
}

// Synchronizer holds per-session engagement state keyed by (targetID, kind)
// and reconciles optimistic UI flips against the authoritative store. One
// instance per session; nothing here is global.
type Synchronizer struct {
	store         Store
	invalidate    Invalidator
	authenticated bool

	mu     sync.Mutex
	states map[factKey]*factState
}

// NewSynchronizer builds a session-scoped state container. invalidate may be
// nil when the consumer keeps no derived views.
func NewSynchronizer(store Store, authenticated bool, invalidate Invalidator) *Synchronizer {
	return &Synchronizer{
		store:         store,
		invalidate:    invalidate,
		authenticated: authenticated,
		states:        make(map[factKey]*factState),
	}
}

// state must be called with mu held.
func (s *Synchronizer) state(targetID string, kind model.EngagementKind) *factState {
	key := factKey{targetID: targetID, kind: kind}
	st, ok := s.states[key]
	if !ok {
		st = &factState{status: StatusUnknown}
		s.states[key] = st
	}
	return st
}

// Value reports the currently displayed value and its status. While Mutating
// the value is the optimistic one.
func (s *Synchronizer) Value(targetID string, kind model.EngagementKind) (bool, Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(targetID, kind)
	return st.value, st.status
}

// Resolve performs the authoritative membership read for one fact.
// Unauthenticated sessions settle locally as not applicable without touching
// the network.
func (s *Synchronizer) Resolve(ctx context.Context, targetID string, kind model.EngagementKind) (bool, error) {
	s.mu.Lock()
	st := s.state(targetID, kind)
	if !s.authenticated {
		st.status = StatusNotApplicable
		st.value = false
		s.mu.Unlock()
		return false, nil
	}
	st.status = StatusResolving
	s.mu.Unlock()

	value, err := s.store.Exists(ctx, targetID, kind)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		st.status = StatusUnknown
		return false, err
	}
	st.status = StatusSettled
	st.value = value
	return value, nil
}

// Toggle flips the fact optimistically and issues the matching mutation.
// While that mutation is in flight further toggles on the same fact are
// no-ops, so the fastest double-click still issues exactly one store call.
// On failure the displayed value reverts to its pre-flip value and the
// error reaches the caller.
func (s *Synchronizer) Toggle(ctx context.Context, targetID string, kind model.EngagementKind) (bool, error) {
	s.mu.Lock()
	st := s.state(targetID, kind)
	if !s.authenticated || st.status == StatusNotApplicable {
		s.mu.Unlock()
		return false, model.ErrNotAuthenticated
	}
	if st.status == StatusMutating {
		value := st.value
		s.mu.Unlock()
		logger.GetLogger().
			WithField("targetId", targetID).
			WithField("kind", string(kind)).
			Info("Mutation already in flight, ignoring toggle")
		return value, nil
	}

	st.previous = st.value
	st.value = !st.value
	st.status = StatusMutating
	adding := st.value
	s.mu.Unlock()

	var err error
	if adding {
		err = s.store.Add(ctx, targetID, kind)
		// The record already existing is the state we were flipping to.
		if err == model.ErrDuplicate {
			err = nil
		}
	} else {
		err = s.store.Remove(ctx, targetID, kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		st.value = st.previous
		st.status = StatusSettled
		return st.value, err
	}
	st.status = StatusSettled
	if s.invalidate != nil {
		s.invalidate(kind)
	}
	return st.value, nil
}
