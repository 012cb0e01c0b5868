package store

import (
	"fmt"
	"time"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/asynkron/protoactor-go/eventstream"
	"github.com/example/storefront/pkg/models"
	"go.uber.org/zap"
)

const dispatchTimeout = 5 * time.Second

// Store holds the authoritative application state behind a single-writer
// dispatch loop. One actor owns the aggregate; actions are applied one at a
// time, to completion, and each transition publishes the new state on the
// actor system's event stream for observers.
type Store struct {
	system *actor.ActorSystem
	pid    *actor.PID
	logger *zap.Logger
}

// StateChanged is published on the event stream after every applied action.
type StateChanged struct {
	State models.State
}

type dispatchRequest struct {
	action Action
}

type snapshotRequest struct{}

// stateActor is the single writer. It keeps the current aggregate and swaps
// it for the result of Transition on every dispatch.
type stateActor struct {
	state  models.State
	logger *zap.Logger
}

func (a *stateActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *dispatchRequest:
		a.state = Transition(a.state, msg.action)
		a.logger.Debug("action applied",
			zap.String("action", fmt.Sprintf("%T", msg.action)),
			zap.Int("cart_lines", len(a.state.Cart)),
			zap.Int("orders", len(a.state.Orders)))
		ctx.ActorSystem().EventStream.Publish(&StateChanged{State: a.state})
		ctx.Respond(a.state)

	case *snapshotRequest:
		ctx.Respond(a.state)

	case *actor.Started:
		a.logger.Info("state actor started",
			zap.Int("products", len(a.state.Products)),
			zap.Int("users", len(a.state.Users)))

	case *actor.Stopped:
		a.logger.Info("state actor stopped")
	}
}

// New spawns a store seeded with the given initial state.
func New(initial models.State, logger *zap.Logger) *Store {
	system := actor.NewActorSystem()
	props := actor.PropsFromProducer(func() actor.Actor {
		return &stateActor{state: initial, logger: logger.Named("store")}
	})
	pid := system.Root.Spawn(props)

	return &Store{
		system: system,
		pid:    pid,
		logger: logger,
	}
}

// Dispatch applies the action and returns the post-transition state. Actions
// never fail; the error covers only store plumbing (a stopped or overloaded
// actor).
func (s *Store) Dispatch(action Action) (models.State, error) {
	future := s.system.Root.RequestFuture(s.pid, &dispatchRequest{action: action}, dispatchTimeout)
	result, err := future.Result()
	if err != nil {
		return models.State{}, fmt.Errorf("dispatch failed: %w", err)
	}
	return result.(models.State), nil
}

// Snapshot returns the current state without mutating it. Reads go through
// the same mailbox as writes, so a snapshot never observes a half-applied
// action.
func (s *Store) Snapshot() (models.State, error) {
	future := s.system.Root.RequestFuture(s.pid, &snapshotRequest{}, dispatchTimeout)
	result, err := future.Result()
	if err != nil {
		return models.State{}, fmt.Errorf("snapshot failed: %w", err)
	}
	return result.(models.State), nil
}

// Subscribe registers fn to run after every applied action with the state it
// produced. Use the returned subscription with Unsubscribe.
func (s *Store) Subscribe(fn func(models.State)) *eventstream.Subscription {
	return s.system.EventStream.Subscribe(func(evt interface{}) {
		if changed, ok := evt.(*StateChanged); ok {
			fn(changed.State)
		}
	})
}

// Unsubscribe removes a subscription obtained from Subscribe.
func (s *Store) Unsubscribe(sub *eventstream.Subscription) {
	s.system.EventStream.Unsubscribe(sub)
}

// Close stops the state actor and waits for it to drain.
func (s *Store) Close() {
	if err := s.system.Root.StopFuture(s.pid).Wait(); err != nil {
		s.logger.Warn("state actor stop returned error", zap.Error(err))
	}
}
