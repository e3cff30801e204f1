// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package actor

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ChainSafe/vara-bridge/ledger"
	"github.com/rs/zerolog/log"
)

type Store interface {
	Commit(state ledger.State, evt ledger.Event) error
}

type Metrics interface {
	TrackAction(action string, errKind string)
	TrackLedger(snapshot ledger.Snapshot, nonce uint64)
}

const (
	requestQueued int32 = iota
	requestTaken
	requestAbandoned
)

// request moves from queued to either taken by the actor or abandoned by
// its caller, never both.
type request struct {
	state *atomic.Int32
	fn    func(l *ledger.Ledger)
}

func (r request) take() bool {
	return r.state.CompareAndSwap(requestQueued, requestTaken)
}

func (r request) abandon() bool {
	return r.state.CompareAndSwap(requestQueued, requestAbandoned)
}

// Actor owns a ledger and applies requests to it one at a time from its
// mailbox. Every successful mutation is committed to the store before the
// reply is sent.
type Actor struct {
	mailbox chan request
	store   Store
	metrics Metrics

	ledger    *ledger.Ledger
	committed ledger.State

	subsLock    sync.Mutex
	subscribers map[int]chan ledger.Event
	nextSub     int
}

func NewActor(l *ledger.Ledger, store Store, metrics Metrics, mailboxSize int) *Actor {
	return &Actor{
		mailbox:     make(chan request, mailboxSize),
		store:       store,
		metrics:     metrics,
		ledger:      l,
		committed:   l.State(),
		subscribers: make(map[int]chan ledger.Event),
	}
}

// MailboxDepth returns the number of requests waiting to be processed.
func (a *Actor) MailboxDepth() int {
	return len(a.mailbox)
}

// Run processes the mailbox until ctx is cancelled.
func (a *Actor) Run(ctx context.Context) error {
	log.Info().Uint64("nonce", a.ledger.Nonce()).Msg("Ledger actor started")
	a.metrics.TrackLedger(a.ledger.Snapshot(), a.ledger.Nonce())

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Ledger actor stopped")
			return nil
		case req := <-a.mailbox:
			if !req.take() {
				continue
			}
			req.fn(a.ledger)
		}
	}
}

// Handle submits action on behalf of caller and waits for its outcome.
// A context error means the action was not applied; an action the actor
// already started is always reported with its real result.
func (a *Actor) Handle(ctx context.Context, caller ledger.AccountID, action ledger.Action) (ledger.Event, error) {
	type result struct {
		evt ledger.Event
		err error
	}
	res, err := submit(ctx, a, func(l *ledger.Ledger) result {
		evt, err := a.handle(caller, action)
		return result{evt: evt, err: err}
	})
	if err != nil {
		return nil, err
	}
	return res.evt, res.err
}

func (a *Actor) handle(caller ledger.AccountID, action ledger.Action) (ledger.Event, error) {
	evt, err := a.ledger.Handle(caller, action)
	if err == nil && action.Mutates() {
		err = a.commit(evt)
		if err != nil {
			evt = nil
		}
	}

	a.metrics.TrackAction(action.Name(), ledger.ErrorKind(err))
	if err != nil {
		log.Debug().Err(err).Str("action", action.Name()).Str("caller", caller.Hex()).Msg("Action rejected")
		return nil, err
	}
	if action.Mutates() {
		log.Debug().Str("action", action.Name()).Str("caller", caller.Hex()).Uint64("nonce", a.ledger.Nonce()).Msg("Action applied")
		a.metrics.TrackLedger(a.ledger.Snapshot(), a.ledger.Nonce())
		a.publish(evt)
	}
	return evt, nil
}

// commit persists the ledger after a mutation. On failure the ledger is
// rolled back to the last committed state.
func (a *Actor) commit(evt ledger.Event) error {
	state := a.ledger.State()
	err := a.store.Commit(state, evt)
	if err == nil {
		a.committed = state
		return nil
	}

	log.Error().Err(err).Uint64("nonce", state.Nonce).Msg("Failed persisting ledger state")
	restored, rerr := ledger.FromState(a.committed)
	if rerr != nil {
		// committed states always satisfy the invariant
		panic(fmt.Sprintf("restoring committed ledger state: %s", rerr))
	}
	a.ledger = restored
	return fmt.Errorf("persisting ledger state: %w", err)
}

// State returns the full ledger state.
func (a *Actor) State(ctx context.Context) (ledger.State, error) {
	return submit(ctx, a, func(l *ledger.Ledger) ledger.State {
		return l.State()
	})
}

// Snapshot returns the public bridge snapshot.
func (a *Actor) Snapshot(ctx context.Context) (ledger.Snapshot, error) {
	return submit(ctx, a, func(l *ledger.Ledger) ledger.Snapshot {
		return l.Snapshot()
	})
}

// PendingFor returns the queued transit entries sent by or addressed to
// account.
func (a *Actor) PendingFor(ctx context.Context, account ledger.AccountID) ([]ledger.TransitEntry, error) {
	return submit(ctx, a, func(l *ledger.Ledger) []ledger.TransitEntry {
		entries := make([]ledger.TransitEntry, 0)
		for e := range l.Transit().PendingFor(account) {
			entries = append(entries, e)
		}
		return entries
	})
}

// Transit returns the queued entry with the given id.
func (a *Actor) Transit(ctx context.Context, id ledger.TransitID) (ledger.TransitEntry, bool, error) {
	type result struct {
		entry ledger.TransitEntry
		ok    bool
	}
	res, err := submit(ctx, a, func(l *ledger.Ledger) result {
		e, ok := l.Transit().Get(id)
		return result{entry: e, ok: ok}
	})
	return res.entry, res.ok, err
}

// submit runs fn on the actor goroutine and waits for its result. A
// cancelled ctx only abandons requests the actor has not taken yet; once
// taken, the result is returned even if ctx is done by then, so an error
// always means fn did not run.
func submit[T any](ctx context.Context, a *Actor, fn func(l *ledger.Ledger) T) (T, error) {
	var zero T
	reply := make(chan T, 1)
	req := request{
		state: new(atomic.Int32),
		fn: func(l *ledger.Ledger) {
			reply <- fn(l)
		},
	}
	if ctx.Err() != nil {
		return zero, ctx.Err()
	}

	select {
	case a.mailbox <- req:
	case <-ctx.Done():
		return zero, ctx.Err()
	}

	select {
	case res := <-reply:
		return res, nil
	case <-ctx.Done():
		if req.abandon() {
			return zero, ctx.Err()
		}
		return <-reply, nil
	}
}
