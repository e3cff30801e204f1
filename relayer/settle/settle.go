// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package settle

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChainSafe/vara-bridge/ledger"
	"github.com/ChainSafe/vara-bridge/relayer/transfer"
	"github.com/ChainSafe/vara-bridge/store"
	"github.com/rs/zerolog/log"
)

type TransitStorer interface {
	StoreTransitStatus(id ledger.TransitID, status store.TransitStatus) error
	TransitStatus(id ledger.TransitID) (store.TransitStatus, error)
}

type LedgerHandler interface {
	Handle(ctx context.Context, caller ledger.AccountID, action ledger.Action) (ledger.Event, error)
}

// Settler applies remote transit outcomes to the ledger exactly once per
// transit id.
type Settler struct {
	ledger  LedgerHandler
	storer  TransitStorer
	relayer ledger.AccountID
}

// NewSettler creates a settler submitting confirmations as relayer, which
// has to be the ledger admin.
func NewSettler(l LedgerHandler, storer TransitStorer, relayer ledger.AccountID) *Settler {
	return &Settler{
		ledger:  l,
		storer:  storer,
		relayer: relayer,
	}
}

// Settle confirms or cancels the transit entry of outcome. Outcomes of
// already settled entries are skipped and return a nil event.
func (s *Settler) Settle(ctx context.Context, outcome transfer.TransitOutcome) (ledger.Event, error) {
	action, err := outcome.Action()
	if err != nil {
		return nil, err
	}

	status, err := s.storer.TransitStatus(outcome.ID)
	if err != nil {
		return nil, err
	}
	if status.Settled() {
		log.Debug().Uint64("transit", uint64(outcome.ID)).Msgf("Transit already %s", status)
		return nil, nil
	}

	evt, err := s.ledger.Handle(ctx, s.relayer, action)
	if errors.Is(err, ledger.ErrNotFound) && status == store.PendingTransit {
		// settled in the ledger but the status write was lost
		log.Warn().Uint64("transit", uint64(outcome.ID)).Msg("Pending transit missing from queue")
		return nil, s.storer.StoreTransitStatus(outcome.ID, finalStatus(outcome))
	}
	if err != nil {
		return nil, fmt.Errorf("settling %s: %w", outcome, err)
	}

	err = s.storer.StoreTransitStatus(outcome.ID, finalStatus(outcome))
	if err != nil {
		log.Err(err).Uint64("transit", uint64(outcome.ID)).Msg("Failed storing transit status")
	}
	log.Info().Uint64("transit", uint64(outcome.ID)).Msgf("Settled %s", outcome)
	return evt, nil
}

// SettleAll settles every outcome that is not settled yet and returns the
// events of the settlements that were applied.
func (s *Settler) SettleAll(ctx context.Context, outcomes []transfer.TransitOutcome) ([]ledger.Event, error) {
	events := make([]ledger.Event, 0)
	for _, outcome := range FilterOutcomes(s.storer, outcomes) {
		evt, err := s.Settle(ctx, outcome)
		if err != nil {
			return events, err
		}
		if evt != nil {
			events = append(events, evt)
		}
	}
	return events, nil
}

// Watch marks queued transit entries as pending until events is closed or
// ctx is done. Entries settled in the meantime keep their status.
func (s *Settler) Watch(ctx context.Context, events <-chan ledger.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-events:
			if !ok {
				return
			}
			queued, ok := evt.(ledger.TransitQueuedEvent)
			if !ok {
				continue
			}
			status, err := s.storer.TransitStatus(queued.ID)
			if err == nil && status.Settled() {
				continue
			}
			err = s.storer.StoreTransitStatus(queued.ID, store.PendingTransit)
			if err != nil {
				log.Err(err).Uint64("transit", uint64(queued.ID)).Msg("Failed marking transit pending")
			}
		}
	}
}

// FilterOutcomes drops outcomes of settled transit entries and repeated
// outcomes for the same id.
func FilterOutcomes(storer TransitStorer, outcomes []transfer.TransitOutcome) []transfer.TransitOutcome {
	seen := make(map[ledger.TransitID]bool)
	filtered := []transfer.TransitOutcome{}
	for _, outcome := range outcomes {
		if seen[outcome.ID] {
			log.Debug().Uint64("transit", uint64(outcome.ID)).Msg("Duplicate outcome")
			continue
		}
		seen[outcome.ID] = true

		status, err := storer.TransitStatus(outcome.ID)
		if err != nil {
			log.Err(err).Uint64("transit", uint64(outcome.ID)).Msgf("Failed checking if transit settled %s", outcome)
			continue
		}
		if status.Settled() {
			log.Debug().Uint64("transit", uint64(outcome.ID)).Msgf("Transit marked as %s", status)
			continue
		}

		filtered = append(filtered, outcome)
	}
	return filtered
}

func finalStatus(outcome transfer.TransitOutcome) store.TransitStatus {
	if outcome.Type == transfer.ExecutedOutcome {
		return store.ConfirmedTransit
	}
	return store.CancelledTransit
}
