// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package jobs

import (
	"context"
	"time"

	"github.com/ChainSafe/vara-bridge/ledger"
	"github.com/rs/zerolog/log"
)

type Snapshotter interface {
	Snapshot(ctx context.Context) (ledger.Snapshot, error)
}

// TransitMonitor reports transit entries that stay queued for longer than
// staleAfter. Queue age is measured from the first check that saw an entry.
type TransitMonitor struct {
	snapshotter Snapshotter
	staleAfter  time.Duration
	now         func() time.Time

	firstSeen map[ledger.TransitID]time.Time
}

func NewTransitMonitor(snapshotter Snapshotter, staleAfter time.Duration) *TransitMonitor {
	return &TransitMonitor{
		snapshotter: snapshotter,
		staleAfter:  staleAfter,
		now:         time.Now,
		firstSeen:   make(map[ledger.TransitID]time.Time),
	}
}

// Check returns the stale entries of the current transit queue.
func (m *TransitMonitor) Check(ctx context.Context) ([]ledger.TransitEntry, error) {
	snapshot, err := m.snapshotter.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	now := m.now()
	queued := make(map[ledger.TransitID]bool, len(snapshot.TransitQueue))
	stale := []ledger.TransitEntry{}
	for _, e := range snapshot.TransitQueue {
		queued[e.ID] = true
		seen, ok := m.firstSeen[e.ID]
		if !ok {
			m.firstSeen[e.ID] = now
			continue
		}
		if now.Sub(seen) >= m.staleAfter {
			stale = append(stale, e)
		}
	}
	for id := range m.firstSeen {
		if !queued[id] {
			delete(m.firstSeen, id)
		}
	}
	return stale, nil
}

// StartTransitMonitorJob checks the transit queue every interval until ctx
// is cancelled.
func StartTransitMonitorJob(ctx context.Context, monitor *TransitMonitor, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			log.Debug().Msg("Starting transit queue check")
			stale, err := monitor.Check(ctx)
			if err != nil {
				log.Err(err).Msg("transit queue check failed")
				continue
			}
			for _, e := range stale {
				log.Warn().
					Uint64("transit", uint64(e.ID)).
					Str("destination", e.Destination.Hex()).
					Str("amount", e.Amount.String()).
					Str("tokenType", e.TokenType.String()).
					Msg("Transit awaiting settlement")
			}
		}
	}
}
