// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package actor

import (
	"github.com/ChainSafe/vara-bridge/ledger"
	"github.com/rs/zerolog/log"
)

// Subscribe returns a channel receiving events of committed mutations and a
// function ending the subscription. Delivery is best effort: events are
// dropped when the channel buffer is full.
func (a *Actor) Subscribe(buffer int) (<-chan ledger.Event, func()) {
	a.subsLock.Lock()
	defer a.subsLock.Unlock()

	id := a.nextSub
	a.nextSub++
	ch := make(chan ledger.Event, buffer)
	a.subscribers[id] = ch

	return ch, func() {
		a.subsLock.Lock()
		defer a.subsLock.Unlock()

		if ch, ok := a.subscribers[id]; ok {
			delete(a.subscribers, id)
			close(ch)
		}
	}
}

func (a *Actor) publish(evt ledger.Event) {
	a.subsLock.Lock()
	defer a.subsLock.Unlock()

	for id, ch := range a.subscribers {
		select {
		case ch <- evt:
		default:
			log.Warn().Int("subscriber", id).Msgf("Dropped %T event", evt)
		}
	}
}
