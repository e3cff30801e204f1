// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package health

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ChainSafe/vara-bridge/ledger"
	"github.com/ChainSafe/vara-bridge/message"
	"github.com/rs/zerolog/log"
)

type Snapshotter interface {
	Snapshot(ctx context.Context) (ledger.Snapshot, error)
}

type transitEntry struct {
	ID          ledger.TransitID `json:"id"`
	Sender      ledger.AccountID `json:"sender"`
	Destination ledger.AccountID `json:"destination"`
	Amount      ledger.Amount    `json:"amount"`
	TokenType   string           `json:"token_type"`
}

type stateResponse struct {
	MinAmount    ledger.Amount    `json:"min_amount"`
	Admin        ledger.AccountID `json:"admin"`
	TotalSupply  ledger.Amount    `json:"total_supply"`
	TransitQueue []transitEntry   `json:"transit_queue"`
	Encoded      string           `json:"encoded"`
}

// NewHandler serves /health returning ok and /state returning the bridge
// snapshot as JSON, including its SCALE encoding.
func NewHandler(snapshotter Snapshotter, timeout time.Duration) http.Handler {
	return newMux(snapshotter, timeout)
}

func newMux(snapshotter Snapshotter, timeout time.Duration) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/state", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		snapshot, err := snapshotter.Snapshot(ctx)
		if err != nil {
			log.Err(err).Msg("Failed fetching bridge snapshot")
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		encoded, err := message.EncodeToHex(message.BridgeState{Snapshot: snapshot})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		resp := stateResponse{
			MinAmount:    snapshot.MinAmount,
			Admin:        snapshot.Admin,
			TotalSupply:  snapshot.TotalSupply,
			TransitQueue: make([]transitEntry, len(snapshot.TransitQueue)),
			Encoded:      encoded,
		}
		for i, e := range snapshot.TransitQueue {
			resp.TransitQueue[i] = transitEntry{
				ID:          e.ID,
				Sender:      e.Sender,
				Destination: e.Destination,
				Amount:      e.Amount,
				TokenType:   e.TokenType.String(),
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})
	return mux
}

// StartHealthEndpoint serves handler on port until ctx is cancelled
func StartHealthEndpoint(ctx context.Context, port uint16, handler http.Handler) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Info().Msgf("started /health endpoint on port %d", port)
	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
