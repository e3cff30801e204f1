// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ChainSafe/vara-bridge/ledger"
	"github.com/ChainSafe/vara-bridge/message"
	"github.com/ChainSafe/vara-bridge/relayer/transfer"
	"github.com/rs/zerolog/log"
)

const maxRequestSize = 1 << 20

type ActionHandler interface {
	Handle(ctx context.Context, caller ledger.AccountID, action ledger.Action) (ledger.Event, error)
}

type OutcomeSettler interface {
	SettleAll(ctx context.Context, outcomes []transfer.TransitOutcome) ([]ledger.Event, error)
}

type actionRequest struct {
	Caller ledger.AccountID `json:"caller"`
	Action string           `json:"action"`
}

type actionResponse struct {
	Event string `json:"event"`
}

type outcomeRequest struct {
	ID       ledger.TransitID `json:"id"`
	Executed bool             `json:"executed"`
}

type settleRequest struct {
	Outcomes []outcomeRequest `json:"outcomes"`
}

type settleResponse struct {
	Events []string `json:"events"`
	Error  string   `json:"error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// NewNodeHandler serves the health and state endpoints together with
// POST /action, applying a hex SCALE encoded action on behalf of a caller,
// and POST /settle, applying remote transit outcomes.
func NewNodeHandler(snapshotter Snapshotter, actions ActionHandler, settler OutcomeSettler, timeout time.Duration) http.Handler {
	mux := newMux(snapshotter, timeout)
	mux.HandleFunc("POST /action", func(w http.ResponseWriter, r *http.Request) {
		var req actionRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestSize)).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: "InvalidRequest"})
			return
		}
		var action message.Action
		if err := message.DecodeFromHex(req.Action, &action); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: "InvalidAction"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()
		evt, err := actions.Handle(ctx, req.Caller, action.Action)
		if err != nil {
			kind := ledger.ErrorKind(err)
			writeJSON(w, statusFor(kind), errorResponse{Error: err.Error(), Kind: kind})
			return
		}
		encoded, err := message.EncodeToHex(message.Event{Event: evt})
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error(), Kind: "Internal"})
			return
		}
		writeJSON(w, http.StatusOK, actionResponse{Event: encoded})
	})
	mux.HandleFunc("POST /settle", func(w http.ResponseWriter, r *http.Request) {
		var req settleRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestSize)).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: "InvalidRequest"})
			return
		}
		outcomes := make([]transfer.TransitOutcome, len(req.Outcomes))
		for i, o := range req.Outcomes {
			outcomes[i] = transfer.NewTransitOutcome(o.ID, o.Executed)
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()
		events, err := settler.SettleAll(ctx, outcomes)
		resp := settleResponse{Events: make([]string, 0, len(events))}
		for _, evt := range events {
			encoded, encErr := message.EncodeToHex(message.Event{Event: evt})
			if encErr != nil {
				writeJSON(w, http.StatusInternalServerError, errorResponse{Error: encErr.Error(), Kind: "Internal"})
				return
			}
			resp.Events = append(resp.Events, encoded)
		}
		if err != nil {
			log.Err(err).Msg("Failed settling transit outcomes")
			resp.Error = err.Error()
			writeJSON(w, statusFor(ledger.ErrorKind(err)), resp)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	})
	return mux
}

func statusFor(kind string) int {
	switch kind {
	case "Unauthorized":
		return http.StatusForbidden
	case "NotFound":
		return http.StatusNotFound
	case "Internal":
		return http.StatusInternalServerError
	default:
		return http.StatusUnprocessableEntity
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
