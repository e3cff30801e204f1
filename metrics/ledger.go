// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"math/big"
	"sync"

	"github.com/ChainSafe/vara-bridge/ledger"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	api "go.opentelemetry.io/otel/metric"
)

type ledgerStats struct {
	totalSupply     float64
	nativeInTransit float64
	queueLength     int64
	nonce           int64
}

type LedgerMetrics struct {
	opts metric.MeasurementOption

	actionCounter    api.Int64Counter
	totalSupplyGauge api.Float64ObservableGauge
	inTransitGauge   api.Float64ObservableGauge
	queueLengthGauge api.Int64ObservableGauge
	nonceGauge       api.Int64ObservableGauge

	statsLock sync.RWMutex
	stats     ledgerStats
}

// NewLedgerMetrics initializes metrics describing the ledger state and the
// actions handled by it
func NewLedgerMetrics(ctx context.Context, meter metric.Meter, opts metric.MeasurementOption) (*LedgerMetrics, error) {
	m := &LedgerMetrics{opts: opts}

	var err error
	m.actionCounter, err = meter.Int64Counter(
		"bridge.Actions",
		api.WithDescription("Number of handled ledger actions by action and error kind"),
	)
	if err != nil {
		return nil, err
	}
	m.totalSupplyGauge, err = meter.Float64ObservableGauge(
		"bridge.TotalSupply",
		api.WithDescription("Total token supply in base units"),
		api.WithFloat64Callback(func(ctx context.Context, result api.Float64Observer) error {
			result.Observe(m.snapshot().totalSupply, opts)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	m.inTransitGauge, err = meter.Float64ObservableGauge(
		"bridge.NativeInTransit",
		api.WithDescription("Native tokens reserved by queued transit entries"),
		api.WithFloat64Callback(func(ctx context.Context, result api.Float64Observer) error {
			result.Observe(m.snapshot().nativeInTransit, opts)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	m.queueLengthGauge, err = meter.Int64ObservableGauge(
		"bridge.TransitQueueLength",
		api.WithDescription("Number of transit entries awaiting settlement"),
		api.WithInt64Callback(func(ctx context.Context, result api.Int64Observer) error {
			result.Observe(m.snapshot().queueLength, opts)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	m.nonceGauge, err = meter.Int64ObservableGauge(
		"bridge.Nonce",
		api.WithDescription("Number of committed ledger mutations"),
		api.WithInt64Callback(func(ctx context.Context, result api.Int64Observer) error {
			result.Observe(m.snapshot().nonce, opts)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (m *LedgerMetrics) TrackAction(action string, errKind string) {
	result := errKind
	if result == "" {
		result = "Ok"
	}
	m.actionCounter.Add(
		context.Background(),
		1,
		m.opts,
		api.WithAttributes(attribute.String("action", action), attribute.String("result", result)),
	)
}

func (m *LedgerMetrics) TrackLedger(snapshot ledger.Snapshot, nonce uint64) {
	var inTransit big.Int
	for _, e := range snapshot.TransitQueue {
		if !e.TokenType.IsWrapped {
			inTransit.Add(&inTransit, e.Amount.Big())
		}
	}

	m.statsLock.Lock()
	defer m.statsLock.Unlock()
	m.stats = ledgerStats{
		totalSupply:     toFloat(snapshot.TotalSupply.Big()),
		nativeInTransit: toFloat(&inTransit),
		queueLength:     int64(len(snapshot.TransitQueue)),
		nonce:           int64(nonce),
	}
}

func (m *LedgerMetrics) snapshot() ledgerStats {
	m.statsLock.RLock()
	defer m.statsLock.RUnlock()
	return m.stats
}

func toFloat(v *big.Int) float64 {
	f, _ := new(big.Float).SetInt(v).Float64()
	return f
}
