// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type BridgeMetrics struct {
	*HostMetrics
	*LedgerMetrics
}

// NewBridgeMetrics creates an instance of metrics
func NewBridgeMetrics(ctx context.Context, meter metric.Meter, env, bridgeID string) (*BridgeMetrics, error) {
	opts := metric.WithAttributes(attribute.String("env", env), attribute.String("bridge", bridgeID))

	hostMetrics, err := NewHostMetrics(ctx, meter, opts)
	if err != nil {
		return nil, err
	}
	ledgerMetrics, err := NewLedgerMetrics(ctx, meter, opts)
	if err != nil {
		return nil, err
	}

	return &BridgeMetrics{
		HostMetrics:   hostMetrics,
		LedgerMetrics: ledgerMetrics,
	}, nil
}
