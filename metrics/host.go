// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// HostMetrics reports the bridge node process: when it started, how long it
// has been up and how many requests wait in the ledger actor mailbox.
type HostMetrics struct {
	startTime time.Time
	now       func() time.Time
	mailbox   atomic.Pointer[func() int]

	startTimeGauge metric.Int64ObservableGauge
	uptimeGauge    metric.Float64ObservableGauge
	mailboxGauge   metric.Int64ObservableGauge
}

func NewHostMetrics(ctx context.Context, meter metric.Meter, opts metric.MeasurementOption) (*HostMetrics, error) {
	return newHostMetrics(meter, opts, time.Now)
}

func newHostMetrics(meter metric.Meter, opts metric.MeasurementOption, now func() time.Time) (*HostMetrics, error) {
	m := &HostMetrics{
		startTime: now(),
		now:       now,
	}

	var err error
	m.startTimeGauge, err = meter.Int64ObservableGauge(
		"bridge.StartTimeSeconds",
		metric.WithDescription("Unix time the bridge node started"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	m.uptimeGauge, err = meter.Float64ObservableGauge(
		"bridge.UptimeSeconds",
		metric.WithDescription("Seconds since the bridge node started"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	m.mailboxGauge, err = meter.Int64ObservableGauge(
		"bridge.MailboxDepth",
		metric.WithDescription("Requests waiting for the ledger actor"),
	)
	if err != nil {
		return nil, err
	}

	goVersion := metric.WithAttributes(attribute.String("go", runtime.Version()))
	_, err = meter.RegisterCallback(func(ctx context.Context, o metric.Observer) error {
		o.ObserveInt64(m.startTimeGauge, m.startTime.Unix(), opts, goVersion)
		o.ObserveFloat64(m.uptimeGauge, m.now().Sub(m.startTime).Seconds(), opts)
		if depth := m.mailbox.Load(); depth != nil {
			o.ObserveInt64(m.mailboxGauge, int64((*depth)()), opts)
		}
		return nil
	}, m.startTimeGauge, m.uptimeGauge, m.mailboxGauge)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ObserveMailbox sets the function reporting the actor mailbox depth.
func (m *HostMetrics) ObserveMailbox(depth func() int) {
	m.mailbox.Store(&depth)
}
