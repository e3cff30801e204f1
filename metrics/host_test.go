// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type HostMetricsTestSuite struct {
	suite.Suite
	reader  *sdkmetric.ManualReader
	now     time.Time
	metrics *HostMetrics
}

func TestRunHostMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(HostMetricsTestSuite))
}

func (s *HostMetricsTestSuite) SetupTest() {
	s.reader = sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(s.reader))
	s.now = time.Unix(1700000000, 0)

	m, err := newHostMetrics(
		provider.Meter("test"),
		metric.WithAttributes(attribute.String("bridge", "bridge-1")),
		func() time.Time { return s.now },
	)
	s.Nil(err)
	s.metrics = m
}

func (s *HostMetricsTestSuite) collect() map[string]metricdata.Aggregation {
	var rm metricdata.ResourceMetrics
	s.Nil(s.reader.Collect(context.Background(), &rm))

	collected := make(map[string]metricdata.Aggregation)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			collected[m.Name] = m.Data
		}
	}
	return collected
}

func (s *HostMetricsTestSuite) Test_StartTimeAndUptime() {
	s.now = s.now.Add(90 * time.Second)

	collected := s.collect()

	start := collected["bridge.StartTimeSeconds"].(metricdata.Gauge[int64])
	s.Equal(int64(1700000000), start.DataPoints[0].Value)
	bridgeID, ok := start.DataPoints[0].Attributes.Value("bridge")
	s.True(ok)
	s.Equal("bridge-1", bridgeID.AsString())
	_, ok = start.DataPoints[0].Attributes.Value("go")
	s.True(ok)

	uptime := collected["bridge.UptimeSeconds"].(metricdata.Gauge[float64])
	s.Equal(float64(90), uptime.DataPoints[0].Value)
}

func (s *HostMetricsTestSuite) Test_MailboxDepth() {
	depth := 3
	s.metrics.ObserveMailbox(func() int { return depth })

	collected := s.collect()

	mailbox := collected["bridge.MailboxDepth"].(metricdata.Gauge[int64])
	s.Equal(int64(3), mailbox.DataPoints[0].Value)
}
