// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics_test

import (
	"context"
	"testing"

	"github.com/ChainSafe/vara-bridge/ledger"
	"github.com/ChainSafe/vara-bridge/metrics"
	"github.com/stretchr/testify/suite"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type BridgeMetricsTestSuite struct {
	suite.Suite
	reader  *sdkmetric.ManualReader
	metrics *metrics.BridgeMetrics
}

func TestRunBridgeMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(BridgeMetricsTestSuite))
}

func (s *BridgeMetricsTestSuite) SetupTest() {
	s.reader = sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(s.reader))

	m, err := metrics.NewBridgeMetrics(context.Background(), provider.Meter("test"), "test", "bridge-1")
	s.Nil(err)
	s.metrics = m
}

func (s *BridgeMetricsTestSuite) collect() map[string]metricdata.Aggregation {
	var rm metricdata.ResourceMetrics
	err := s.reader.Collect(context.Background(), &rm)
	s.Nil(err)

	collected := make(map[string]metricdata.Aggregation)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			collected[m.Name] = m.Data
		}
	}
	return collected
}

func (s *BridgeMetricsTestSuite) Test_TrackLedger() {
	s.metrics.TrackLedger(ledger.Snapshot{
		TotalSupply: ledger.NewAmount(1000),
		TransitQueue: []ledger.TransitEntry{
			{ID: 1, Amount: ledger.NewAmount(20), TokenType: ledger.NativeToken()},
			{ID: 2, Amount: ledger.NewAmount(30), TokenType: ledger.NativeToken()},
			{ID: 3, Amount: ledger.NewAmount(99), TokenType: ledger.WrappedToken(ledger.AccountID{9})},
		},
	}, 7)

	collected := s.collect()

	supply := collected["bridge.TotalSupply"].(metricdata.Gauge[float64])
	s.Equal(float64(1000), supply.DataPoints[0].Value)
	inTransit := collected["bridge.NativeInTransit"].(metricdata.Gauge[float64])
	s.Equal(float64(50), inTransit.DataPoints[0].Value)
	queue := collected["bridge.TransitQueueLength"].(metricdata.Gauge[int64])
	s.Equal(int64(3), queue.DataPoints[0].Value)
	nonce := collected["bridge.Nonce"].(metricdata.Gauge[int64])
	s.Equal(int64(7), nonce.DataPoints[0].Value)
	s.Contains(collected, "bridge.StartTimeSeconds")
}

func (s *BridgeMetricsTestSuite) Test_TrackAction() {
	s.metrics.TrackAction("Mint", "")
	s.metrics.TrackAction("Mint", "")
	s.metrics.TrackAction("Burn", "InsufficientBalance")

	collected := s.collect()

	actions := collected["bridge.Actions"].(metricdata.Sum[int64])
	counts := make(map[string]int64)
	for _, dp := range actions.DataPoints {
		action, _ := dp.Attributes.Value("action")
		result, _ := dp.Attributes.Value("result")
		counts[action.AsString()+"/"+result.AsString()] = dp.Value
	}
	s.Equal(map[string]int64{"Mint/Ok": 2, "Burn/InsufficientBalance": 1}, counts)
}

func (s *BridgeMetricsTestSuite) Test_DefaultMeter_NoCollector() {
	meter, shutdown, err := metrics.DefaultMeter(context.Background(), "")
	s.Nil(err)
	s.NotNil(meter)
	s.Nil(shutdown(context.Background()))
}
