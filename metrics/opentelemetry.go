// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"net/url"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const meterName = "vara-bridge"

// DefaultMeter creates a meter exporting periodically over OTLP HTTP to
// collectorRawURL. Without a collector URL the returned meter records nothing.
func DefaultMeter(ctx context.Context, collectorRawURL string) (metric.Meter, func(context.Context) error, error) {
	if collectorRawURL == "" {
		return noop.NewMeterProvider().Meter(meterName), func(context.Context) error { return nil }, nil
	}

	collectorURL, err := url.Parse(collectorRawURL)
	if err != nil {
		return nil, nil, err
	}

	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(collectorURL.Host),
	}
	if collectorURL.Path != "" {
		opts = append(opts, otlpmetrichttp.WithURLPath(collectorURL.Path))
	}
	if collectorURL.Scheme != "https" {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
	)
	return provider.Meter(meterName), provider.Shutdown, nil
}
