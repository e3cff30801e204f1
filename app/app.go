// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ChainSafe/vara-bridge/health"
	"github.com/ChainSafe/vara-bridge/jobs"
	"github.com/ChainSafe/vara-bridge/logger"
	"github.com/ChainSafe/vara-bridge/metrics"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

const requestTimeout = 10 * time.Second

func Run() error {
	configuration, err := LoadConfig()
	panicOnError(err)

	logCloser, err := logger.ConfigureLogger(configuration.NodeConfig.LogLevel, os.Stdout, configuration.NodeConfig.LogFile)
	panicOnError(err)
	defer logCloser.Close()

	log.Info().Msg("Successfully loaded configuration")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	meter, shutdownMeter, err := metrics.DefaultMeter(ctx, configuration.NodeConfig.OpenTelemetryCollectorURL)
	panicOnError(err)
	defer func() {
		_ = shutdownMeter(context.Background())
	}()
	bridgeMetrics, err := metrics.NewBridgeMetrics(ctx, meter, configuration.NodeConfig.Env, configuration.NodeConfig.Id)
	panicOnError(err)

	bridge, err := OpenBridge(configuration, bridgeMetrics)
	if err != nil {
		log.Error().Err(err).Msg("Unable to open blockstore")
		return err
	}
	defer bridge.Close()
	bridgeMetrics.ObserveMailbox(bridge.Actor.MailboxDepth)
	log.Info().Msg("Successfully connected to blockstore file")

	events, unsubscribe := bridge.Actor.Subscribe(256)
	defer unsubscribe()

	monitor := jobs.NewTransitMonitor(bridge.Actor, configuration.NodeConfig.MonitorConfig.StaleAfter)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(bridge.Actor.Run)
	p.Go(func(ctx context.Context) error {
		handler := health.NewNodeHandler(bridge.Actor, bridge.Actor, bridge, requestTimeout)
		return health.StartHealthEndpoint(ctx, configuration.NodeConfig.HealthPort, handler)
	})
	p.Go(func(ctx context.Context) error {
		return jobs.StartTransitMonitorJob(ctx, monitor, configuration.NodeConfig.MonitorConfig.Interval)
	})
	p.Go(func(ctx context.Context) error {
		settler, err := bridge.Settler(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return err
		}
		settler.Watch(ctx, events)
		return nil
	})

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)
	go func() {
		select {
		case sig := <-sysErr:
			log.Info().Msgf("terminating got [%v] signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	log.Info().Str("id", configuration.NodeConfig.Id).Msgf("Started bridge node for %s", configuration.BridgeConfig.Ledger.Symbol)
	err = p.Wait()
	if err != nil {
		log.Error().Err(err).Msg("bridge node stopped")
	}
	return err
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
