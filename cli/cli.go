// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"context"

	"github.com/ChainSafe/vara-bridge/app"
	"github.com/ChainSafe/vara-bridge/flags"
	"github.com/ChainSafe/vara-bridge/logger"
	"github.com/ChainSafe/vara-bridge/metrics"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	rootCMD = &cobra.Command{
		Use:   "vara-bridge",
		Short: "Vara bridge ledger node",
	}
)

func init() {
	flags.BindFlags(rootCMD)
}

func Execute() {
	rootCMD.AddCommand(runCMD, stateCMD, handleCMD, settleCMD, eventsCMD)
	if err := rootCMD.Execute(); err != nil {
		log.Fatal().Err(err).Msg("failed to execute root cmd")
	}
}

// withBridge opens the ledger of the configured node, runs its actor and
// calls fn with it. The node must not be running.
func withBridge(cmd *cobra.Command, fn func(ctx context.Context, bridge *app.Bridge) error) error {
	configuration, err := app.LoadConfig()
	if err != nil {
		return err
	}
	logCloser, err := logger.ConfigureLogger(configuration.NodeConfig.LogLevel, cmd.ErrOrStderr(), "")
	if err != nil {
		return err
	}
	defer logCloser.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	meter, _, err := metrics.DefaultMeter(ctx, "")
	if err != nil {
		return err
	}
	bridgeMetrics, err := metrics.NewBridgeMetrics(ctx, meter, configuration.NodeConfig.Env, configuration.NodeConfig.Id)
	if err != nil {
		return err
	}

	bridge, err := app.OpenBridge(configuration, bridgeMetrics)
	if err != nil {
		return err
	}
	defer bridge.Close()

	stop := bridge.Start(ctx)
	defer stop()
	return fn(ctx, bridge)
}
