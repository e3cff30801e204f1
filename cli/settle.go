// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"context"
	"fmt"

	"github.com/ChainSafe/vara-bridge/app"
	"github.com/ChainSafe/vara-bridge/flags"
	"github.com/ChainSafe/vara-bridge/ledger"
	"github.com/ChainSafe/vara-bridge/relayer/transfer"
	"github.com/spf13/cobra"
)

var (
	settleCMD = &cobra.Command{
		Use:   "settle",
		Short: "Settle a transit entry",
		Long:  "Confirm a transit entry executed on the remote chain or cancel a failed one as the bridge admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome := transfer.NewTransitOutcome(ledger.TransitID(transitID), !failed)
			return withBridge(cmd, settleTransit(cmd, outcome))
		},
	}
)

var (
	transitID uint64
	failed    bool
)

func init() {
	settleCMD.Flags().Uint64Var(&transitID, flags.IDFlagName, 0, "Transit entry id")
	settleCMD.Flags().BoolVar(&failed, flags.FailedFlagName, false, "Cancel the entry instead of confirming it")
	_ = settleCMD.MarkFlagRequired(flags.IDFlagName)
}

func settleTransit(cmd *cobra.Command, outcome transfer.TransitOutcome) func(ctx context.Context, bridge *app.Bridge) error {
	return func(ctx context.Context, bridge *app.Bridge) error {
		settler, err := bridge.Settler(ctx)
		if err != nil {
			return err
		}
		evt, err := settler.Settle(ctx, outcome)
		if err != nil {
			return err
		}
		if evt == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Transit %d already settled\n", outcome.ID)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%T %+v\n", evt, evt)
		return nil
	}
}
