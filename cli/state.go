// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"context"
	"fmt"

	"github.com/ChainSafe/vara-bridge/app"
	"github.com/ChainSafe/vara-bridge/message"
	"github.com/spf13/cobra"
)

var (
	stateCMD = &cobra.Command{
		Use:   "state",
		Short: "Print bridge state snapshot",
		Long:  "Print bridge state snapshot with its SCALE encoding",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBridge(cmd, printState(cmd))
		},
	}
)

func printState(cmd *cobra.Command) func(ctx context.Context, bridge *app.Bridge) error {
	return func(ctx context.Context, bridge *app.Bridge) error {
		state, err := bridge.Actor.State(ctx)
		if err != nil {
			return err
		}
		snapshot, err := bridge.Actor.Snapshot(ctx)
		if err != nil {
			return err
		}
		encoded, err := message.EncodeToHex(message.BridgeState{Snapshot: snapshot})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Token: %s (%s), %d decimals\n", state.Config.Name, state.Config.Symbol, state.Config.Decimals)
		fmt.Fprintf(out, "Admin: %s\n", snapshot.Admin)
		fmt.Fprintf(out, "Min amount: %s\n", snapshot.MinAmount)
		fmt.Fprintf(out, "Total supply: %s\n", snapshot.TotalSupply)
		fmt.Fprintf(out, "Nonce: %d\n", state.Nonce)
		fmt.Fprintf(out, "Accounts: %d\n", len(state.Balances))
		fmt.Fprintf(out, "Transit queue (%d):\n", len(snapshot.TransitQueue))
		for _, e := range snapshot.TransitQueue {
			fmt.Fprintf(out, "  #%d %s -> %s %s %s\n", e.ID, e.Sender, e.Destination, e.Amount, e.TokenType)
		}
		fmt.Fprintf(out, "Encoded: %s\n", encoded)
		return nil
	}
}
