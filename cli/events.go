// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"context"
	"fmt"

	"github.com/ChainSafe/vara-bridge/app"
	"github.com/ChainSafe/vara-bridge/flags"
	"github.com/spf13/cobra"
)

var (
	eventsCMD = &cobra.Command{
		Use:   "events",
		Short: "List journaled ledger events",
		Long:  "List events of committed ledger mutations ordered by nonce",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBridge(cmd, listEvents(cmd))
		},
	}
)

var (
	fromNonce uint64
	limit     int
)

func init() {
	eventsCMD.Flags().Uint64Var(&fromNonce, flags.FromFlagName, 0, "First nonce to list")
	eventsCMD.Flags().IntVar(&limit, flags.LimitFlagName, 100, "Maximum number of events, 0 for all")
}

func listEvents(cmd *cobra.Command) func(ctx context.Context, bridge *app.Bridge) error {
	return func(ctx context.Context, bridge *app.Bridge) error {
		entries, err := bridge.LedgerStore.Events(fromNonce, limit)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%d %T %+v\n", e.Nonce, e.Event, e.Event)
		}
		return nil
	}
}
