// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"context"
	"fmt"

	"github.com/ChainSafe/vara-bridge/app"
	"github.com/ChainSafe/vara-bridge/flags"
	"github.com/ChainSafe/vara-bridge/ledger"
	"github.com/ChainSafe/vara-bridge/message"
	"github.com/spf13/cobra"
)

var (
	handleCMD = &cobra.Command{
		Use:   "handle",
		Short: "Handle a SCALE encoded action",
		Long:  "Decode a hex SCALE encoded action, apply it on behalf of the caller and print the encoded reply",
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := ledger.AccountIDFromHex(callerHex)
			if err != nil {
				return err
			}
			var action message.Action
			if err := message.DecodeFromHex(actionHex, &action); err != nil {
				return fmt.Errorf("invalid action: %w", err)
			}
			return withBridge(cmd, handleAction(cmd, caller, action.Action))
		},
	}
)

var (
	callerHex string
	actionHex string
)

func init() {
	handleCMD.Flags().StringVar(&callerHex, flags.CallerFlagName, "", "Hex encoded caller account")
	handleCMD.Flags().StringVar(&actionHex, flags.ActionFlagName, "", "Hex SCALE encoded action")
	_ = handleCMD.MarkFlagRequired(flags.CallerFlagName)
	_ = handleCMD.MarkFlagRequired(flags.ActionFlagName)
}

func handleAction(cmd *cobra.Command, caller ledger.AccountID, action ledger.Action) func(ctx context.Context, bridge *app.Bridge) error {
	return func(ctx context.Context, bridge *app.Bridge) error {
		evt, err := bridge.Actor.Handle(ctx, caller, action)
		if err != nil {
			return fmt.Errorf("%s rejected (%s): %w", action.Name(), ledger.ErrorKind(err), err)
		}
		reply, err := message.EncodeToHex(message.Event{Event: evt})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%T %+v\nReply: %s\n", evt, evt, reply)
		return nil
	}
}
