// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ChainSafe/vara-bridge/actor"
	"github.com/ChainSafe/vara-bridge/config"
	"github.com/ChainSafe/vara-bridge/flags"
	"github.com/ChainSafe/vara-bridge/ledger"
	"github.com/ChainSafe/vara-bridge/lvldb"
	"github.com/ChainSafe/vara-bridge/relayer/settle"
	"github.com/ChainSafe/vara-bridge/relayer/transfer"
	"github.com/ChainSafe/vara-bridge/store"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Bridge bundles the persisted ledger with the actor owning it.
type Bridge struct {
	db           *lvldb.LVLDB
	LedgerStore  *store.LedgerStore
	TransitStore *store.TransitStore
	Actor        *actor.Actor
}

// LoadConfig reads configuration from the file set by the config flag or
// from the environment when the flag is "env".
func LoadConfig() (*config.Config, error) {
	configFlag := viper.GetString(flags.ConfigFlagName)
	if strings.ToLower(configFlag) == "env" {
		return config.GetConfigFromENV()
	}
	return config.GetConfig(configFlag)
}

// OpenBridge opens the blockstore and restores the ledger from it. On first
// start the ledger is created from configuration and the genesis supply is
// minted to the admin.
func OpenBridge(configuration *config.Config, metrics actor.Metrics) (*Bridge, error) {
	db, err := lvldb.NewLvlDB(configuration.NodeConfig.BlockstorePath)
	if err != nil {
		return nil, err
	}
	ledgerStore := store.NewLedgerStore(db)

	l, err := loadLedger(ledgerStore, configuration.BridgeConfig)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Bridge{
		db:           db,
		LedgerStore:  ledgerStore,
		TransitStore: store.NewTransitStore(db),
		Actor:        actor.NewActor(l, ledgerStore, metrics, configuration.NodeConfig.MailboxSize),
	}, nil
}

func loadLedger(ledgerStore *store.LedgerStore, bridgeConfig config.BridgeConfig) (*ledger.Ledger, error) {
	state, ok, err := ledgerStore.LoadState()
	if err != nil {
		return nil, err
	}
	if ok {
		if !sameToken(state.Config, bridgeConfig.Ledger) {
			log.Warn().Msgf("Configured token %s differs from stored token %s", bridgeConfig.Ledger.Symbol, state.Config.Symbol)
		}
		log.Info().Uint64("nonce", state.Nonce).Msg("Restored ledger state")
		return ledger.FromState(state)
	}

	l, err := ledger.Genesis(bridgeConfig.Ledger, bridgeConfig.GenesisSupply)
	if err != nil {
		return nil, err
	}
	err = ledgerStore.StoreState(l.State())
	if err != nil {
		return nil, fmt.Errorf("storing genesis state: %w", err)
	}
	log.Info().Str("supply", bridgeConfig.GenesisSupply.String()).Msg("Created genesis ledger state")
	return l, nil
}

func sameToken(a, b ledger.Config) bool {
	return a.Name == b.Name && a.Symbol == b.Symbol && a.Decimals == b.Decimals
}

// Start runs the actor until the returned stop function is called.
func (b *Bridge) Start(ctx context.Context) func() {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = b.Actor.Run(ctx)
	}()
	return func() {
		cancel()
		<-done
	}
}

func (b *Bridge) Close() error {
	return b.db.Close()
}

// Admin returns the current ledger admin.
func (b *Bridge) Admin(ctx context.Context) (ledger.AccountID, error) {
	snapshot, err := b.Actor.Snapshot(ctx)
	if err != nil {
		return ledger.AccountID{}, err
	}
	return snapshot.Admin, nil
}

// Settler returns a settler applying outcomes as the current admin.
func (b *Bridge) Settler(ctx context.Context) (*settle.Settler, error) {
	admin, err := b.Admin(ctx)
	if err != nil {
		return nil, err
	}
	return settle.NewSettler(b.Actor, b.TransitStore, admin), nil
}

// SettleAll settles outcomes as the admin at the time of the call.
func (b *Bridge) SettleAll(ctx context.Context, outcomes []transfer.TransitOutcome) ([]ledger.Event, error) {
	settler, err := b.Settler(ctx)
	if err != nil {
		return nil, err
	}
	return settler.SettleAll(ctx, outcomes)
}
