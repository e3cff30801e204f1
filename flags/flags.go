// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName = "config"
	CallerFlagName = "caller"
	ActionFlagName = "action"
	IDFlagName     = "id"
	FailedFlagName = "failed"
	FromFlagName   = "from"
	LimitFlagName  = "limit"
)

// BindFlags binds flags shared by every command
func BindFlags(rootCMD *cobra.Command) {
	rootCMD.PersistentFlags().String(ConfigFlagName, ".", "Path to JSON configuration file or \"env\" to read configuration from environment variables")
	_ = viper.BindPFlag(ConfigFlagName, rootCMD.PersistentFlags().Lookup(ConfigFlagName))
}
