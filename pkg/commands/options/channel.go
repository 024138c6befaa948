// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// ChannelOptions captures common channel selection flags for commands.
type ChannelOptions struct {
	Channel string
	All     bool
}

// AddChannelArgs wires channel-related flags on the provided command.
func AddChannelArgs(cmd *cobra.Command, o *ChannelOptions) {
	cmd.Flags().StringVarP(&o.Channel, "channel", "c", "",
		"Specify the channel. Defaults to the selected channel.")
}

// AddAllChannelsArg registers the flag that operates on all channels.
func AddAllChannelsArg(cmd *cobra.Command, o *ChannelOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Specify all channels.")
}
