package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/moodsync/pkg/runner/channels"
)

func addChannels(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "channels",
		Aliases: []string{"channel"},
		Short:   "list mood channels",
		Example: `
moodsync channels
moodsync channels select happy
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadState()
			if err != nil {
				return err
			}
			s := channels.Channels{State: c}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	addChannelsSelect(cmd)

	topLevel.AddCommand(cmd)
}

func addChannelsSelect(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "select <channel-id>",
		Short: "select the active channel",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a channel id")
			}
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return channelCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadState()
			if err != nil {
				return err
			}
			s := channels.Channels{
				Select: strings.Join(args, " "),
				State:  c,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
