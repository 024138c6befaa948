package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodsync/pkg/commands/options"
	"tableflip.dev/moodsync/pkg/runner/feed"
)

func addFeed(topLevel *cobra.Command) {
	co := &options.ChannelOptions{}
	io := &options.IDOptions{}
	watch := false

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "view the mood feed",
		Example: `
moodsync feed
moodsync feed --channel happy
moodsync feed --all --watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadState()
			if err != nil {
				return err
			}
			s := feed.Feed{
				Channel: co.Channel,
				All:     co.All,
				Watch:   watch,
				ShowID:  io.ShowID,
				State:   c,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddChannelArgs(cmd, co)
	flagName := "channel"
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return channelCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	options.AddAllChannelsArg(cmd, co)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Keep the feed open and re-render on changes.")

	topLevel.AddCommand(cmd)
}
