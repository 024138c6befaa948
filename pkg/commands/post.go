package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/moodsync/pkg/commands/options"
	"tableflip.dev/moodsync/pkg/mood"
	"tableflip.dev/moodsync/pkg/runner/post"
)

func addPost(topLevel *cobra.Command) {
	co := &options.ChannelOptions{}
	io := &options.IDOptions{}

	long := strings.Builder{}
	long.WriteString("Post a mood, with an optional message, to a channel.\n\n")
	long.WriteString("Moods:\n")

	validArgs := make([]string, 0, len(mood.All()))
	for _, m := range mood.All() {
		long.WriteString(fmt.Sprintf("%s %s\n", m.Icon(), m))
		validArgs = append(validArgs, string(m))
	}

	var message string

	cmd := &cobra.Command{
		Use:   "post <mood> [message]",
		Short: "post <mood> [message] --channel general",
		Long:  long.String(),
		Example: `
moodsync post happy
moodsync post stressed rough sprint so far --channel stressed
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a mood")
			}
			if _, err := mood.Parse(args[0]); err != nil {
				return err
			}
			if len(args) > 1 {
				message = strings.Join(args[1:], " ")
			}
			return nil
		},
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadState()
			if err != nil {
				return err
			}
			s := post.Post{
				Mood:    args[0],
				Message: message,
				Channel: co.Channel,
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

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
