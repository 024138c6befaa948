package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/moodsync/pkg/commands/options"
	"tableflip.dev/moodsync/pkg/state"
	"tableflip.dev/moodsync/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "moodsync",
		Short: base.Wrap80("Team mood tracking on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addPost(topLevel)
	addFeed(topLevel)
	addReact(topLevel)
	addStats(topLevel)
	addChannels(topLevel)
	addTeam(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addReset(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}

// loadState opens the persisted store and hydrates a state container from
// it, the startup path every command shares.
func loadState() (*state.Container, error) {
	s, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	c := state.New(s)
	c.Load()
	return c, nil
}
