package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/moodsync/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(moodsync completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(moodsync completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func channelCompletions(toComplete string) []string {
	p, err := store.Load(nil)
	if err != nil {
		return nil
	}
	var out []string
	for _, c := range p.Channels() {
		if toComplete == "" || strings.HasPrefix(c.ID, toComplete) {
			out = append(out, c.ID)
		}
	}
	return out
}
