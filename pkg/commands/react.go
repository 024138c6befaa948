package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/moodsync/pkg/runner/react"
)

func addReact(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "react <entry-id> <emoji>",
		Short: "react to an entry",
		Example: `
moodsync react 3 👍
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires an entry id and an emoji")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadState()
			if err != nil {
				return err
			}
			s := react.React{
				EntryID: args[0],
				Emoji:   args[1],
				State:   c,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
