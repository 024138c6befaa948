package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/moodsync/pkg/runner/backup"
	"tableflip.dev/moodsync/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "export all data as JSON",
		Example: `
moodsync export
moodsync export backup.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := backup.Export{Store: p}
			if len(args) > 0 {
				s.Out = args[0]
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "import data from an export document",
		Example: `
moodsync import backup.json
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a file to import")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := backup.Import{
				In:    args[0],
				Store: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addReset(topLevel *cobra.Command) {
	confirmed := false

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "clear all persisted data",
		Example: `
moodsync reset --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return errors.New("refusing to clear data without --yes")
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := backup.Reset{Store: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&confirmed, "yes", "y", false,
		"Confirm clearing all persisted data.")

	topLevel.AddCommand(cmd)
}
