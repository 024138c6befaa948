package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodsync/pkg/runner/report"
)

func addStats(topLevel *cobra.Command) {
	showUsage := false

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "view mood analytics",
		Example: `
moodsync stats
moodsync stats --usage
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadState()
			if err != nil {
				return err
			}
			s := report.Report{
				ShowUsage: showUsage,
				State:     c,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&showUsage, "usage", false,
		"Also report store capacity usage.")

	topLevel.AddCommand(cmd)
}
