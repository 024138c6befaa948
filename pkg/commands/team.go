package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	runnerteam "tableflip.dev/moodsync/pkg/runner/team"
	"tableflip.dev/moodsync/pkg/team"
)

func addTeam(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "view the team roster",
		Example: `
moodsync team
moodsync team status 1 away
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadState()
			if err != nil {
				return err
			}
			s := runnerteam.Team{State: c}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	addTeamStatus(cmd)

	topLevel.AddCommand(cmd)
}

func addTeamStatus(topLevel *cobra.Command) {
	long := strings.Builder{}
	long.WriteString("Update a member's presence status.\n\nStatuses: ")
	long.WriteString(fmt.Sprintf("%s, %s, %s, %s\n", team.Online, team.Away, team.Busy, team.Offline))

	cmd := &cobra.Command{
		Use:   "status <user-id> <status>",
		Short: "update a member's presence",
		Long:  long.String(),
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a user id and a status")
			}
			if _, err := team.ParseStatus(args[1]); err != nil {
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadState()
			if err != nil {
				return err
			}
			s := runnerteam.Team{
				UserID: args[0],
				Status: args[1],
				State:  c,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
