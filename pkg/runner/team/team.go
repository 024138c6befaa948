package team

import (
	"context"
	"errors"

	"tableflip.dev/moodsync/pkg/printers"
	"tableflip.dev/moodsync/pkg/state"
	"tableflip.dev/moodsync/pkg/team"
)

// Team shows the roster or updates a member's presence.
type Team struct {
	UserID string
	Status string

	State *state.Container
}

func (n *Team) Do(ctx context.Context) error {
	if n.State == nil {
		return errors.New("can not show team, no state")
	}

	if n.Status != "" {
		if n.UserID == "" {
			return errors.New("requires a user id")
		}
		status, err := team.ParseStatus(n.Status)
		if err != nil {
			return err
		}
		n.State.UpdateUserStatus(n.UserID, status)
	}

	pp := printers.PrettyPrint{}
	pp.Title("team")
	pp.Roster(n.State.Users())

	return nil
}
