package post

import (
	"context"
	"errors"

	"tableflip.dev/moodsync/pkg/mood"
	"tableflip.dev/moodsync/pkg/printers"
	"tableflip.dev/moodsync/pkg/state"
)

// Post submits a mood entry to a channel as the current user.
type Post struct {
	Mood    string
	Message string
	Channel string

	ShowID bool
	State  *state.Container
}

func (n *Post) Do(ctx context.Context) error {
	if n.State == nil {
		return errors.New("can not post, no state")
	}

	m, err := mood.Parse(n.Mood)
	if err != nil {
		return err
	}

	cur := n.State.CurrentUser()
	if cur == nil {
		return errors.New("can not post, nobody is signed in")
	}

	channelID := n.Channel
	if channelID == "" {
		channelID = n.State.SelectedChannelID()
	}

	e, err := n.State.AddMoodEntry(state.EntryPayload{
		Author:    *cur,
		Mood:      m,
		Message:   n.Message,
		ChannelID: channelID,
	})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title(channelID)
	pp.Feed(e)

	return nil
}
