package react

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/moodsync/pkg/state"
)

// React appends a reaction to an entry as the current user.
type React struct {
	EntryID string
	Emoji   string

	State *state.Container
}

func (n *React) Do(ctx context.Context) error {
	if n.State == nil {
		return errors.New("can not react, no state")
	}
	if n.EntryID == "" {
		return errors.New("requires an entry id")
	}
	if n.Emoji == "" {
		return errors.New("requires an emoji")
	}

	cur := n.State.CurrentUser()
	if cur == nil {
		return errors.New("can not react, nobody is signed in")
	}

	if !n.State.AddReaction(n.EntryID, cur.ID, n.Emoji) {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Printf("no entry %s, nothing to react to\n", n.EntryID)
		return nil
	}

	fmt.Printf("%s %s\n", n.Emoji, n.EntryID)
	return nil
}
