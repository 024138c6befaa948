package feed

import (
	"context"
	"errors"

	"tableflip.dev/moodsync/pkg/entry"
	"tableflip.dev/moodsync/pkg/printers"
	"tableflip.dev/moodsync/pkg/state"
)

// Feed prints the mood feed, most recent first. With Watch set it keeps
// re-rendering as the underlying store changes (another process writing, or
// an import).
type Feed struct {
	Channel string
	All     bool
	Watch   bool
	ShowID  bool

	State *state.Container
}

func (n *Feed) Do(ctx context.Context) error {
	if n.State == nil {
		return errors.New("can not read feed, no state")
	}

	n.render()

	if !n.Watch {
		return nil
	}

	events, err := n.State.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			n.State.Load()
			n.render()
		}
	}
}

func (n *Feed) render() {
	pp := printers.PrettyPrint{ShowID: n.ShowID}

	if n.All {
		all := n.State.Entries()
		entry.SortFeed(all)
		pp.TitleWithCount("all channels", len(all))
		pp.Feed(all...)
		return
	}

	channelID := n.Channel
	if channelID == "" {
		channelID = n.State.SelectedChannelID()
	}
	if channelID == "" {
		pp.Title("no channel selected")
		pp.Feed()
		return
	}

	all := n.State.EntriesForChannel(channelID)
	entry.SortFeed(all)
	pp.TitleWithCount(channelID, len(all))
	pp.Feed(all...)
}
