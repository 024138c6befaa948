package channels

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/moodsync/pkg/channel"
	"tableflip.dev/moodsync/pkg/printers"
	"tableflip.dev/moodsync/pkg/state"
)

// Channels lists the channel catalog or moves the selection.
type Channels struct {
	Select string

	State *state.Container
}

func (n *Channels) Do(ctx context.Context) error {
	if n.State == nil {
		return errors.New("can not list channels, no state")
	}

	if n.Select != "" {
		if _, ok := channel.ByID(n.State.Channels(), n.Select); !ok {
			return fmt.Errorf("no channel %q", n.Select)
		}
		n.State.SetSelectedChannel(n.Select)
	}

	pp := printers.PrettyPrint{}
	pp.Title("channels")
	pp.Channels(n.State.Channels(), n.State.SelectedChannelID())

	return nil
}
