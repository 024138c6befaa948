package report

import (
	"context"
	"errors"

	"tableflip.dev/moodsync/pkg/printers"
	"tableflip.dev/moodsync/pkg/state"
)

// Report prints the aggregate mood statistics.
type Report struct {
	ShowUsage bool

	State *state.Container
}

func (n *Report) Do(ctx context.Context) error {
	if n.State == nil {
		return errors.New("can not report, no state")
	}

	pp := printers.PrettyPrint{}
	pp.Stats(n.State.Stats())

	if n.ShowUsage {
		u := n.State.Usage()
		pp.NewLine()
		pp.Usage(u.Used, u.Total, u.Percentage)
	}

	return nil
}
