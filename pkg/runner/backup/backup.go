// Package backup implements the bulk export/import/reset paths over the
// persisted namespace.
package backup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"tableflip.dev/moodsync/pkg/store"
)

// Export writes the full persisted state to a single JSON document, stdout
// when Out is empty.
type Export struct {
	Out string

	Store *store.Store
}

func (n *Export) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not export, no store")
	}

	data, err := n.Store.ExportAll(time.Now())
	if err != nil {
		return err
	}

	if n.Out == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(n.Out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", n.Out, err)
	}
	fmt.Printf("exported to %s\n", n.Out)
	return nil
}

// Import restores persisted state from an export document. Import commits
// nothing when the document does not parse.
type Import struct {
	In string

	Store *store.Store
}

func (n *Import) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not import, no store")
	}
	if n.In == "" {
		return errors.New("requires a file to import")
	}

	data, err := os.ReadFile(n.In)
	if err != nil {
		return fmt.Errorf("read %s: %w", n.In, err)
	}

	if !n.Store.ImportAll(data) {
		return fmt.Errorf("import failed, %s is not a valid export document", n.In)
	}
	fmt.Printf("imported %s\n", n.In)
	return nil
}

// Reset clears every persisted key, the "clear all data" path.
type Reset struct {
	Store *store.Store
}

func (n *Reset) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not reset, no store")
	}
	n.Store.ClearAll()
	fmt.Println("all data cleared")
	return nil
}
