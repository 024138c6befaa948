package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"tableflip.dev/moodsync/pkg/channel"
	"tableflip.dev/moodsync/pkg/entry"
	"tableflip.dev/moodsync/pkg/team"
)

// ExportDocument is the user-facing backup format. ImportAll accepts the
// same document back unchanged.
type ExportDocument struct {
	Version         string             `json:"version"`
	Timestamp       string             `json:"timestamp"`
	Entries         []*entry.MoodEntry `json:"entries"`
	CurrentUser     *team.User         `json:"currentUser"`
	Users           []team.User        `json:"users"`
	Channels        []channel.Channel  `json:"channels"`
	SelectedChannel string             `json:"selectedChannel"`
}

// ExportAll snapshots every persisted collection into a single indented
// JSON document.
func (s *Store) ExportAll(now time.Time) ([]byte, error) {
	doc := ExportDocument{
		Version:         AppVersion,
		Timestamp:       now.UTC().Format(time.RFC3339),
		Entries:         s.MoodEntries(),
		CurrentUser:     s.CurrentUser(),
		Users:           s.Users(),
		Channels:        s.Channels(),
		SelectedChannel: s.SelectedChannel(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("store: export: %w", err)
	}
	return data, nil
}

// ImportAll restores collections from an export document. Each recognized
// top-level key present in the document overwrites the corresponding
// persisted collection wholesale; absent keys leave their collection
// untouched. Unparseable input is a no-op reported as failure, so a failed
// import never leaves partial state behind.
func (s *Store) ImportAll(data []byte) bool {
	var doc ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "store: import: %v\n", err)
		return false
	}

	if doc.Entries != nil {
		s.SaveMoodEntries(doc.Entries)
	}
	if doc.CurrentUser != nil {
		s.SaveCurrentUser(doc.CurrentUser)
	}
	if doc.Users != nil {
		s.SaveUsers(doc.Users)
	}
	if doc.Channels != nil {
		s.SaveChannels(doc.Channels)
	}
	if doc.SelectedChannel != "" {
		s.SaveSelectedChannel(doc.SelectedChannel)
	}

	return true
}
