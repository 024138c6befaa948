package store

import (
	"encoding/json"
	"testing"
	"time"

	"tableflip.dev/moodsync/pkg/channel"
	"tableflip.dev/moodsync/pkg/entry"
	"tableflip.dev/moodsync/pkg/mood"
	"tableflip.dev/moodsync/pkg/team"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := testStore(t)
	src.SaveMoodEntries([]*entry.MoodEntry{
		{ID: "a", UserID: "1", Mood: mood.Happy, Created: entry.Now(), ChannelID: "general", Reactions: []entry.Reaction{}},
	})
	src.SaveCurrentUser(&team.User{ID: "1", Name: "You", Status: team.Online})
	src.SaveUsers([]team.User{{ID: "1", Name: "You", Status: team.Online}})
	src.SaveChannels([]channel.Channel{{ID: "general", Name: "General", Active: true}})
	src.SaveSelectedChannel("general")

	data, err := src.ExportAll(time.Now())
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	dst := testStore(t)
	if !dst.ImportAll(data) {
		t.Fatal("expected import to succeed")
	}

	if got := dst.MoodEntries(); len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("entries did not survive the round trip: %+v", got)
	}
	if u := dst.CurrentUser(); u == nil || u.ID != "1" {
		t.Fatalf("current user did not survive the round trip: %+v", u)
	}
	if got := dst.Users(); len(got) != 1 {
		t.Fatalf("roster did not survive the round trip: %+v", got)
	}
	if got := dst.Channels(); len(got) != 1 || got[0].ID != "general" {
		t.Fatalf("channels did not survive the round trip: %+v", got)
	}
	if got := dst.SelectedChannel(); got != "general" {
		t.Fatalf("selected channel did not survive the round trip: %q", got)
	}
}

func TestExportDocumentShape(t *testing.T) {
	p := testStore(t)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	data, err := p.ExportAll(now)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"version", "timestamp", "entries", "currentUser", "users", "channels", "selectedChannel"} {
		if _, ok := doc[key]; !ok {
			t.Fatalf("export document missing %q", key)
		}
	}
	if string(doc["version"]) != `"`+AppVersion+`"` {
		t.Fatalf("unexpected version: %s", doc["version"])
	}
	if string(doc["timestamp"]) != `"2026-09-01T12:00:00Z"` {
		t.Fatalf("unexpected timestamp: %s", doc["timestamp"])
	}
}

func TestImportMalformedIsNoOp(t *testing.T) {
	p := testStore(t)
	p.SaveSelectedChannel("general")

	if p.ImportAll([]byte("{not json")) {
		t.Fatal("expected malformed import to fail")
	}
	if got := p.SelectedChannel(); got != "general" {
		t.Fatalf("failed import must not touch state, got %q", got)
	}
}

func TestImportPartialDocumentLeavesOtherKeysAlone(t *testing.T) {
	p := testStore(t)
	p.SaveSelectedChannel("general")
	p.SaveUsers([]team.User{{ID: "1", Name: "You", Status: team.Online}})

	if !p.ImportAll([]byte(`{"version":"1.0.0","selectedChannel":"wellness"}`)) {
		t.Fatal("expected partial import to succeed")
	}
	if got := p.SelectedChannel(); got != "wellness" {
		t.Fatalf("expected wellness, got %q", got)
	}
	if got := p.Users(); len(got) != 1 {
		t.Fatalf("absent keys must be left alone, roster is %+v", got)
	}
}
