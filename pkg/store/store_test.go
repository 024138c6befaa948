package store

import (
	"testing"
	"time"

	"tableflip.dev/moodsync/pkg/channel"
	"tableflip.dev/moodsync/pkg/entry"
	"tableflip.dev/moodsync/pkg/mood"
	"tableflip.dev/moodsync/pkg/team"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewWithKV(NewKV(t.TempDir(), 0))
}

func TestKVGetMissingReturnsDefault(t *testing.T) {
	kv := NewKV(t.TempDir(), 0)
	if got := kv.Get("missing", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestKVSetGetRoundTrip(t *testing.T) {
	kv := NewKV(t.TempDir(), 0)
	if !kv.Set("greeting", "hello") {
		t.Fatal("expected write to succeed")
	}
	if got := kv.Get("greeting", ""); got != "hello" {
		t.Fatalf("expected hello, got %q", got)
	}
	if !kv.Has("greeting") {
		t.Fatal("expected key to be present")
	}
	kv.Remove("greeting")
	if kv.Has("greeting") {
		t.Fatal("expected key to be gone")
	}
}

func TestKVQuotaRejectsOversizedWrite(t *testing.T) {
	kv := NewKV(t.TempDir(), 16)
	if !kv.Set("a", "tiny") {
		t.Fatal("expected small write to fit")
	}
	if kv.Set("b", "this value does not fit in the quota") {
		t.Fatal("expected oversized write to fail")
	}
	if kv.Has("b") {
		t.Fatal("failed write must not leave a key behind")
	}
	// Overwriting an existing key counts against its old size, not twice.
	if !kv.Set("a", "also tiny") {
		t.Fatal("expected overwrite within quota to succeed")
	}
}

func TestKVAvailableProbeLeavesNoTrace(t *testing.T) {
	kv := NewKV(t.TempDir(), 0)
	if !kv.Available() {
		t.Fatal("expected a temp-dir store to be available")
	}
	if kv.Has(probeKey) {
		t.Fatal("probe key must be erased after the check")
	}
}

func TestCheckVersionFirstRunWritesMarker(t *testing.T) {
	p := testStore(t)
	if p.CheckVersion() {
		t.Fatal("expected false on a store with no marker")
	}
	if !p.CheckVersion() {
		t.Fatal("expected true once the marker is written")
	}
	if got := p.KV().Get(KeyVersion, ""); got != AppVersion {
		t.Fatalf("expected marker %q, got %q", AppVersion, got)
	}
}

func TestCheckVersionMismatchPurgesNamespace(t *testing.T) {
	p := testStore(t)
	p.CheckVersion()
	p.SaveMoodEntries([]*entry.MoodEntry{
		{ID: "a", Mood: mood.Happy, Reactions: []entry.Reaction{}},
	})
	p.SaveSelectedChannel("general")

	p.KV().Set(KeyVersion, "0.9.0")
	if p.CheckVersion() {
		t.Fatal("expected false on marker mismatch")
	}

	if p.KV().Has(KeyEntries) {
		t.Fatal("expected entries to be purged")
	}
	if p.KV().Has(KeySelectedChannel) {
		t.Fatal("expected selected channel to be purged")
	}
	if got := p.KV().Get(KeyVersion, ""); got != AppVersion {
		t.Fatalf("expected fresh marker %q, got %q", AppVersion, got)
	}
}

func TestMoodEntriesRoundTrip(t *testing.T) {
	p := testStore(t)
	entries := []*entry.MoodEntry{
		{
			ID:        "a",
			UserID:    "1",
			User:      team.User{ID: "1", Name: "You", Status: team.Online},
			Mood:      mood.Excited,
			Message:   "shipped it",
			Created:   entry.Timestamp{Time: time.Date(2026, 8, 30, 9, 0, 0, 500_000_000, time.UTC)},
			ChannelID: "general",
			Reactions: []entry.Reaction{
				{ID: "r1", UserID: "2", Emoji: "🎉", Created: entry.Now()},
			},
		},
	}
	if !p.SaveMoodEntries(entries) {
		t.Fatal("expected save to succeed")
	}

	got := p.MoodEntries()
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].ID != "a" || got[0].Mood != mood.Excited || got[0].Message != "shipped it" {
		t.Fatalf("entry did not round trip: %+v", got[0])
	}
	if !got[0].Created.Equal(entries[0].Created.Time) {
		t.Fatalf("timestamp drifted: %v vs %v", got[0].Created.Time, entries[0].Created.Time)
	}
	if len(got[0].Reactions) != 1 || got[0].Reactions[0].Emoji != "🎉" {
		t.Fatalf("reactions did not round trip: %+v", got[0].Reactions)
	}
}

func TestMoodEntriesCorruptFallsBackToEmpty(t *testing.T) {
	p := testStore(t)
	p.KV().Set(KeyEntries, "{not json")
	if got := p.MoodEntries(); len(got) != 0 {
		t.Fatalf("expected empty log on corrupt data, got %d entries", len(got))
	}
}

func TestAddMoodEntryPrepends(t *testing.T) {
	p := testStore(t)
	p.AddMoodEntry(&entry.MoodEntry{ID: "first", Mood: mood.Happy, Reactions: []entry.Reaction{}})
	p.AddMoodEntry(&entry.MoodEntry{ID: "second", Mood: mood.Tired, Reactions: []entry.Reaction{}})

	got := p.MoodEntries()
	if len(got) != 2 || got[0].ID != "second" || got[1].ID != "first" {
		t.Fatalf("expected newest first, got %+v", got)
	}
}

func TestCurrentUserNullableRoundTrip(t *testing.T) {
	p := testStore(t)
	if u := p.CurrentUser(); u != nil {
		t.Fatalf("expected nil before first save, got %+v", u)
	}

	p.SaveCurrentUser(&team.User{ID: "1", Name: "You", Status: team.Online})
	u := p.CurrentUser()
	if u == nil || u.ID != "1" {
		t.Fatalf("expected user 1 back, got %+v", u)
	}

	p.SaveCurrentUser(nil)
	if u := p.CurrentUser(); u != nil {
		t.Fatalf("expected nil after signing out, got %+v", u)
	}
}

func TestSelectedChannelRoundTrip(t *testing.T) {
	p := testStore(t)
	if got := p.SelectedChannel(); got != "" {
		t.Fatalf("expected empty before first save, got %q", got)
	}
	p.SaveSelectedChannel("wellness")
	if got := p.SelectedChannel(); got != "wellness" {
		t.Fatalf("expected wellness, got %q", got)
	}
	p.SaveSelectedChannel("")
	if got := p.SelectedChannel(); got != "" {
		t.Fatalf("expected empty after clearing, got %q", got)
	}
}

func TestChannelsRoundTrip(t *testing.T) {
	p := testStore(t)
	in := []channel.Channel{
		{ID: "general", Name: "General", MemberCount: 12, Active: true},
	}
	p.SaveChannels(in)
	got := p.Channels()
	if len(got) != 1 || got[0].ID != "general" || got[0].MemberCount != 12 {
		t.Fatalf("channels did not round trip: %+v", got)
	}
}
