package state

import (
	"testing"

	"tableflip.dev/moodsync/pkg/entry"
	"tableflip.dev/moodsync/pkg/fixtures"
	"tableflip.dev/moodsync/pkg/mood"
	"tableflip.dev/moodsync/pkg/store"
	"tableflip.dev/moodsync/pkg/team"
)

func testContainer(t *testing.T) *Container {
	t.Helper()
	return New(store.NewWithKV(store.NewKV(t.TempDir(), 0)))
}

func author() team.User {
	return team.User{ID: "1", Name: "You", Status: team.Online}
}

func TestNewStartsNeutral(t *testing.T) {
	c := New(nil)
	if c.mood.AverageMood != 5 {
		t.Fatalf("expected neutral average on an empty log, got %.1f", c.mood.AverageMood)
	}
	if len(c.Entries()) != 0 {
		t.Fatalf("expected an empty feed, got %d entries", len(c.Entries()))
	}
}

func TestAddMoodEntryPrependsAndRecomputes(t *testing.T) {
	c := New(nil)

	first, err := c.AddMoodEntry(EntryPayload{Author: author(), Mood: mood.Happy, ChannelID: "general"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := c.AddMoodEntry(EntryPayload{Author: author(), Mood: mood.Sad, Message: "rough day", ChannelID: "general"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	feed := c.Entries()
	if len(feed) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(feed))
	}
	if feed[0].ID != second.ID || feed[1].ID != first.ID {
		t.Fatal("expected newest entry first")
	}
	if c.mood.TotalEntries != 2 {
		t.Fatalf("expected cached count 2, got %d", c.mood.TotalEntries)
	}
	// happy (10) and sad (1) average to 5.5.
	if c.mood.AverageMood != 5.5 {
		t.Fatalf("expected cached average 5.5, got %.2f", c.mood.AverageMood)
	}
}

func TestAddMoodEntryRejectsInvalidPayload(t *testing.T) {
	c := New(nil)
	if _, err := c.AddMoodEntry(EntryPayload{Author: author(), Mood: "grumpy"}); err == nil {
		t.Fatal("expected error for unknown mood")
	}
	long := make([]byte, entry.MaxMessageLen+1)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := c.AddMoodEntry(EntryPayload{Author: author(), Mood: mood.Happy, Message: string(long)}); err == nil {
		t.Fatal("expected error for over-length message")
	}
	if len(c.Entries()) != 0 {
		t.Fatal("rejected payloads must not touch the log")
	}
}

func TestAddReactionUnknownEntryIsNoOp(t *testing.T) {
	c := New(nil)
	e, err := c.AddMoodEntry(EntryPayload{Author: author(), Mood: mood.Content, ChannelID: "general"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if c.AddReaction("no-such-entry", "2", "👍") {
		t.Fatal("expected false for an unknown entry id")
	}
	if got := c.Entries()[0]; len(got.Reactions) != 0 {
		t.Fatalf("no-op reaction must leave the log unchanged, got %+v", got.Reactions)
	}

	if !c.AddReaction(e.ID, "2", "👍") {
		t.Fatal("expected reaction to land")
	}
	// The same person may react with the same emoji again.
	if !c.AddReaction(e.ID, "2", "👍") {
		t.Fatal("expected duplicate reaction to land")
	}
	if got := c.Entries()[0]; len(got.Reactions) != 2 {
		t.Fatalf("expected 2 reactions, got %d", len(got.Reactions))
	}
}

func TestEntriesForChannelFilters(t *testing.T) {
	c := New(nil)
	if _, err := c.AddMoodEntry(EntryPayload{Author: author(), Mood: mood.Happy, ChannelID: "general"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := c.AddMoodEntry(EntryPayload{Author: author(), Mood: mood.Tired, ChannelID: "wellness"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	if got := c.EntriesForChannel("wellness"); len(got) != 1 || got[0].Mood != mood.Tired {
		t.Fatalf("unexpected channel feed: %+v", got)
	}
	if got := c.EntriesForChannel("no-such-channel"); len(got) != 0 {
		t.Fatalf("expected empty feed for a dangling channel, got %d", len(got))
	}
}

func TestUpdateUserStatusSyncsCurrentUser(t *testing.T) {
	c := New(nil)
	me := author()
	c.SetUsers([]team.User{me, {ID: "2", Name: "Them", Status: team.Online}})
	c.SetCurrentUser(me)

	c.UpdateUserStatus("1", team.Away)

	if got := c.CurrentUser(); got == nil || got.Status != team.Away {
		t.Fatalf("expected current user to follow the roster, got %+v", got)
	}
	for _, u := range c.Users() {
		if u.ID == "1" && u.Status != team.Away {
			t.Fatalf("expected roster status away, got %q", u.Status)
		}
		if u.ID == "2" && u.Status != team.Online {
			t.Fatalf("other users must not change, got %q", u.Status)
		}
	}
}

func TestLogoutKeepsRoster(t *testing.T) {
	c := New(nil)
	me := author()
	c.SetUsers([]team.User{me})
	c.SetCurrentUser(me)

	c.Logout()

	if c.CurrentUser() != nil {
		t.Fatal("expected nil current user after logout")
	}
	if len(c.Users()) != 1 {
		t.Fatal("logout must not touch the roster")
	}
}

func TestDanglingSelectedChannelDegrades(t *testing.T) {
	c := New(nil)
	c.SetSelectedChannel("deleted-channel")
	if _, ok := c.SelectedChannel(); ok {
		t.Fatal("expected a dangling pointer to resolve to no selection")
	}
	if got := c.SelectedChannelID(); got != "deleted-channel" {
		t.Fatalf("raw pointer must survive, got %q", got)
	}
}

func TestLoadSeedsFixturesOnEmptyStore(t *testing.T) {
	c := testContainer(t)
	if c.Load() {
		t.Fatal("expected false on first load, the version marker is new")
	}

	if len(c.Users()) != len(fixtures.Users()) {
		t.Fatalf("expected the demo roster, got %d users", len(c.Users()))
	}
	if c.CurrentUser() == nil {
		t.Fatal("expected a demo current user")
	}
	if len(c.Channels()) != len(fixtures.Channels()) {
		t.Fatalf("expected the demo channels, got %d", len(c.Channels()))
	}
	if got := c.SelectedChannelID(); got != fixtures.DefaultChannelID {
		t.Fatalf("expected default channel selected, got %q", got)
	}
	if len(c.Entries()) == 0 {
		t.Fatal("expected demo entries on an empty store")
	}
}

func TestLoadKeepsPersistedEmptyLog(t *testing.T) {
	kv := store.NewKV(t.TempDir(), 0)

	c := New(store.NewWithKV(kv))
	c.Load()
	c.SetMoodEntries([]*entry.MoodEntry{})

	// A second session over the same store must not re-seed the demo feed.
	c2 := New(store.NewWithKV(kv))
	if !c2.Load() {
		t.Fatal("expected the version marker to hold across sessions")
	}
	if got := c2.Entries(); len(got) != 0 {
		t.Fatalf("expected the persisted empty log to stay empty, got %d entries", len(got))
	}
}

func TestLoadHydratesPersistedState(t *testing.T) {
	kv := store.NewKV(t.TempDir(), 0)

	c := New(store.NewWithKV(kv))
	c.Load()
	e, err := c.AddMoodEntry(EntryPayload{Author: author(), Mood: mood.Motivated, Message: "sprint start", ChannelID: "general"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	c.SetSelectedChannel("wellness")

	c2 := New(store.NewWithKV(kv))
	if !c2.Load() {
		t.Fatal("expected persisted data to survive")
	}
	feed := c2.Entries()
	if len(feed) == 0 || feed[0].ID != e.ID {
		t.Fatalf("expected the new entry at the head of the feed, got %+v", feed)
	}
	if got := c2.SelectedChannelID(); got != "wellness" {
		t.Fatalf("expected wellness selected, got %q", got)
	}
}

func TestStatsFollowTheLog(t *testing.T) {
	c := New(nil)
	if got := c.Stats(); got.TotalEntries != 0 || got.AverageMood != 5 {
		t.Fatalf("unexpected empty stats: %+v", got)
	}

	if _, err := c.AddMoodEntry(EntryPayload{Author: author(), Mood: mood.Happy, ChannelID: "general"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	got := c.Stats()
	if got.TotalEntries != 1 || got.AverageMood != 10 || got.MostCommonMood != mood.Happy {
		t.Fatalf("stats did not follow the log: %+v", got)
	}
}
