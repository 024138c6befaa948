package state

import (
	"fmt"

	"tableflip.dev/moodsync/pkg/entry"
	"tableflip.dev/moodsync/pkg/mood"
	"tableflip.dev/moodsync/pkg/stats"
	"tableflip.dev/moodsync/pkg/team"
)

// EntryPayload is the addMoodEntry intent. Id and timestamp are assigned by
// the transition, not the caller.
type EntryPayload struct {
	Author    team.User
	Mood      mood.Mood
	Message   string
	ChannelID string
}

func addMoodEntry(s MoodSlice, e *entry.MoodEntry) MoodSlice {
	s.Entries = append([]*entry.MoodEntry{e}, s.Entries...)
	s.TotalEntries = len(s.Entries)
	s.AverageMood = stats.AverageMood(s.Entries)
	return s
}

func setMoodEntries(s MoodSlice, entries []*entry.MoodEntry) MoodSlice {
	s.Entries = append([]*entry.MoodEntry(nil), entries...)
	s.TotalEntries = len(s.Entries)
	s.AverageMood = stats.AverageMood(s.Entries)
	return s
}

func addReaction(s MoodSlice, entryID string, r entry.Reaction) (MoodSlice, bool) {
	for i, e := range s.Entries {
		if e.ID != entryID {
			continue
		}
		cp := e.Clone()
		cp.Reactions = append(cp.Reactions, r)
		entries := append([]*entry.MoodEntry(nil), s.Entries...)
		entries[i] = cp
		s.Entries = entries
		return s, true
	}
	return s, false
}

// AddMoodEntry validates the payload at the boundary, assigns a fresh id and
// the current timestamp, prepends the entry to the log, and recomputes the
// slice's cached aggregates in the same transition.
func (c *Container) AddMoodEntry(p EntryPayload) (*entry.MoodEntry, error) {
	if !p.Mood.Valid() {
		return nil, fmt.Errorf("state: unknown mood %q", p.Mood)
	}
	if err := entry.ValidateMessage(p.Message); err != nil {
		return nil, err
	}

	e := entry.New(p.Author, p.Mood, p.Message, p.ChannelID)
	c.mood = addMoodEntry(c.mood, e)
	c.persistEntries()
	c.refreshStats()
	return e, nil
}

// SetMoodEntries replaces the entry log wholesale.
func (c *Container) SetMoodEntries(entries []*entry.MoodEntry) {
	c.mood = setMoodEntries(c.mood, entries)
	c.persistEntries()
	c.refreshStats()
}

// AddReaction appends a reaction to the matching entry, in arrival order.
// Duplicate (user, emoji) pairs are allowed; dedup is left to presentation.
// An unknown entry id is a no-op and returns false with the state tree
// unchanged.
func (c *Container) AddReaction(entryID, userID, emoji string) bool {
	next, ok := addReaction(c.mood, entryID, entry.NewReaction(userID, emoji))
	if !ok {
		return false
	}
	c.mood = next
	c.persistEntries()
	return true
}

func (c *Container) persistEntries() {
	if c.store != nil {
		c.store.SaveMoodEntries(c.mood.Entries)
	}
}
