// Package entry defines the mood entry log records.
package entry

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"tableflip.dev/moodsync/pkg/mood"
	"tableflip.dev/moodsync/pkg/team"
)

// MaxMessageLen bounds the optional free-text message, in runes.
const MaxMessageLen = 500

// Reaction is appended to an entry's reaction list in arrival order.
// Duplicate (user, emoji) pairs are allowed at this layer; deduplication is
// a presentation concern.
type Reaction struct {
	ID      string    `json:"id"`
	UserID  string    `json:"userId"`
	Emoji   string    `json:"emoji"`
	Created Timestamp `json:"timestamp"`
}

// MoodEntry is an immutable fact once created; only its reaction list grows.
// User is a denormalized snapshot of the author at posting time and is never
// refreshed.
type MoodEntry struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	User      team.User  `json:"user"`
	Mood      mood.Mood  `json:"mood"`
	Message   string     `json:"message,omitempty"`
	Created   Timestamp  `json:"timestamp"`
	ChannelID string     `json:"channelId"`
	Reactions []Reaction `json:"reactions"`
}

// New builds a mood entry with a fresh id and the current timestamp.
func New(author team.User, m mood.Mood, message, channelID string) *MoodEntry {
	return &MoodEntry{
		ID:        uuid.NewString(),
		UserID:    author.ID,
		User:      author,
		Mood:      m,
		Message:   message,
		Created:   Now(),
		ChannelID: channelID,
		Reactions: []Reaction{},
	}
}

// NewReaction builds a reaction with a fresh id and the current timestamp.
func NewReaction(userID, emoji string) Reaction {
	return Reaction{
		ID:      uuid.NewString(),
		UserID:  userID,
		Emoji:   emoji,
		Created: Now(),
	}
}

// ValidateMessage enforces the message length bound.
func ValidateMessage(message string) error {
	if n := utf8.RuneCountInString(message); n > MaxMessageLen {
		return fmt.Errorf("entry: message too long (%d runes, max %d)", n, MaxMessageLen)
	}
	return nil
}

// Clone returns a deep copy so callers can hand out entries without sharing
// the reaction slice.
func (e *MoodEntry) Clone() *MoodEntry {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Reactions = append([]Reaction(nil), e.Reactions...)
	return &cp
}
