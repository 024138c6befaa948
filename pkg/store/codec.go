package store

import (
	"encoding/json"
	"fmt"

	"tableflip.dev/moodsync/pkg/channel"
	"tableflip.dev/moodsync/pkg/entry"
	"tableflip.dev/moodsync/pkg/team"
)

// The codec turns persisted aggregates into their wire strings and back.
// Decoding is strict: a document either reconstructs entirely, with every
// timestamp restored and every enumeration value inside its closed set, or
// it is rejected. There is no partial recovery; callers fall back to their
// default wholesale.

// EncodeEntries serialises the entry log.
func EncodeEntries(entries []*entry.MoodEntry) (string, error) {
	data, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("codec: encode entries: %w", err)
	}
	return string(data), nil
}

// DecodeEntries reconstructs the entry log, restoring timestamp fields from
// their RFC3339 wire form for every entry and nested reaction.
func DecodeEntries(wire string) ([]*entry.MoodEntry, error) {
	var entries []*entry.MoodEntry
	if err := json.Unmarshal([]byte(wire), &entries); err != nil {
		return nil, fmt.Errorf("codec: decode entries: %w", err)
	}
	for i, e := range entries {
		if e == nil {
			return nil, fmt.Errorf("codec: decode entries: null entry at index %d", i)
		}
		if e.ID == "" {
			return nil, fmt.Errorf("codec: decode entries: entry at index %d missing id", i)
		}
		if !e.Mood.Valid() {
			return nil, fmt.Errorf("codec: decode entries: entry %s has unknown mood %q", e.ID, e.Mood)
		}
		if e.Reactions == nil {
			e.Reactions = []entry.Reaction{}
		}
		for _, r := range e.Reactions {
			if r.ID == "" {
				return nil, fmt.Errorf("codec: decode entries: entry %s has a reaction missing id", e.ID)
			}
		}
	}
	if entries == nil {
		entries = []*entry.MoodEntry{}
	}
	return entries, nil
}

// EncodeUsers serialises the roster.
func EncodeUsers(users []team.User) (string, error) {
	data, err := json.Marshal(users)
	if err != nil {
		return "", fmt.Errorf("codec: encode users: %w", err)
	}
	return string(data), nil
}

// DecodeUsers reconstructs the roster, rejecting records outside the
// presence enumeration.
func DecodeUsers(wire string) ([]team.User, error) {
	var users []team.User
	if err := json.Unmarshal([]byte(wire), &users); err != nil {
		return nil, fmt.Errorf("codec: decode users: %w", err)
	}
	for i, u := range users {
		if u.ID == "" {
			return nil, fmt.Errorf("codec: decode users: user at index %d missing id", i)
		}
		if !u.Status.Valid() {
			return nil, fmt.Errorf("codec: decode users: user %s has unknown status %q", u.ID, u.Status)
		}
	}
	if users == nil {
		users = []team.User{}
	}
	return users, nil
}

// EncodeUser serialises a single nullable user.
func EncodeUser(u *team.User) (string, error) {
	data, err := json.Marshal(u)
	if err != nil {
		return "", fmt.Errorf("codec: encode user: %w", err)
	}
	return string(data), nil
}

// DecodeUser reconstructs a single nullable user.
func DecodeUser(wire string) (*team.User, error) {
	var u *team.User
	if err := json.Unmarshal([]byte(wire), &u); err != nil {
		return nil, fmt.Errorf("codec: decode user: %w", err)
	}
	if u != nil {
		if u.ID == "" {
			return nil, fmt.Errorf("codec: decode user: missing id")
		}
		if !u.Status.Valid() {
			return nil, fmt.Errorf("codec: decode user: unknown status %q", u.Status)
		}
	}
	return u, nil
}

// EncodeChannels serialises the channel catalog.
func EncodeChannels(channels []channel.Channel) (string, error) {
	data, err := json.Marshal(channels)
	if err != nil {
		return "", fmt.Errorf("codec: encode channels: %w", err)
	}
	return string(data), nil
}

// DecodeChannels reconstructs the channel catalog.
func DecodeChannels(wire string) ([]channel.Channel, error) {
	var channels []channel.Channel
	if err := json.Unmarshal([]byte(wire), &channels); err != nil {
		return nil, fmt.Errorf("codec: decode channels: %w", err)
	}
	for i, c := range channels {
		if c.ID == "" {
			return nil, fmt.Errorf("codec: decode channels: channel at index %d missing id", i)
		}
	}
	if channels == nil {
		channels = []channel.Channel{}
	}
	return channels, nil
}

// EncodeString serialises a nullable plain string value (the selected
// channel pointer).
func EncodeString(s string) (string, error) {
	if s == "" {
		return "null", nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("codec: encode string: %w", err)
	}
	return string(data), nil
}

// DecodeString reconstructs a nullable plain string value. JSON null decodes
// to the empty string.
func DecodeString(wire string) (string, error) {
	var s *string
	if err := json.Unmarshal([]byte(wire), &s); err != nil {
		return "", fmt.Errorf("codec: decode string: %w", err)
	}
	if s == nil {
		return "", nil
	}
	return *s, nil
}
