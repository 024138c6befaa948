// Package store is the persistence core: a capacity-bounded string
// key/value store on disk, a schema version gate, and the codec that moves
// typed aggregates through it. Nothing in this package is fatal; every
// failure degrades to a default value or a false return with a stderr
// diagnostic.
package store

import (
	"fmt"
	"os"

	"tableflip.dev/moodsync/pkg/channel"
	"tableflip.dev/moodsync/pkg/entry"
	"tableflip.dev/moodsync/pkg/team"
)

// Store owns the on-disk representation of the application state. Construct
// one at process start and pass it by reference to whatever consumes it.
type Store struct {
	kv *KV
}

// Load opens the store using the provided config, or the ambient config
// when cfg is nil.
func Load(cfg Config) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &Store{kv: NewKV(cfg.BasePath(), cfg.Quota())}, nil
}

// NewWithKV wires a Store over an existing adapter. Tests use this with
// temp-dir stores.
func NewWithKV(kv *KV) *Store {
	return &Store{kv: kv}
}

// KV exposes the underlying adapter.
func (s *Store) KV() *KV {
	return s.kv
}

// CheckVersion compares the stored version marker to AppVersion. On any
// mismatch, including an absent marker, the whole namespace is purged and
// the current marker written; there is no per-field migration. Returns
// false when data was cleared.
func (s *Store) CheckVersion() bool {
	stored := s.kv.Get(KeyVersion, "")
	if stored != AppVersion {
		s.ClearAll()
		s.kv.Set(KeyVersion, AppVersion)
		return false
	}
	return true
}

// ClearAll removes every key in the application namespace, version marker
// included.
func (s *Store) ClearAll() {
	for _, key := range Namespace() {
		s.kv.Remove(key)
	}
}

// MoodEntries loads the persisted entry log. Malformed or missing data
// yields an empty log.
func (s *Store) MoodEntries() []*entry.MoodEntry {
	wire := s.kv.Get(KeyEntries, "")
	if wire == "" {
		return []*entry.MoodEntry{}
	}
	entries, err := DecodeEntries(wire)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %v\n", err)
		return []*entry.MoodEntry{}
	}
	return entries
}

// SaveMoodEntries persists the entry log wholesale.
func (s *Store) SaveMoodEntries(entries []*entry.MoodEntry) bool {
	wire, err := EncodeEntries(entries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %v\n", err)
		return false
	}
	return s.kv.Set(KeyEntries, wire)
}

// AddMoodEntry prepends one entry to the persisted log, keeping the feed
// most-recent-first.
func (s *Store) AddMoodEntry(e *entry.MoodEntry) bool {
	entries := s.MoodEntries()
	entries = append([]*entry.MoodEntry{e}, entries...)
	return s.SaveMoodEntries(entries)
}

// CurrentUser loads the persisted current user, nil when signed out or
// never persisted.
func (s *Store) CurrentUser() *team.User {
	wire := s.kv.Get(KeyCurrentUser, "")
	if wire == "" {
		return nil
	}
	u, err := DecodeUser(wire)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %v\n", err)
		return nil
	}
	return u
}

// SaveCurrentUser persists the current user record.
func (s *Store) SaveCurrentUser(u *team.User) bool {
	wire, err := EncodeUser(u)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %v\n", err)
		return false
	}
	return s.kv.Set(KeyCurrentUser, wire)
}

// Users loads the persisted roster, empty when absent or malformed.
func (s *Store) Users() []team.User {
	wire := s.kv.Get(KeyUsers, "")
	if wire == "" {
		return []team.User{}
	}
	users, err := DecodeUsers(wire)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %v\n", err)
		return []team.User{}
	}
	return users
}

// SaveUsers persists the roster wholesale.
func (s *Store) SaveUsers(users []team.User) bool {
	wire, err := EncodeUsers(users)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %v\n", err)
		return false
	}
	return s.kv.Set(KeyUsers, wire)
}

// Channels loads the persisted channel catalog, empty when absent or
// malformed.
func (s *Store) Channels() []channel.Channel {
	wire := s.kv.Get(KeyChannels, "")
	if wire == "" {
		return []channel.Channel{}
	}
	channels, err := DecodeChannels(wire)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %v\n", err)
		return []channel.Channel{}
	}
	return channels
}

// SaveChannels persists the channel catalog wholesale.
func (s *Store) SaveChannels(channels []channel.Channel) bool {
	wire, err := EncodeChannels(channels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %v\n", err)
		return false
	}
	return s.kv.Set(KeyChannels, wire)
}

// SelectedChannel loads the selected channel pointer, empty when none is
// persisted. A dangling pointer is the caller's concern; it degrades to
// "no channel selected", never a crash.
func (s *Store) SelectedChannel() string {
	wire := s.kv.Get(KeySelectedChannel, "")
	if wire == "" {
		return ""
	}
	id, err := DecodeString(wire)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %v\n", err)
		return ""
	}
	return id
}

// SaveSelectedChannel persists the selected channel pointer.
func (s *Store) SaveSelectedChannel(id string) bool {
	wire, err := EncodeString(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %v\n", err)
		return false
	}
	return s.kv.Set(KeySelectedChannel, wire)
}

// Usage reports consumed store capacity.
func (s *Store) Usage() Usage {
	return s.kv.Usage()
}
