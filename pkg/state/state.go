// Package state owns the live application state: three independent slices
// (user, mood, channel) mutated only through named intents. The container is
// explicitly constructed and holds the authoritative in-memory truth for a
// session; selected slices are opportunistically written back through the
// persistence store after each transition.
package state

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/moodsync/pkg/channel"
	"tableflip.dev/moodsync/pkg/entry"
	"tableflip.dev/moodsync/pkg/fixtures"
	"tableflip.dev/moodsync/pkg/stats"
	"tableflip.dev/moodsync/pkg/store"
	"tableflip.dev/moodsync/pkg/team"
)

// UserSlice is the identity partition of the state tree.
type UserSlice struct {
	CurrentUser   *team.User
	Users         []team.User
	Authenticated bool
}

// ChannelSlice is the channel partition of the state tree.
type ChannelSlice struct {
	Channels          []channel.Channel
	SelectedChannelID string
}

// MoodSlice is the entry log partition. TotalEntries and AverageMood are
// cached aggregates recomputed inside the same transition that mutates the
// log.
type MoodSlice struct {
	Entries      []*entry.MoodEntry
	TotalEntries int
	AverageMood  float64
}

// Container is the single owner of live data. Construct with New at process
// start and pass by reference; all access happens from one logical thread of
// control.
type Container struct {
	store *store.Store // nil means memory-only (degraded but functional)

	user    UserSlice
	channel ChannelSlice
	mood    MoodSlice
	stats   stats.Stats

	now func() time.Time
}

// New builds an empty container over the given store. A nil store leaves the
// container in memory-only mode.
func New(s *store.Store) *Container {
	c := &Container{store: s, now: time.Now}
	c.mood.Entries = []*entry.MoodEntry{}
	c.mood.AverageMood = 5
	c.refreshStats()
	return c
}

// Load runs the startup path: version gate, then hydration of every slice
// from persisted storage, falling back to fixture data where storage is
// empty or absent. It reports whether persisted data survived the version
// gate.
func (c *Container) Load() bool {
	valid := true
	if c.store != nil {
		valid = c.store.CheckVersion()
	}

	users := c.loadUsers()
	cur := c.loadCurrentUser()
	channels := c.loadChannels()
	selected := c.loadSelectedChannel()
	entries := c.loadEntries()

	c.user = UserSlice{CurrentUser: cur, Users: users, Authenticated: cur != nil}
	c.channel = ChannelSlice{Channels: channels, SelectedChannelID: selected}
	c.mood = MoodSlice{
		Entries:      entries,
		TotalEntries: len(entries),
		AverageMood:  stats.AverageMood(entries),
	}
	c.refreshStats()
	return valid
}

func (c *Container) loadUsers() []team.User {
	if c.store != nil {
		if users := c.store.Users(); len(users) > 0 {
			return users
		}
	}
	users := fixtures.Users()
	if c.store != nil {
		c.store.SaveUsers(users)
	}
	return users
}

func (c *Container) loadCurrentUser() *team.User {
	if c.store != nil {
		if u := c.store.CurrentUser(); u != nil {
			return u
		}
	}
	u := fixtures.CurrentUser()
	if c.store != nil {
		c.store.SaveCurrentUser(&u)
	}
	return &u
}

func (c *Container) loadChannels() []channel.Channel {
	if c.store != nil {
		if channels := c.store.Channels(); len(channels) > 0 {
			return channels
		}
	}
	channels := fixtures.Channels()
	if c.store != nil {
		c.store.SaveChannels(channels)
	}
	return channels
}

func (c *Container) loadSelectedChannel() string {
	if c.store != nil {
		if id := c.store.SelectedChannel(); id != "" {
			return id
		}
	}
	if c.store != nil {
		c.store.SaveSelectedChannel(fixtures.DefaultChannelID)
	}
	return fixtures.DefaultChannelID
}

func (c *Container) loadEntries() []*entry.MoodEntry {
	if c.store != nil && c.store.KV().Has(store.KeyEntries) {
		// An explicitly persisted empty log stays empty; only a log that
		// was never written gets the demo seed.
		return c.store.MoodEntries()
	}
	entries := fixtures.SampleEntries(c.now())
	if c.store != nil {
		c.store.SaveMoodEntries(entries)
	}
	return entries
}

func (c *Container) refreshStats() {
	c.stats = stats.Compute(c.mood.Entries, c.user.Users, c.now())
}

// Stats returns the aggregate derived from the current entry log.
func (c *Container) Stats() stats.Stats {
	return c.stats
}

// Entries returns the feed, most-recent-first. The returned slice is a copy;
// entries themselves are shared but treated as immutable by callers.
func (c *Container) Entries() []*entry.MoodEntry {
	return append([]*entry.MoodEntry(nil), c.mood.Entries...)
}

// EntriesForChannel filters the feed to one channel. A dangling channel id
// yields an empty feed, not an error.
func (c *Container) EntriesForChannel(channelID string) []*entry.MoodEntry {
	out := make([]*entry.MoodEntry, 0, len(c.mood.Entries))
	for _, e := range c.mood.Entries {
		if e.ChannelID == channelID {
			out = append(out, e)
		}
	}
	return out
}

// Users returns the roster.
func (c *Container) Users() []team.User {
	return append([]team.User(nil), c.user.Users...)
}

// CurrentUser returns the signed-in user, nil after logout.
func (c *Container) CurrentUser() *team.User {
	return c.user.CurrentUser
}

// Channels returns the channel catalog.
func (c *Container) Channels() []channel.Channel {
	return append([]channel.Channel(nil), c.channel.Channels...)
}

// SelectedChannel resolves the selected channel pointer. A dangling or empty
// pointer degrades to "no channel selected".
func (c *Container) SelectedChannel() (channel.Channel, bool) {
	if c.channel.SelectedChannelID == "" {
		return channel.Channel{}, false
	}
	return channel.ByID(c.channel.Channels, c.channel.SelectedChannelID)
}

// SelectedChannelID returns the raw pointer, empty when unset.
func (c *Container) SelectedChannelID() string {
	return c.channel.SelectedChannelID
}

// Usage reports consumed store capacity; zeroes in memory-only mode.
func (c *Container) Usage() store.Usage {
	if c.store == nil {
		return store.Usage{}
	}
	return c.store.Usage()
}

// Watch subscribes to persistence change events.
func (c *Container) Watch(ctx context.Context) (<-chan store.Event, error) {
	if c.store == nil {
		return nil, errors.New("state: no persistence configured")
	}
	return c.store.Watch(ctx)
}
