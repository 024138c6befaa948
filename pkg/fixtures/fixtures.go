// Package fixtures seeds the simulated team data: the roster, the channel
// catalog, and a handful of sample entries. Seeds are used on first start
// and whenever persisted storage comes back empty.
package fixtures

import (
	"fmt"
	"time"

	"tableflip.dev/moodsync/pkg/channel"
	"tableflip.dev/moodsync/pkg/entry"
	"tableflip.dev/moodsync/pkg/mood"
	"tableflip.dev/moodsync/pkg/team"
)

// CurrentUser is the logical local user.
func CurrentUser() team.User {
	return Users()[0]
}

// Users returns the seeded four-member roster.
func Users() []team.User {
	return []team.User{
		{
			ID:         "1",
			Name:       "You",
			Email:      "user@company.com",
			Status:     team.Online,
			Department: "Development",
			Role:       "Senior Developer",
			JoinDate:   "2024-01-15",
		},
		{
			ID:         "2",
			Name:       "Sarah Johnson",
			Email:      "sarah.j@company.com",
			Status:     team.Online,
			Department: "Design",
			Role:       "UX Designer",
			JoinDate:   "2024-02-01",
		},
		{
			ID:         "3",
			Name:       "Mike Chen",
			Email:      "mike.c@company.com",
			Status:     team.Away,
			Department: "Development",
			Role:       "Frontend Developer",
			JoinDate:   "2024-03-10",
		},
		{
			ID:         "4",
			Name:       "Emma Wilson",
			Email:      "emma.w@company.com",
			Status:     team.Busy,
			Department: "Marketing",
			Role:       "Marketing Manager",
			JoinDate:   "2023-12-05",
		},
	}
}

// Channels returns the seeded channel catalog.
func Channels() []channel.Channel {
	return []channel.Channel{
		{
			ID:          "general",
			Name:        "General",
			Description: "General mood updates and check-ins",
			Color:       "#6264A7",
			Icon:        "💬",
			MemberCount: 24,
			Active:      true,
		},
		{
			ID:          "happy",
			Name:        "Happy Vibes",
			Description: "Share your good moments and wins",
			Color:       "#00BCF2",
			Icon:        "😊",
			MemberCount: 18,
			Active:      true,
		},
		{
			ID:          "stressed",
			Name:        "Stress Support",
			Description: "Support each other through challenging times",
			Color:       "#FF8C00",
			Icon:        "😰",
			MemberCount: 12,
			Active:      true,
		},
		{
			ID:          "motivated",
			Name:        "Motivation Station",
			Description: "Share goals and inspire each other",
			Color:       "#237B4B",
			Icon:        "💪",
			MemberCount: 20,
			Active:      true,
		},
		{
			ID:          "wellness",
			Name:        "Wellness Tips",
			Description: "Mental health resources and tips",
			Color:       "#8B5A9A",
			Icon:        "🧘",
			MemberCount: 15,
			Active:      true,
		},
	}
}

// DefaultChannelID is selected when no channel preference is persisted.
const DefaultChannelID = "general"

type sample struct {
	userID  string
	mood    mood.Mood
	message string
	channel string
}

var samples = []sample{
	{"2", mood.Excited, "Just finished the new prototype! Can't wait to share it with the team 🎉", "general"},
	{"3", mood.Stressed, "Dealing with some challenging bugs today. Taking it one step at a time.", "stressed"},
	{"4", mood.Motivated, "Starting the day with coffee and clear goals. Let's make it happen! ☕", "motivated"},
	{"2", mood.Happy, "Beautiful weather today! Perfect for a walking meeting ☀️", "happy"},
	{"1", mood.Content, "Good productive morning session. Ready for lunch break!", "general"},
}

// SampleEntries returns the demonstration feed, spread over the hours before
// now, most recent first. IDs are small ordinals so the demo feed is easy to
// react to by hand.
func SampleEntries(now time.Time) []*entry.MoodEntry {
	users := make(map[string]team.User, len(Users()))
	for _, u := range Users() {
		users[u.ID] = u
	}

	out := make([]*entry.MoodEntry, 0, len(samples))
	for i, s := range samples {
		out = append(out, &entry.MoodEntry{
			ID:        fmt.Sprintf("%d", i+1),
			UserID:    s.userID,
			User:      users[s.userID],
			Mood:      s.mood,
			Message:   s.message,
			Created:   entry.Timestamp{Time: now.Add(-time.Duration(i) * 2 * time.Hour)},
			ChannelID: s.channel,
			Reactions: []entry.Reaction{},
		})
	}
	return out
}
