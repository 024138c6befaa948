// Package stats derives summary statistics from the mood entry log. Every
// function here is pure: aggregates are recomputed from the full log on each
// call and never persisted as a source of truth.
package stats

import (
	"sort"
	"time"

	"tableflip.dev/moodsync/pkg/entry"
	"tableflip.dev/moodsync/pkg/mood"
	"tableflip.dev/moodsync/pkg/team"
)

// TrendWindow is the fixed length of the daily trend, in days.
const TrendWindow = 30

// Direction summarises the week-over-week movement of posting activity.
type Direction string

const (
	Up     Direction = "up"
	Down   Direction = "down"
	Stable Direction = "stable"
)

// DayBucket is one calendar day of the trend. A day nobody posted carries
// AverageMood 0 with Entries 0, distinguishable from a real zero average.
type DayBucket struct {
	Date        string  `json:"date"`
	Entries     int     `json:"entries"`
	AverageMood float64 `json:"averageMood"`
}

// MoodCount is one slice of the mood distribution.
type MoodCount struct {
	Mood       mood.Mood `json:"mood"`
	Count      int       `json:"count"`
	Percentage float64   `json:"percentage"`
}

// Contributor counts one author's entries.
type Contributor struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Entries    int    `json:"entries"`
}

// Stats is the derived aggregate over the full entry log.
type Stats struct {
	TotalEntries        int           `json:"totalEntries"`
	AverageMood         float64       `json:"averageMood"`
	MostCommonMood      mood.Mood     `json:"mostCommonMood"`
	Last7DaysCount      int           `json:"last7DaysCount"`
	ActiveUsers         int           `json:"activeUsers"`
	WeeklyChangePercent float64       `json:"weeklyChangePercent"`
	TrendDirection      Direction     `json:"trendDirection"`
	DailyTrend          []DayBucket   `json:"dailyTrend"`
	MoodDistribution    []MoodCount   `json:"moodDistribution"`
	TopContributors     []Contributor `json:"topContributors"`
}

const layoutISO = "2006-01-02"

// trendDeadband keeps a near-flat week from flapping between up and down.
const trendDeadband = 1.0

// Compute derives the full aggregate from the entry log at the instant now.
// users supplies department lookups for contributors; authors not on the
// roster report an "Unknown" department.
func Compute(entries []*entry.MoodEntry, users []team.User, now time.Time) Stats {
	s := Stats{
		TotalEntries:   len(entries),
		AverageMood:    AverageMood(entries),
		MostCommonMood: MostCommonMood(entries),
	}

	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	lastWeek := 0
	prevWeek := 0
	authors := make(map[string]struct{})
	for _, e := range entries {
		if e == nil {
			continue
		}
		t := e.Created.Time
		switch {
		case !t.Before(weekAgo):
			lastWeek++
			authors[e.UserID] = struct{}{}
		case !t.Before(twoWeeksAgo):
			prevWeek++
		}
	}
	s.Last7DaysCount = lastWeek
	s.ActiveUsers = len(authors)

	// The clamped denominator is a deliberate approximation: it avoids a
	// divide by zero at the cost of statistical purity.
	denom := prevWeek
	if denom < 1 {
		denom = 1
	}
	s.WeeklyChangePercent = float64(lastWeek-prevWeek) / float64(denom) * 100

	switch {
	case s.WeeklyChangePercent > trendDeadband:
		s.TrendDirection = Up
	case s.WeeklyChangePercent < -trendDeadband:
		s.TrendDirection = Down
	default:
		s.TrendDirection = Stable
	}

	s.DailyTrend = DailyTrend(entries, now)
	s.MoodDistribution = MoodDistribution(entries)
	s.TopContributors = TopContributors(entries, users, 10)

	return s
}

// AverageMood is the mean mood score over all entries, 5 (neutral) on an
// empty log so the empty state reads as neutral rather than zero.
func AverageMood(entries []*entry.MoodEntry) float64 {
	if len(entries) == 0 {
		return 5
	}
	total := 0
	for _, e := range entries {
		total += e.Mood.Score()
	}
	return float64(total) / float64(len(entries))
}

// MostCommonMood is the mode of the mood distribution. Ties resolve to the
// first mood reaching the maximal count in canonical enumeration order, so
// repeated calls over the same log always agree. An empty log is neutral.
func MostCommonMood(entries []*entry.MoodEntry) mood.Mood {
	if len(entries) == 0 {
		return mood.Neutral
	}
	counts := make(map[mood.Mood]int)
	for _, e := range entries {
		counts[e.Mood]++
	}
	best := mood.Neutral
	bestCount := 0
	for _, m := range mood.All() {
		if counts[m] > bestCount {
			best = m
			bestCount = counts[m]
		}
	}
	return best
}

// DailyTrend buckets the log into the fixed 30-day window ending today, one
// bucket per calendar day in local time.
func DailyTrend(entries []*entry.MoodEntry, now time.Time) []DayBucket {
	trend := make([]DayBucket, 0, TrendWindow)
	for i := 0; i < TrendWindow; i++ {
		day := now.AddDate(0, 0, -(TrendWindow - 1 - i))
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		dayEnd := dayStart.Add(24 * time.Hour)

		count := 0
		total := 0
		for _, e := range entries {
			t := e.Created.Time
			if !t.Before(dayStart) && t.Before(dayEnd) {
				count++
				total += e.Mood.Score()
			}
		}

		bucket := DayBucket{Date: dayStart.Format(layoutISO), Entries: count}
		if count > 0 {
			bucket.AverageMood = float64(total) / float64(count)
		}
		trend = append(trend, bucket)
	}
	return trend
}

// MoodDistribution counts entries per mood in canonical order, omitting
// moods with no entries.
func MoodDistribution(entries []*entry.MoodEntry) []MoodCount {
	counts := make(map[mood.Mood]int)
	for _, e := range entries {
		counts[e.Mood]++
	}
	out := make([]MoodCount, 0, len(counts))
	for _, m := range mood.All() {
		if counts[m] == 0 {
			continue
		}
		out = append(out, MoodCount{
			Mood:       m,
			Count:      counts[m],
			Percentage: float64(counts[m]) / float64(len(entries)) * 100,
		})
	}
	return out
}

// TopContributors ranks authors by entry count, descending, capped at max.
// Ranking uses the denormalized author snapshot; departments come from the
// roster when the author is still on it.
func TopContributors(entries []*entry.MoodEntry, users []team.User, max int) []Contributor {
	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.User.Name]++
	}

	departments := make(map[string]string, len(users))
	for _, u := range users {
		departments[u.Name] = u.Department
	}

	out := make([]Contributor, 0, len(counts))
	for name, count := range counts {
		dept, ok := departments[name]
		if !ok {
			dept = "Unknown"
		}
		out = append(out, Contributor{Name: name, Department: dept, Entries: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Entries == out[j].Entries {
			return out[i].Name < out[j].Name
		}
		return out[i].Entries > out[j].Entries
	})
	if len(out) > max {
		out = out[:max]
	}
	return out
}
