// Package printers renders the feed, roster, channel catalog, and stats for
// the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodsync/pkg/channel"
	"tableflip.dev/moodsync/pkg/entry"
	"tableflip.dev/moodsync/pkg/stats"
	"tableflip.dev/moodsync/pkg/team"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca-0000-171dff69f8b9  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Feed prints entries in the order given, one line per entry plus an
// indented reaction line when reactions exist.
func (pp *PrettyPrint) Feed(entries ...*entry.MoodEntry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	for _, e := range entries {
		if pp.ShowID {
			_, _ = y.Print(e.ID)
			if pad := len(spacing) - len(e.ID); pad > 0 {
				_, _ = y.Print(strings.Repeat(" ", pad))
			}
		}
		_, _ = t.Printf("%s %-10s %s", e.Mood.Icon(), e.Mood, e.User.Name)
		_, _ = f.Printf("  %s\n", e.Created.Local().Format("Jan 2 15:04"))
		if e.Message != "" {
			if pp.ShowID {
				_, _ = t.Print(spacing)
			}
			_, _ = t.Printf("   %s\n", e.Message)
		}
		if len(e.Reactions) > 0 {
			if pp.ShowID {
				_, _ = t.Print(spacing)
			}
			_, _ = f.Printf("   %s\n", reactionLine(e.Reactions))
		}
	}
	_, _ = t.Println("")
}

func reactionLine(reactions []entry.Reaction) string {
	parts := make([]string, 0, len(reactions))
	for _, r := range reactions {
		parts = append(parts, r.Emoji)
	}
	return strings.Join(parts, " ")
}

// Roster prints the team table.
func (pp *PrettyPrint) Roster(users []team.User) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("ID", "NAME", "STATUS", "DEPARTMENT", "ROLE")
	for _, u := range users {
		tbl.AddRow(u.ID, u.Name, string(u.Status), u.Department, u.Role)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Channels prints the channel catalog, marking the selected channel.
func (pp *PrettyPrint) Channels(channels []channel.Channel, selected string) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", "ID", "NAME", "MEMBERS", "DESCRIPTION")
	for _, c := range channels {
		marker := " "
		if c.ID == selected {
			marker = "*"
		}
		tbl.AddRow(marker, c.ID, fmt.Sprintf("%s %s", c.Icon, c.Name), c.MemberCount, c.Description)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Stats prints the aggregate summary, distribution, trend, and contributor
// tables.
func (pp *PrettyPrint) Stats(s stats.Stats) {
	b := color.New(color.Bold)
	f := color.New(color.Faint)

	_, _ = b.Printf("%d", s.TotalEntries)
	_, _ = f.Println(" total entries")
	_, _ = b.Printf("%.1f", s.AverageMood)
	_, _ = f.Println(" average mood (1-10)")
	_, _ = b.Print(string(s.MostCommonMood))
	_, _ = f.Println(" most common mood")
	_, _ = b.Printf("%+.1f%%", s.WeeklyChangePercent)
	_, _ = f.Printf(" from last week (%s), %d entries, %d active members\n\n",
		s.TrendDirection, s.Last7DaysCount, s.ActiveUsers)

	if len(s.MoodDistribution) > 0 {
		pp.Title("Mood distribution")
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, mc := range s.MoodDistribution {
			tbl.AddRow(mc.Mood.Icon(), string(mc.Mood), mc.Count, fmt.Sprintf("%.1f%%", mc.Percentage))
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
		pp.NewLine()
	}

	pp.Title("30-day trend")
	pp.Trend(s.DailyTrend)
	pp.NewLine()

	if len(s.TopContributors) > 0 {
		pp.Title("Top contributors")
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow("NAME", "DEPARTMENT", "ENTRIES")
		for _, tc := range s.TopContributors {
			tbl.AddRow(tc.Name, tc.Department, tc.Entries)
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
	}
}

// Trend prints one row per day with a crude bar chart of the day's average.
func (pp *PrettyPrint) Trend(trend []stats.DayBucket) {
	f := color.New(color.Faint)
	t := color.New()
	for _, day := range trend {
		if day.Entries == 0 {
			continue
		}
		bar := strings.Repeat("▪", int(day.AverageMood+0.5))
		_, _ = f.Printf("%s  ", day.Date)
		_, _ = t.Printf("%-10s %.1f (%d)\n", bar, day.AverageMood, day.Entries)
	}
}

// Usage prints store capacity consumption.
func (pp *PrettyPrint) Usage(used, total int64, percentage float64) {
	f := color.New(color.Faint)
	_, _ = f.Printf("storage: %d of %d bytes (%.1f%%)\n", used, total, percentage)
}
