package entry

import "sort"

// SortFeed orders entries most-recent-first, the feed order. Entries with
// equal timestamps fall back to id so the order is stable across runs.
func SortFeed(entries []*MoodEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		left := entries[i]
		right := entries[j]
		if left == nil || right == nil {
			return left != nil
		}
		lt := left.Created.Time
		rt := right.Created.Time
		switch {
		case lt.IsZero() && rt.IsZero():
			return left.ID > right.ID
		case lt.IsZero():
			return false
		case rt.IsZero():
			return true
		default:
			if lt.Equal(rt) {
				return left.ID > right.ID
			}
			return lt.After(rt)
		}
	})
}
