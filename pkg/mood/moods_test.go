package mood

import "testing"

func TestParseAcceptsEveryMood(t *testing.T) {
	for _, m := range All() {
		got, err := Parse(string(m))
		if err != nil {
			t.Fatalf("parse %q: %v", m, err)
		}
		if got != m {
			t.Fatalf("expected %q, got %q", m, got)
		}
	}
}

func TestParseRejectsUnknownLabels(t *testing.T) {
	for _, s := range []string{"", "grumpy", "Happy", "happy "} {
		if _, err := Parse(s); err == nil {
			t.Fatalf("expected error parsing %q", s)
		}
	}
}

func TestScores(t *testing.T) {
	want := map[Mood]int{
		Happy:      10,
		Excited:    9,
		Content:    8,
		Motivated:  9,
		Neutral:    5,
		Tired:      4,
		Stressed:   3,
		Frustrated: 2,
		Anxious:    2,
		Sad:        1,
	}
	for m, score := range want {
		if got := m.Score(); got != score {
			t.Fatalf("expected %q to score %d, got %d", m, score, got)
		}
	}
}

func TestUnknownMoodScoresZero(t *testing.T) {
	if got := Mood("grumpy").Score(); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestAllIsClosedAndOrdered(t *testing.T) {
	all := All()
	if len(all) != 10 {
		t.Fatalf("expected 10 moods, got %d", len(all))
	}
	if all[0] != Happy || all[len(all)-1] != Sad {
		t.Fatalf("unexpected enumeration order: %v", all)
	}
	// Callers must not be able to reorder the canonical enumeration.
	all[0] = Sad
	if All()[0] != Happy {
		t.Fatal("All leaked the internal order slice")
	}
}
