// Package mood defines the closed set of mood labels and their metadata.
package mood

import "fmt"

// Mood is one of the ten recognised mood labels.
type Mood string

const (
	Happy      Mood = "happy"
	Excited    Mood = "excited"
	Content    Mood = "content"
	Motivated  Mood = "motivated"
	Neutral    Mood = "neutral"
	Tired      Mood = "tired"
	Stressed   Mood = "stressed"
	Frustrated Mood = "frustrated"
	Anxious    Mood = "anxious"
	Sad        Mood = "sad"
)

type meta struct {
	score int
	color string
	icon  string
}

// Enumeration order is canonical: score descending. Tie-breaks in
// aggregation resolve in this order.
var order = []Mood{
	Happy, Excited, Content, Motivated, Neutral,
	Tired, Stressed, Frustrated, Anxious, Sad,
}

var metas = map[Mood]meta{
	Happy:      {10, "#00BCF2", "😊"},
	Excited:    {9, "#FF8C00", "🤩"},
	Content:    {8, "#237B4B", "😌"},
	Motivated:  {9, "#6264A7", "💪"},
	Neutral:    {5, "#666666", "😐"},
	Tired:      {4, "#8B5A9A", "😴"},
	Stressed:   {3, "#D83B01", "😰"},
	Frustrated: {2, "#E74856", "😤"},
	Anxious:    {2, "#CA5010", "😟"},
	Sad:        {1, "#005A6B", "😢"},
}

// All returns every mood in canonical order.
func All() []Mood {
	out := make([]Mood, len(order))
	copy(out, order)
	return out
}

// Parse validates a label against the closed set. Unknown labels are an
// error; nothing outside the enumeration is ever stored.
func Parse(s string) (Mood, error) {
	m := Mood(s)
	if _, ok := metas[m]; !ok {
		return "", fmt.Errorf("mood: unknown mood %q", s)
	}
	return m, nil
}

// Valid reports whether m is a member of the closed set.
func (m Mood) Valid() bool {
	_, ok := metas[m]
	return ok
}

// Score maps a mood to its 1..10 wellbeing score. Unknown moods score 0 so
// corrupt values can never inflate an average.
func (m Mood) Score() int {
	return metas[m].score
}

// Color is the display color associated with the mood.
func (m Mood) Color() string {
	return metas[m].color
}

// Icon is the emoji associated with the mood.
func (m Mood) Icon() string {
	return metas[m].icon
}

func (m Mood) String() string {
	return string(m)
}
