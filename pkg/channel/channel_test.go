package channel

import "testing"

func TestByID(t *testing.T) {
	channels := []Channel{
		{ID: "general", Name: "General"},
		{ID: "wellness", Name: "Wellness"},
	}

	c, ok := ByID(channels, "wellness")
	if !ok || c.Name != "Wellness" {
		t.Fatalf("expected wellness, got %+v ok=%v", c, ok)
	}

	if _, ok := ByID(channels, "deleted"); ok {
		t.Fatal("expected a dangling id to select nothing")
	}
}
