package note

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewTrimsContent(t *testing.T) {
	n := New("  Buy milk \n", "2024-03-01", Pink, 1.5)
	if n.Content != "Buy milk" {
		t.Fatalf("expected trimmed content, got %q", n.Content)
	}
	if n.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if n.Created.IsZero() {
		t.Fatalf("expected creation instant")
	}
	if err := n.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		n    Note
		ok   bool
	}{
		{"valid", Note{ID: "a", Content: "hi", Date: "2024-03-01", Color: Blue}, true},
		{"whitespace content", Note{ID: "a", Content: " \t\n", Date: "2024-03-01", Color: Blue}, false},
		{"bad date", Note{ID: "a", Content: "hi", Date: "march 1st", Color: Blue}, false},
		{"unknown color", Note{ID: "a", Content: "hi", Date: "2024-03-01", Color: Color("chartreuse")}, false},
	}
	for _, tc := range cases {
		err := tc.n.Validate()
		if tc.ok && err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestNormalizeRepairsStaleColor(t *testing.T) {
	n := Note{ID: "a", Content: "hi", Date: "2024-03-01", Color: Color("neon")}
	n.Normalize()
	if n.Color != DefaultColor {
		t.Fatalf("expected fallback to %s, got %s", DefaultColor, n.Color)
	}
}

func TestTimestampJSONRoundTrip(t *testing.T) {
	n := Note{
		ID:      "a",
		Content: "hi",
		Date:    "2024-03-01",
		Created: Timestamp{Time: time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)},
		Color:   Green,
	}
	data, err := json.Marshal(&n)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Note
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Created.Equal(n.Created.Time) {
		t.Fatalf("expected %v, got %v", n.Created, got.Created)
	}
}

func TestParseColor(t *testing.T) {
	if c, err := ParseColor(" Pink "); err != nil || c != Pink {
		t.Fatalf("expected pink, got %s (%v)", c, err)
	}
	if c, err := ParseColor(""); err != nil || c != DefaultColor {
		t.Fatalf("expected default for empty input, got %s (%v)", c, err)
	}
	if _, err := ParseColor("mauve"); err == nil {
		t.Fatalf("expected error for unknown color")
	}
}
