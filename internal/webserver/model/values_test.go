package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

func TestSlugify(t *testing.T) {
	var cases = []struct {
		text     string
		expected string
	}{
		{"Sarah & James' Wedding", "sarah-james-wedding"},
		{"  Mehndi Night!! ", "mehndi-night"},
		{"Reception 2025", "reception-2025"},
		{"---", ""},
		{"Café Brunch", "caf-brunch"},
	}

	for _, tcase := range cases {
		if got := model.Slugify(tcase.text); got != tcase.expected {
			t.Errorf("Slugify(%q): expected %q, got %q", tcase.text, tcase.expected, got)
		}
	}
}

func TestParseClock(t *testing.T) {
	var cases = []struct {
		value  string
		hour   int
		minute int
		valid  bool
	}{
		{"16:00", 16, 0, true},
		{"4:30 PM", 16, 30, true},
		{"4:30pm", 16, 30, true},
		{"09:15 am", 9, 15, true},
		{"12:00 AM", 0, 0, true},
		{"18:45:00", 18, 45, true},
		{"25:00", 0, 0, false},
		{"noon", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tcase := range cases {
		hour, minute, err := model.ParseClock(tcase.value)
		if (err == nil) != tcase.valid {
			t.Errorf("ParseClock(%q): unexpected error value %v", tcase.value, err)
			continue
		}
		if hour != tcase.hour || minute != tcase.minute {
			t.Errorf("ParseClock(%q): expected %02d:%02d, got %02d:%02d", tcase.value, tcase.hour, tcase.minute, hour, minute)
		}
	}
}

func TestEventNormalizeSetsEpoch(t *testing.T) {
	event := model.Event{
		Name: " Ceremony ",
		Date: time.Date(2025, time.December, 15, 13, 0, 0, 0, time.FixedZone("X", 3600)),
		Time: "4:00 PM",
	}
	event.Normalize()

	expected := time.Date(2025, time.December, 15, 16, 0, 0, 0, time.UTC).UnixMilli()
	if int64(event.EpochTime) != expected {
		t.Errorf("Expected epoch %d, got %d", expected, event.EpochTime)
	}
	if event.Slug != "ceremony" || event.Name != "Ceremony" {
		t.Errorf("Unexpected name %q or slug %q", event.Name, event.Slug)
	}

	event.Time = "whenever"
	event.Normalize()
	midnight := time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC).UnixMilli()
	if int64(event.EpochTime) != midnight {
		t.Errorf("Expected the epoch to fall back to the date, got %d", event.EpochTime)
	}
}

func TestEpochMillisJSON(t *testing.T) {
	summary := struct {
		EpochTime model.EpochMillis `json:"epochTime"`
	}{EpochTime: 1765814400000}

	encoded, err := json.Marshal(summary)
	if err != nil {
		t.Fatal(err)
	}
	if string(encoded) != `{"epochTime":"1765814400000"}` {
		t.Errorf("Unexpected encoding %s", encoded)
	}

	for _, input := range []string{`"1765814400000"`, `1765814400000`} {
		var epoch model.EpochMillis
		if err := json.Unmarshal([]byte(input), &epoch); err != nil {
			t.Fatalf("Unexpected error decoding %s: %v", input, err)
		}
		if epoch != 1765814400000 {
			t.Errorf("Expected 1765814400000, got %d", epoch)
		}
	}

	var epoch model.EpochMillis
	if err := json.Unmarshal([]byte(`"soon"`), &epoch); err == nil {
		t.Error("Expected an error decoding a non numeric string")
	}
}

func TestStartsAtUsesStoredDay(t *testing.T) {
	stored := time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC)
	scanned := stored.In(time.FixedZone("PST", -8*3600))

	start, err := model.StartsAt(scanned, "4:00 PM")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := time.Date(2025, time.December, 15, 16, 0, 0, 0, time.UTC)
	if !start.Equal(expected) {
		t.Errorf("Expected %s, got %s", expected, start)
	}
}
