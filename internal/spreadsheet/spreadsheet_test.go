package spreadsheet_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/lineup-rsvp/lineup/internal/spreadsheet"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

var events = []model.Event{
	{ID: "e1", Name: "Sangeet Night", Slug: "sangeet-night"},
	{ID: "e2", Name: "Reception", Slug: "reception"},
	{ID: "e3", Name: "Brunch", Slug: "brunch"},
}

func TestLimitsFromCells(t *testing.T) {
	var cases = []struct {
		name     string
		cells    map[string]string
		expected map[string]int
	}{
		{"Zero means not invited", map[string]string{"Sangeet Night": "0", "Reception": "-1"}, map[string]int{"reception": -1}},
		{"Caps are kept verbatim", map[string]string{"Sangeet Night": "2", "Brunch": " 5 "}, map[string]int{"sangeet-night": 2, "brunch": 5}},
		{"Empty and non integer values are ignored", map[string]string{"Sangeet Night": "", "Reception": "two", "Brunch": "1.5"}, map[string]int{}},
		{"Unknown columns are ignored", map[string]string{"Mehndi": "3"}, map[string]int{}},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			if got := spreadsheet.LimitsFromCells(tcase.cells, events); !reflect.DeepEqual(got, tcase.expected) {
				t.Errorf("Wrong limits, expected %v, got %v", tcase.expected, got)
			}
		})
	}
}

func TestParseTemplateWorkbook(t *testing.T) {
	f, err := spreadsheet.TemplateWorkbook(events)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	rows, err := spreadsheet.ParseGuests(buf, events)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0].GuestName != "John Doe" || rows[0].Email != "john@example.com" {
		t.Errorf("Wrong first row %+v", rows[0])
	}
	if !reflect.DeepEqual(rows[0].EventLimits, map[string]int{"sangeet-night": -1, "reception": -1, "brunch": -1}) {
		t.Errorf("Wrong limits for first row, got %v", rows[0].EventLimits)
	}
	if rows[1].Email != "" {
		t.Errorf("Expected no email for second row, got %s", rows[1].Email)
	}
	if !reflect.DeepEqual(rows[1].EventLimits, map[string]int{"sangeet-night": 2, "brunch": -1}) {
		t.Errorf("Wrong limits for second row, got %v", rows[1].EventLimits)
	}
}

func TestGuestsWorkbook(t *testing.T) {
	guests := []model.Guest{
		{FullName: "John Doe", Email: "john@example.com", Invitations: []model.Invitation{
			{EventID: "e1", IsInvited: true, AttendeeLimit: 2},
			{EventID: "e2", IsInvited: true, AttendeeLimit: -1},
		}},
	}

	f, err := spreadsheet.GuestsWorkbook(guests, events)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	rows, err := f.GetRows("Guests")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := [][]string{
		{"Guest Name", "Email", "Sangeet Night", "Reception", "Brunch"},
		{"John Doe", "john@example.com", "2", "-1", "0"},
	}
	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("Wrong rows, expected %v, got %v", expected, rows)
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, time.December, 1, 15, 0, 0, 0, time.UTC)
	if got := spreadsheet.Filename("ana-raj", "guests", now); got != "ana-raj-guests-2025-12-01.xlsx" {
		t.Errorf("Wrong filename, got %s", got)
	}
}
