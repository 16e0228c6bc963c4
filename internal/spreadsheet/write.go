package spreadsheet

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lineup-rsvp/lineup/internal/webserver/model"
	"github.com/xuri/excelize/v2"
)

const (
	guestsSheet       = "Guests"
	responsesSheet    = "Responses"
	instructionsSheet = "Instructions"
	defaultSheet      = "Sheet1"
)

// Filename returns the name of an exported workbook, e. g. "ana-raj-guests-2025-12-01.xlsx"
func Filename(lineupSlug, kind string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%s.xlsx", lineupSlug, kind, now.Format(model.DateLayout))
}

// GuestsWorkbook lists guests with their attendee limit for every event, 0 meaning not invited.
// Guests' invitations must be loaded.
func GuestsWorkbook(guests []model.Guest, events []model.Event) (*excelize.File, error) {
	header := []any{ColumnGuestName, ColumnEmail}
	for _, event := range events {
		header = append(header, event.Name)
	}

	rows := make([][]any, 0, len(guests))
	for _, guest := range guests {
		row := []any{guest.FullName, guest.Email}
		for _, event := range events {
			row = append(row, guest.InvitedTo(event.ID))
		}
		rows = append(rows, row)
	}

	return workbook(guestsSheet, header, rows)
}

// ResponsesWorkbook lists responses, which must have their guest and event loaded
func ResponsesWorkbook(responses []model.Response) (*excelize.File, error) {
	header := []any{ColumnGuestName, ColumnEmail, "Event", "Event Date", "Event Time", "Attending", "Attendee Count", "Responded At"}

	rows := make([][]any, 0, len(responses))
	for _, response := range responses {
		attending := "No"
		if response.IsAttending {
			attending = "Yes"
		}
		rows = append(rows, []any{
			response.Guest.FullName,
			response.Guest.Email,
			response.Event.Name,
			response.Event.Date.Format(model.DateLayout),
			response.Event.Time,
			attending,
			response.AttendeeCount,
			response.UpdatedAt.UTC().Format("2006-01-02 15:04"),
		})
	}

	return workbook(responsesSheet, header, rows)
}

// TemplateWorkbook returns a sample import file with three example guests and an instructions sheet
func TemplateWorkbook(events []model.Event) (*excelize.File, error) {
	header := []any{ColumnGuestName, ColumnEmail}
	for _, event := range events {
		header = append(header, event.Name)
	}

	samples := []struct {
		name, email string
		limit       func(i int) string
	}{
		{"John Doe", "john@example.com", func(int) string { return "-1" }},
		{"Jane Smith", "", func(i int) string { return [...]string{"2", "0", "-1"}[min(i, 2)] }},
		{"Bob Wilson", "bob@example.com", func(i int) string { return [...]string{"1", "5", "0"}[min(i, 2)] }},
	}
	rows := make([][]any, 0, len(samples))
	for _, sample := range samples {
		row := []any{sample.name, sample.email}
		for i := range events {
			row = append(row, sample.limit(i))
		}
		rows = append(rows, row)
	}

	f, err := workbook(guestsSheet, header, rows)
	if err != nil {
		return nil, err
	}

	instructions := [][]any{
		{ColumnGuestName, "Required. Full name of the guest"},
		{ColumnEmail, "Optional. Email address of the guest (can be left empty)"},
		{"Event Columns", "Enter attendee limit for each event:"},
		{"-1", "Invited with NO LIMIT (unlimited guests)"},
		{"0", "NOT INVITED to this event"},
		{"1, 2, 3...", "Invited with SPECIFIC LIMIT (e.g., 2 means max 2 guests)"},
	}
	if _, err := f.NewSheet(instructionsSheet); err != nil {
		return nil, err
	}
	if err := fill(f, instructionsSheet, []any{"Column", "Description"}, instructions); err != nil {
		return nil, err
	}
	return f, nil
}

func workbook(sheet string, header []any, rows [][]any) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		return nil, err
	}
	if err := fill(f, sheet, header, rows); err != nil {
		return nil, err
	}
	return f, nil
}

func fill(f *excelize.File, sheet string, header []any, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return err
	}

	for i, row := range rows {
		if err := f.SetSheetRow(sheet, "A"+strconv.Itoa(i+2), &row); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "A", "B", 28)
}
