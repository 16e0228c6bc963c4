// Package spreadsheet reads and writes the XLSX workbooks used to import and export guest lists
package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lineup-rsvp/lineup/internal/guestimport"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
	"github.com/xuri/excelize/v2"
)

const (
	ColumnGuestName = "Guest Name"
	ColumnEmail     = "Email"
)

var (
	ErrEmptyWorkbook  = errors.New("the spreadsheet is empty")
	ErrMissingNameCol = fmt.Errorf("the spreadsheet must have a %q column", ColumnGuestName)
)

// ParseGuests reads the first sheet of an XLSX workbook. The first row holds
// the headers: "Guest Name", an optional "Email" and one column per event,
// titled with the event's name, holding the attendee limit.
func ParseGuests(r io.Reader, events []model.Event) ([]guestimport.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrEmptyWorkbook
	}

	headers := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		headers[strings.TrimSpace(header)] = i
	}
	if _, ok := headers[ColumnGuestName]; !ok {
		return nil, ErrMissingNameCol
	}

	guests := make([]guestimport.Row, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cells := make(map[string]string, len(headers))
		for header, i := range headers {
			if i < len(row) {
				cells[header] = strings.TrimSpace(row[i])
			}
		}

		name := cells[ColumnGuestName]
		if name == "" {
			continue
		}
		guests = append(guests, guestimport.Row{
			GuestName:   name,
			Email:       cells[ColumnEmail],
			EventLimits: LimitsFromCells(cells, events),
		})
	}
	return guests, nil
}

// LimitsFromCells maps the slug of every event with an integer value in cells,
// which are keyed by event name, to that value. Zeros mean not invited and are
// left out, as are empty or non integer values.
func LimitsFromCells(cells map[string]string, events []model.Event) map[string]int {
	limits := make(map[string]int)
	for _, event := range events {
		value, ok := cells[event.Name]
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		limit, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || limit == 0 || limit < model.Unlimited {
			continue
		}
		limits[event.Slug] = limit
	}
	return limits
}
