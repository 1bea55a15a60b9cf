package sheetsclient

import (
	"context"
	"fmt"

	"github.com/Duaa3/seat-swarm/pkg/core/services"
)

const (
	colSeat  = "Seat"
	colNotes = "Notes"

	// Published tables start after two blank rows
	headerRowIndex = 2
)

// SheetWriter is the subset of Client used to publish a schedule
type SheetWriter interface {
	ValueReader
	SheetTitles(ctx context.Context, spreadsheetID string) ([]string, error)
	CreateSheet(ctx context.Context, spreadsheetID, sheetTitle string) (int64, error)
	UpdateValues(ctx context.Context, spreadsheetID, sheetRange string, values [][]interface{}) error
	ClearValues(ctx context.Context, spreadsheetID, sheetRange string) error
}

// ScheduleTabTitle names the tab a run is published to, e.g. "Schedule 2025-03-03 1a2b3c4d"
func ScheduleTabTitle(published *services.PublishedSchedule) string {
	shortID := published.RunID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}
	return fmt.Sprintf("Schedule %s %s", published.CreatedAt.Format("2006-01-02"), shortID)
}

// PublishSchedule writes a seating chart to its own tab and returns the tab title.
// A new tab is created on first publish. Republishing overwrites the chart but keeps
// anything written in the Notes column, matched by seat.
func PublishSchedule(ctx context.Context, w SheetWriter, spreadsheetID string, published *services.PublishedSchedule) (string, error) {
	tabTitle := ScheduleTabTitle(published)

	titles, err := w.SheetTitles(ctx, spreadsheetID)
	if err != nil {
		return "", err
	}

	exists := false
	for _, title := range titles {
		if title == tabTitle {
			exists = true
			break
		}
	}

	notes := map[string]interface{}{}
	if exists {
		existing, err := w.GetValues(ctx, spreadsheetID, fmt.Sprintf("%s!A1:ZZ", tabTitle))
		if err != nil {
			return "", fmt.Errorf("failed to read existing tab data: %w", err)
		}
		notes = existingNotes(existing)

		if err := w.ClearValues(ctx, spreadsheetID, tabTitle); err != nil {
			return "", fmt.Errorf("failed to clear existing tab: %w", err)
		}
	} else {
		if _, err := w.CreateSheet(ctx, spreadsheetID, tabTitle); err != nil {
			return "", fmt.Errorf("failed to create tab: %w", err)
		}
	}

	rows := buildScheduleRows(published, notes)
	if err := w.UpdateValues(ctx, spreadsheetID, fmt.Sprintf("%s!A1", tabTitle), rows); err != nil {
		return "", fmt.Errorf("failed to write schedule: %w", err)
	}

	return tabTitle, nil
}

// PublishSchedule writes a seating chart using this client
func (c *Client) PublishSchedule(ctx context.Context, spreadsheetID string, published *services.PublishedSchedule) (string, error) {
	return PublishSchedule(ctx, c, spreadsheetID, published)
}

// buildScheduleRows lays out the chart: two blank rows, a header of Seat, Zone,
// one column per day and Notes, then one row per seat. Violations follow the
// table after a blank row.
func buildScheduleRows(published *services.PublishedSchedule, notes map[string]interface{}) [][]interface{} {
	header := []interface{}{colSeat, colZone}
	for _, day := range published.Days {
		header = append(header, day)
	}
	header = append(header, colNotes)

	rows := [][]interface{}{{}, {}, header}

	for _, row := range published.Rows {
		sheetRow := []interface{}{row.SeatID, row.Zone}
		for _, occupant := range row.Occupants {
			sheetRow = append(sheetRow, occupant)
		}

		note, ok := notes[row.SeatID]
		if !ok {
			note = ""
		}
		sheetRow = append(sheetRow, note)

		rows = append(rows, sheetRow)
	}

	if len(published.Violations) > 0 {
		rows = append(rows, []interface{}{}, []interface{}{"Violations"})
		for _, violation := range published.Violations {
			rows = append(rows, []interface{}{violation})
		}
	}

	return rows
}

// existingNotes collects the Notes column of a previously published chart, keyed by seat
func existingNotes(existing [][]interface{}) map[string]interface{} {
	notes := map[string]interface{}{}
	if len(existing) <= headerRowIndex {
		return notes
	}

	t, err := newTable(existing[headerRowIndex], colSeat, colNotes)
	if err != nil {
		return notes
	}

	for _, row := range existing[headerRowIndex+1:] {
		seatID := t.cell(row, colSeat)
		if seatID == "" {
			// The seat table ends at the first blank row
			break
		}
		if note := t.cell(row, colNotes); note != "" {
			notes[seatID] = note
		}
	}
	return notes
}
