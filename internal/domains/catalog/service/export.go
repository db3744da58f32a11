package service

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"library-backend/internal/domains/catalog/model"
)

var (
	bookHeaders   = []string{"ID", "Title", "Author", "Published", "Genres"}
	authorHeaders = []string{"ID", "Name", "Born", "Book Count"}
)

// BuildCatalogWorkbook renders a snapshot as a workbook with a Books sheet and
// an Authors sheet. The column names are the ones the xlsx seed loader reads,
// so an export can be fed back in as a seed file.
func BuildCatalogWorkbook(snap Snapshot) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", model.SheetBooks); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(model.SheetAuthors); err != nil {
		return nil, fmt.Errorf("failed to create authors sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeHeader(f, model.SheetBooks, bookHeaders, headerStyle); err != nil {
		return nil, err
	}
	for i, b := range snap.Books {
		row := []interface{}{b.ID, b.Title, b.AuthorName, b.Published, strings.Join(b.Genres, ", ")}
		if err := writeRow(f, model.SheetBooks, i+2, row); err != nil {
			return nil, err
		}
	}

	if err := writeHeader(f, model.SheetAuthors, authorHeaders, headerStyle); err != nil {
		return nil, err
	}
	for i, a := range snap.Authors {
		var born interface{}
		if a.Born != nil {
			born = *a.Born
		}
		row := []interface{}{a.ID, a.Name, born, a.BookCount}
		if err := writeRow(f, model.SheetAuthors, i+2, row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	if err := writeRow(f, sheet, 1, row); err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return fmt.Errorf("failed to resolve header range: %w", err)
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	start, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("failed to resolve row %d: %w", rowNum, err)
	}
	if err := f.SetSheetRow(sheet, start, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, rowNum, err)
	}
	return nil
}
