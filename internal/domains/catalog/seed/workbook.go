package seed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"library-backend/internal/domains/catalog/model"
)

// loadWorkbook reads the Authors and Books sheets. Either sheet may be
// absent. Column order is free; headers are matched case-insensitively.
func loadWorkbook(path string) (model.SeedData, error) {
	var data model.SeedData

	f, err := excelize.OpenFile(path)
	if err != nil {
		return data, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	authorRows, err := sheetRows(f, model.SheetAuthors)
	if err != nil {
		return data, err
	}
	if len(authorRows) > 0 {
		cols := buildColumnIndexMap(authorRows[0])
		if _, ok := cols["name"]; !ok {
			return data, fmt.Errorf("%w: %s needs name", model.ErrMissingSeedColumns, model.SheetAuthors)
		}
		for i, record := range authorRows[1:] {
			get := columnGetter(cols, record)
			if isBlank(record) {
				continue
			}

			a := model.SeedAuthor{Name: get("name")}
			if born := get("born"); born != "" {
				year, err := strconv.Atoi(born)
				if err != nil {
					return data, fmt.Errorf("%s row %d: invalid born %q", model.SheetAuthors, i+2, born)
				}
				a.Born = &year
			}
			data.Authors = append(data.Authors, a)
		}
	}

	bookRows, err := sheetRows(f, model.SheetBooks)
	if err != nil {
		return data, err
	}
	if len(bookRows) > 0 {
		cols := buildColumnIndexMap(bookRows[0])
		for _, required := range []string{"title", "author"} {
			if _, ok := cols[required]; !ok {
				return data, fmt.Errorf("%w: %s needs %s", model.ErrMissingSeedColumns, model.SheetBooks, required)
			}
		}
		for i, record := range bookRows[1:] {
			get := columnGetter(cols, record)
			if isBlank(record) {
				continue
			}

			b := model.AddBookInput{
				Title:  get("title"),
				Author: get("author"),
				Genres: splitGenres(get("genres")),
			}
			if published := get("published"); published != "" {
				year, err := strconv.Atoi(published)
				if err != nil {
					return data, fmt.Errorf("%s row %d: invalid published %q", model.SheetBooks, i+2, published)
				}
				b.Published = year
			}
			data.Books = append(data.Books, b)
		}
	}

	return data, nil
}

func sheetRows(f *excelize.File, sheet string) ([][]string, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	return rows, nil
}

// buildColumnIndexMap maps lowercased header names to column indexes.
func buildColumnIndexMap(header []string) map[string]int {
	colMap := make(map[string]int)
	for i, colName := range header {
		colMap[strings.TrimSpace(strings.ToLower(colName))] = i
	}
	return colMap
}

func columnGetter(cols map[string]int, record []string) func(string) string {
	return func(name string) string {
		if idx, ok := cols[name]; ok && idx < len(record) {
			return strings.TrimSpace(record[idx])
		}
		return ""
	}
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func splitGenres(s string) []string {
	genres := []string{}
	for _, g := range strings.Split(s, ",") {
		if g = strings.TrimSpace(g); g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}
