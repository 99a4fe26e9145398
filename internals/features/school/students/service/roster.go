package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// Required roster columns, checked against the header row before any row
// processing starts.
var requiredColumns = []string{"Name", "Registration No.", "Branch"}

// RawRow is one data row straight out of the file. Line is the 1-indexed
// sheet line (header is line 1, first data row line 2) used in error
// messages.
type RawRow struct {
	Line           int
	Name           string
	RegistrationNo string
	Branch         string
}

// ParseRoster reads a CSV or first-sheet XLSX/XLS roster. A missing
// required column fails the whole call before any row is looked at.
func ParseRoster(filename string, r io.Reader) ([]RawRow, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSV(r)
	case ".xlsx", ".xls":
		return parseExcel(r)
	default:
		return nil, fiber.NewError(fiber.StatusBadRequest, "File must be CSV, XLSX, or XLS")
	}
}

func parseCSV(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Failed to parse CSV file")
	}
	return rowsFromRecords(records)
}

func parseExcel(r io.Reader) ([]RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Failed to parse Excel file")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "File is empty")
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Failed to read Excel sheet")
	}
	return rowsFromRecords(records)
}

func rowsFromRecords(records [][]string) ([]RawRow, error) {
	if len(records) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "File is empty")
	}

	colIndex := map[string]int{}
	for i, h := range records[0] {
		colIndex[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Missing required columns: %s", strings.Join(missing, ", ")))
	}

	cell := func(rec []string, col string) string {
		idx := colIndex[col]
		if idx >= len(rec) {
			return ""
		}
		return rec[idx]
	}

	rows := make([]RawRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		// skip fully blank lines, a common tail in exported sheets
		if strings.TrimSpace(strings.Join(rec, "")) == "" {
			continue
		}
		rows = append(rows, RawRow{
			Line:           i + 2,
			Name:           cell(rec, "Name"),
			RegistrationNo: cell(rec, "Registration No."),
			Branch:         cell(rec, "Branch"),
		})
	}
	if len(rows) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "File is empty")
	}
	return rows, nil
}
