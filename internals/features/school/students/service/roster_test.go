package service

import (
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestParseRosterCSV(t *testing.T) {
	csvData := strings.Join([]string{
		"Name,Registration No.,Branch",
		"Aarav Sharma,2023UG1001,CSE",
		"Diya Patel,2023UG1002,ECE",
		"",
	}, "\n")

	rows, err := ParseRoster("roster.csv", strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Line != 2 || rows[1].Line != 3 {
		t.Errorf("expected sheet lines 2 and 3, got %d and %d", rows[0].Line, rows[1].Line)
	}
	if rows[0].Name != "Aarav Sharma" || rows[0].RegistrationNo != "2023UG1001" || rows[0].Branch != "CSE" {
		t.Errorf("row 1 parsed wrong: %+v", rows[0])
	}
}

func TestParseRosterReorderedColumns(t *testing.T) {
	csvData := strings.Join([]string{
		"Branch,Name,Registration No.",
		"CSE,Aarav Sharma,2023UG1001",
	}, "\n")

	rows, err := ParseRoster("roster.csv", strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].Name != "Aarav Sharma" || rows[0].Branch != "CSE" {
		t.Errorf("columns not resolved by header: %+v", rows[0])
	}
}

func TestParseRosterMissingColumns(t *testing.T) {
	csvData := "Name,Branch\nAarav Sharma,CSE\n"

	_, err := ParseRoster("roster.csv", strings.NewReader(csvData))
	if err == nil {
		t.Fatal("expected error for missing column")
	}
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 fiber error, got %v", err)
	}
	if !strings.Contains(fe.Message, "Registration No.") {
		t.Errorf("message should name the missing column, got %q", fe.Message)
	}
}

func TestParseRosterEmptyFile(t *testing.T) {
	for _, data := range []string{"", "Name,Registration No.,Branch\n", "Name,Registration No.,Branch\n,,\n"} {
		_, err := ParseRoster("roster.csv", strings.NewReader(data))
		fe, ok := err.(*fiber.Error)
		if !ok || fe.Code != fiber.StatusBadRequest {
			t.Errorf("data %q: expected 400 fiber error, got %v", data, err)
		}
	}
}

func TestParseRosterUnsupportedExtension(t *testing.T) {
	_, err := ParseRoster("roster.pdf", strings.NewReader("x"))
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 fiber error, got %v", err)
	}
	if fe.Message != "File must be CSV, XLSX, or XLS" {
		t.Errorf("unexpected message %q", fe.Message)
	}
}
