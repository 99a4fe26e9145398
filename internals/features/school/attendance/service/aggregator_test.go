package service

import (
	"testing"
	"time"

	attendanceModel "scholax_backend/internals/features/school/attendance/model"
)

func rec(subject, status string) attendanceModel.AttendanceModel {
	return attendanceModel.AttendanceModel{
		AttendanceSubject: subject,
		AttendanceStatus:  status,
	}
}

func TestComputeSummaryEmpty(t *testing.T) {
	s := ComputeSummary(nil)
	if s.OverallTotal != 0 || s.OverallPresent != 0 {
		t.Errorf("counts should be zero: %+v", s)
	}
	if s.OverallPercentage != 0 {
		t.Errorf("zero rows must yield 0 percent, got %v", s.OverallPercentage)
	}
	if s.Subjects == nil || len(s.Subjects) != 0 {
		t.Errorf("subjects should be an empty slice, got %v", s.Subjects)
	}
}

func TestComputeSummaryPerSubject(t *testing.T) {
	rows := []attendanceModel.AttendanceModel{
		rec("Maths", attendanceModel.StatusPresent),
		rec("Maths", attendanceModel.StatusPresent),
		rec("Maths", attendanceModel.StatusPresent),
		rec("Maths", attendanceModel.StatusAbsent),
		rec("Physics", attendanceModel.StatusAbsent),
		rec("Physics", attendanceModel.StatusAbsent),
	}

	s := ComputeSummary(rows)
	if len(s.Subjects) != 2 {
		t.Fatalf("expected 2 subjects, got %d", len(s.Subjects))
	}
	// sorted alphabetically
	maths, physics := s.Subjects[0], s.Subjects[1]
	if maths.Subject != "Maths" || physics.Subject != "Physics" {
		t.Fatalf("subjects not sorted: %v", s.Subjects)
	}
	if maths.Present != 3 || maths.Total != 4 || maths.Percentage != 75.0 {
		t.Errorf("maths summary wrong: %+v", maths)
	}
	if physics.Present != 0 || physics.Total != 2 || physics.Percentage != 0 {
		t.Errorf("physics summary wrong: %+v", physics)
	}
	if s.OverallPresent != 3 || s.OverallTotal != 6 || s.OverallPercentage != 50.0 {
		t.Errorf("overall wrong: %+v", s)
	}
}

func TestComputeSummaryRounding(t *testing.T) {
	rows := []attendanceModel.AttendanceModel{
		rec("Maths", attendanceModel.StatusPresent),
		rec("Maths", attendanceModel.StatusPresent),
		rec("Maths", attendanceModel.StatusAbsent),
	}
	s := ComputeSummary(rows)
	if s.Subjects[0].Percentage != 66.67 {
		t.Errorf("expected 66.67, got %v", s.Subjects[0].Percentage)
	}
}

func TestMonthRange(t *testing.T) {
	from, to, err := MonthRange("2026-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantFrom := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	if !from.Equal(wantFrom) || !to.Equal(wantTo) {
		t.Errorf("range = [%v, %v), want [%v, %v)", from, to, wantFrom, wantTo)
	}

	// December rolls into the next year
	from, to, err = MonthRange("2025-12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if to.Year() != 2026 || to.Month() != time.January {
		t.Errorf("december upper bound = %v", to)
	}
	_ = from

	for _, bad := range []string{"2026", "2026-13", "03-2026", "garbage"} {
		if _, _, err := MonthRange(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestTruncateToDay(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	in := time.Date(2026, 3, 15, 23, 45, 12, 999, ist)
	got := TruncateToDay(in)
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("TruncateToDay(%v) = %v, want %v", in, got, want)
	}
}

func TestParseMarkDate(t *testing.T) {
	got, err := ParseMarkDate("2026-03-15")
	if err != nil {
		t.Fatalf("plain date: %v", err)
	}
	if !got.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("plain date parsed to %v", got)
	}

	got, err = ParseMarkDate("2026-03-15T10:30:00Z")
	if err != nil {
		t.Fatalf("timestamp: %v", err)
	}
	if !got.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("timestamp not truncated: %v", got)
	}

	if _, err := ParseMarkDate("15/03/2026"); err == nil {
		t.Error("expected error for unsupported format")
	}
}
