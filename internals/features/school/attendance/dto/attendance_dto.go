package dto

import (
	"strings"
	"time"

	attendanceModel "scholax_backend/internals/features/school/attendance/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type MarkRecord struct {
	StudentID string `json:"studentId" validate:"required,uuid4"`
	Status    string `json:"status" validate:"required,oneof=present absent"`
}

type MarkAttendanceRequest struct {
	Batch   string       `json:"batch" validate:"required,max=20"`
	Section string       `json:"section" validate:"required,max=10"`
	Subject string       `json:"subject" validate:"required,max=100"`
	Date    string       `json:"date" validate:"required"`
	Records []MarkRecord `json:"records" validate:"required,min=1,dive"`
}

func (r *MarkAttendanceRequest) Normalize() {
	r.Batch = strings.TrimSpace(r.Batch)
	r.Section = strings.ToUpper(strings.TrimSpace(r.Section))
	r.Subject = strings.TrimSpace(r.Subject)
	r.Date = strings.TrimSpace(r.Date)
	for i := range r.Records {
		r.Records[i].StudentID = strings.TrimSpace(r.Records[i].StudentID)
		r.Records[i].Status = strings.ToLower(strings.TrimSpace(r.Records[i].Status))
	}
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// MarkResults reports how many rows were inserted, how many re-marked the
// same day, and per-record failures.
type MarkResults struct {
	Marked  int      `json:"marked"`
	Updated int      `json:"updated"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

type AttendanceEntry struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"`
	Subject   string    `json:"subject"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
}

func EntryFromModel(m *attendanceModel.AttendanceModel) AttendanceEntry {
	return AttendanceEntry{
		ID:        m.AttendanceID.String(),
		StudentID: m.AttendanceStudentID.String(),
		Subject:   m.AttendanceSubject,
		Date:      m.AttendanceDate,
		Status:    m.AttendanceStatus,
	}
}

type SubjectSummary struct {
	Subject    string  `json:"subject"`
	Present    int     `json:"present"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

type AttendanceSummary struct {
	Subjects          []SubjectSummary `json:"subjects"`
	OverallPresent    int              `json:"overall_present"`
	OverallTotal      int              `json:"overall_total"`
	OverallPercentage float64          `json:"overall_percentage"`
}
