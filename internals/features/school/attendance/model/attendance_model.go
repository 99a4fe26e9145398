package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

// AttendanceModel represents the attendances table. Dates are stored
// truncated to midnight; the composite unique index allows at most one
// status per student per subject per calendar day. Re-marking the same day
// updates status and teacher instead of inserting.
type AttendanceModel struct {
	AttendanceID        uuid.UUID `json:"attendance_id" gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AttendanceStudentID uuid.UUID `json:"attendance_student_id" gorm:"column:attendance_student_id;type:uuid;not null;uniqueIndex:idx_attendance_day;index"`
	AttendanceTeacherID uuid.UUID `json:"attendance_teacher_id" gorm:"column:attendance_teacher_id;type:uuid;not null;index"`
	AttendanceSubject   string    `json:"attendance_subject" gorm:"column:attendance_subject;size:100;not null;uniqueIndex:idx_attendance_day"`
	AttendanceDate      time.Time `json:"attendance_date" gorm:"column:attendance_date;not null;uniqueIndex:idx_attendance_day;index"`
	AttendanceStatus    string    `json:"attendance_status" gorm:"column:attendance_status;type:varchar(10);not null"`
	AttendanceBatch     string    `json:"attendance_batch" gorm:"column:attendance_batch;size:20;not null;index:idx_attendance_class"`
	AttendanceSection   string    `json:"attendance_section" gorm:"column:attendance_section;size:10;not null;index:idx_attendance_class"`
	CreatedAt           time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}

func IsValidStatus(s string) bool {
	return s == StatusPresent || s == StatusAbsent
}
