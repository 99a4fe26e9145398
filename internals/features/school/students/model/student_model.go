package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentModel represents the students table. Registration number is the
// business key; the derived email mirrors the one on the linked user row.
type StudentModel struct {
	StudentID             uuid.UUID `json:"student_id" gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey"`
	StudentUserID         uuid.UUID `json:"student_user_id" gorm:"column:student_user_id;type:uuid;not null;index"`
	StudentName           string    `json:"student_name" gorm:"column:student_name;size:100;not null"`
	StudentRegistrationNo string    `json:"student_registration_no" gorm:"column:student_registration_no;size:50;uniqueIndex;not null"`
	StudentBranch         string    `json:"student_branch" gorm:"column:student_branch;size:50;not null;index"`
	StudentBatch          string    `json:"student_batch" gorm:"column:student_batch;size:20;not null;index:idx_students_batch_section"`
	StudentSection        string    `json:"student_section" gorm:"column:student_section;size:10;not null;index:idx_students_batch_section"`
	StudentEmail          string    `json:"student_email" gorm:"column:student_email;size:255;not null;index"`
	CreatedAt             time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (StudentModel) TableName() string {
	return "students"
}
