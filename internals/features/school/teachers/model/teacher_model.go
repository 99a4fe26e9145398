package model

import (
	"time"

	"github.com/google/uuid"
)

// TeacherModel represents the teachers table. Teacher emails are external
// addresses; the student institutional domain is rejected at the boundary.
type TeacherModel struct {
	TeacherID     uuid.UUID `json:"teacher_id" gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey"`
	TeacherUserID uuid.UUID `json:"teacher_user_id" gorm:"column:teacher_user_id;type:uuid;not null;uniqueIndex"`
	TeacherName   string    `json:"teacher_name" gorm:"column:teacher_name;size:100;not null"`
	TeacherEmail  string    `json:"teacher_email" gorm:"column:teacher_email;size:255;not null;index"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}

// TeacherAssignmentModel represents the teacher_assignments table. The
// composite unique index prevents assigning the same class twice.
type TeacherAssignmentModel struct {
	AssignmentID        uuid.UUID `json:"assignment_id" gorm:"column:assignment_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AssignmentTeacherID uuid.UUID `json:"assignment_teacher_id" gorm:"column:assignment_teacher_id;type:uuid;not null;uniqueIndex:idx_assignment_tuple;index"`
	AssignmentBatch     string    `json:"assignment_batch" gorm:"column:assignment_batch;size:20;not null;uniqueIndex:idx_assignment_tuple"`
	AssignmentSection   string    `json:"assignment_section" gorm:"column:assignment_section;size:10;not null;uniqueIndex:idx_assignment_tuple"`
	AssignmentSubject   string    `json:"assignment_subject" gorm:"column:assignment_subject;size:100;not null;uniqueIndex:idx_assignment_tuple"`
	CreatedAt           time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (TeacherAssignmentModel) TableName() string {
	return "teacher_assignments"
}
