package dto

import (
	"strings"

	teacherModel "scholax_backend/internals/features/school/teachers/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type AddTeacherRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=255"`
}

func (r *AddTeacherRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type AssignTeacherRequest struct {
	TeacherID string `json:"teacherId" validate:"required,uuid4"`
	Batch     string `json:"batch" validate:"required,max=20"`
	Section   string `json:"section" validate:"required,max=10"`
	Subject   string `json:"subject" validate:"required,max=100"`
}

func (r *AssignTeacherRequest) Normalize() {
	r.TeacherID = strings.TrimSpace(r.TeacherID)
	r.Batch = strings.TrimSpace(r.Batch)
	r.Section = strings.ToUpper(strings.TrimSpace(r.Section))
	r.Subject = strings.TrimSpace(r.Subject)
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type AssignmentResponse struct {
	ID      string `json:"id"`
	Batch   string `json:"batch"`
	Section string `json:"section"`
	Subject string `json:"subject"`
}

func AssignmentFromModel(m *teacherModel.TeacherAssignmentModel) AssignmentResponse {
	return AssignmentResponse{
		ID:      m.AssignmentID.String(),
		Batch:   m.AssignmentBatch,
		Section: m.AssignmentSection,
		Subject: m.AssignmentSubject,
	}
}

type TeacherResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Assignments []AssignmentResponse `json:"assignments"`
}

func TeacherFromModel(m *teacherModel.TeacherModel, assignments []teacherModel.TeacherAssignmentModel) TeacherResponse {
	out := TeacherResponse{
		ID:          m.TeacherID.String(),
		Name:        m.TeacherName,
		Email:       m.TeacherEmail,
		Assignments: make([]AssignmentResponse, 0, len(assignments)),
	}
	for i := range assignments {
		out.Assignments = append(out.Assignments, AssignmentFromModel(&assignments[i]))
	}
	return out
}

// SectionResponse is one class a teacher is assigned to, with the current
// roster size for that batch+section.
type SectionResponse struct {
	Batch        string `json:"batch"`
	Section      string `json:"section"`
	Subject      string `json:"subject"`
	StudentCount int64  `json:"student_count"`
}
