package dto

import (
	"strings"

	studentModel "scholax_backend/internals/features/school/students/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type AddStudentRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	RegistrationNo string `json:"registrationNo" validate:"required,max=50"`
	Branch         string `json:"branch" validate:"required,max=50"`
	Batch          string `json:"batch" validate:"required,max=20"`
	Section        string `json:"section" validate:"required,max=10"`
}

// Normalize applies the store-boundary case rules: registration number,
// branch and section uppercase, name trimmed.
func (r *AddStudentRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.RegistrationNo = strings.ToUpper(strings.TrimSpace(r.RegistrationNo))
	r.Branch = strings.ToUpper(strings.TrimSpace(r.Branch))
	r.Batch = strings.TrimSpace(r.Batch)
	r.Section = strings.ToUpper(strings.TrimSpace(r.Section))
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type StudentResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	RegistrationNo string `json:"registration_no"`
	Branch         string `json:"branch"`
	Batch          string `json:"batch"`
	Section        string `json:"section"`
	Email          string `json:"email"`
}

func FromModel(m *studentModel.StudentModel) StudentResponse {
	return StudentResponse{
		ID:             m.StudentID.String(),
		Name:           m.StudentName,
		RegistrationNo: m.StudentRegistrationNo,
		Branch:         m.StudentBranch,
		Batch:          m.StudentBatch,
		Section:        m.StudentSection,
		Email:          m.StudentEmail,
	}
}

// ImportResults is the bulk import payload: created count, failed count,
// one human-readable message per failed row.
type ImportResults struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}
