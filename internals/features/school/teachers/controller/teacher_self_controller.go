package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentDto "scholax_backend/internals/features/school/students/dto"
	studentModel "scholax_backend/internals/features/school/students/model"
	"scholax_backend/internals/features/school/teachers/dto"
	teacherModel "scholax_backend/internals/features/school/teachers/model"
	"scholax_backend/internals/features/school/teachers/service"
	helper "scholax_backend/internals/helpers"
)

// TeacherSelfController serves the endpoints a logged-in teacher uses
// about their own classes.
type TeacherSelfController struct {
	DB *gorm.DB
}

func NewTeacherSelfController(db *gorm.DB) *TeacherSelfController {
	return &TeacherSelfController{DB: db}
}

func (ctrl *TeacherSelfController) resolveTeacher(c *fiber.Ctx) (*teacherModel.TeacherModel, error) {
	idStr, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token payload")
	}
	return service.FindByUserID(ctrl.DB, userID)
}

/* =============================
   GET /api/teacher/sections
============================= */

func (ctrl *TeacherSelfController) Sections(c *fiber.Ctx) error {
	teacher, err := ctrl.resolveTeacher(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var assignments []teacherModel.TeacherAssignmentModel
	if err := ctrl.DB.
		Where("assignment_teacher_id = ?", teacher.TeacherID).
		Order("assignment_batch ASC, assignment_section ASC, assignment_subject ASC").
		Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignments")
	}

	// Roster sizes per distinct batch+section, one query per class.
	type classKey struct{ batch, section string }
	counts := map[classKey]int64{}
	out := make([]dto.SectionResponse, 0, len(assignments))
	for _, a := range assignments {
		key := classKey{a.AssignmentBatch, a.AssignmentSection}
		n, ok := counts[key]
		if !ok {
			if err := ctrl.DB.Model(&studentModel.StudentModel{}).
				Where("student_batch = ? AND student_section = ?", key.batch, key.section).
				Count(&n).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count students")
			}
			counts[key] = n
		}
		out = append(out, dto.SectionResponse{
			Batch:        a.AssignmentBatch,
			Section:      a.AssignmentSection,
			Subject:      a.AssignmentSubject,
			StudentCount: n,
		})
	}
	return helper.JsonList(c, "Sections fetched successfully", out, int64(len(out)))
}

/* =============================
   GET /api/teacher/students?batch=&section=
============================= */

func (ctrl *TeacherSelfController) StudentsBySection(c *fiber.Ctx) error {
	teacher, err := ctrl.resolveTeacher(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	batch := strings.TrimSpace(c.Query("batch"))
	section := strings.ToUpper(strings.TrimSpace(c.Query("section")))
	if batch == "" || section == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Batch and section are required")
	}

	// A teacher only sees rosters of classes assigned to them.
	var assigned int64
	if err := ctrl.DB.Model(&teacherModel.TeacherAssignmentModel{}).
		Where("assignment_teacher_id = ? AND assignment_batch = ? AND assignment_section = ?",
			teacher.TeacherID, batch, section).
		Count(&assigned).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check assignment")
	}
	if assigned == 0 {
		return helper.JsonError(c, fiber.StatusForbidden, "You are not assigned to this section")
	}

	var students []studentModel.StudentModel
	if err := ctrl.DB.
		Where("student_batch = ? AND student_section = ?", batch, section).
		Order("student_registration_no ASC").
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	out := make([]studentDto.StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, studentDto.FromModel(&students[i]))
	}
	return helper.JsonList(c, "Students fetched successfully", out, int64(len(out)))
}
