package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"scholax_backend/internals/configs"
	"scholax_backend/internals/features/school/teachers/dto"
	teacherModel "scholax_backend/internals/features/school/teachers/model"
	"scholax_backend/internals/features/school/teachers/service"
	helper "scholax_backend/internals/helpers"
)

type TeacherAdminController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherAdminController(db *gorm.DB) *TeacherAdminController {
	return &TeacherAdminController{
		DB:       db,
		Validate: validator.New(),
	}
}

/* =============================
   POST /api/admin/teachers
============================= */

func (ctrl *TeacherAdminController) AddTeacher(c *fiber.Ctx) error {
	var req dto.AddTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	teacher, err := service.AddTeacher(ctrl.DB, req, configs.StudentEmailDomain)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Teacher added successfully",
		dto.TeacherFromModel(teacher, nil))
}

/* =============================
   POST /api/admin/teachers/assign
============================= */

func (ctrl *TeacherAdminController) AssignTeacher(c *fiber.Ctx) error {
	var req dto.AssignTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	assignment, err := service.Assign(ctrl.DB, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Teacher assigned successfully",
		dto.AssignmentFromModel(assignment))
}

/* =============================
   GET /api/admin/teachers
============================= */

func (ctrl *TeacherAdminController) ListTeachers(c *fiber.Ctx) error {
	var teachers []teacherModel.TeacherModel
	if err := ctrl.DB.Order("teacher_name ASC").Find(&teachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teachers")
	}

	// One query for all assignments, grouped in memory.
	var assignments []teacherModel.TeacherAssignmentModel
	if err := ctrl.DB.
		Order("assignment_batch ASC, assignment_section ASC, assignment_subject ASC").
		Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignments")
	}
	byTeacher := make(map[uuid.UUID][]teacherModel.TeacherAssignmentModel, len(teachers))
	for _, a := range assignments {
		byTeacher[a.AssignmentTeacherID] = append(byTeacher[a.AssignmentTeacherID], a)
	}

	out := make([]dto.TeacherResponse, 0, len(teachers))
	for i := range teachers {
		out = append(out, dto.TeacherFromModel(&teachers[i], byTeacher[teachers[i].TeacherID]))
	}
	return helper.JsonList(c, "Teachers fetched successfully", out, int64(len(out)))
}
