package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"scholax_backend/internals/features/school/attendance/dto"
	attendanceModel "scholax_backend/internals/features/school/attendance/model"
	"scholax_backend/internals/features/school/attendance/service"
	teacherModel "scholax_backend/internals/features/school/teachers/model"
	teacherService "scholax_backend/internals/features/school/teachers/service"
	helper "scholax_backend/internals/helpers"
)

type AttendanceTeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceTeacherController(db *gorm.DB) *AttendanceTeacherController {
	return &AttendanceTeacherController{
		DB:       db,
		Validate: validator.New(),
	}
}

func (ctrl *AttendanceTeacherController) resolveTeacher(c *fiber.Ctx) (*teacherModel.TeacherModel, error) {
	idStr, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token payload")
	}
	return teacherService.FindByUserID(ctrl.DB, userID)
}

/* =============================
   POST /api/teacher/attendance
============================= */

func (ctrl *AttendanceTeacherController) Mark(c *fiber.Ctx) error {
	teacher, err := ctrl.resolveTeacher(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	results, err := service.Mark(ctrl.DB, teacher.TeacherID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Attendance recorded", results)
}

/* =============================
   GET /api/teacher/attendance?batch=&section=&subject=&date=
============================= */

func (ctrl *AttendanceTeacherController) GetByClass(c *fiber.Ctx) error {
	teacher, err := ctrl.resolveTeacher(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	batch := strings.TrimSpace(c.Query("batch"))
	section := strings.ToUpper(strings.TrimSpace(c.Query("section")))
	subject := strings.TrimSpace(c.Query("subject"))
	if batch == "" || section == "" || subject == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Batch, section and subject are required")
	}

	q := ctrl.DB.
		Where("attendance_teacher_id = ? AND attendance_batch = ? AND attendance_section = ? AND attendance_subject = ?",
			teacher.TeacherID, batch, section, subject)

	if rawDate := strings.TrimSpace(c.Query("date")); rawDate != "" {
		day, derr := service.ParseMarkDate(rawDate)
		if derr != nil {
			return helper.FromFiberError(c, derr)
		}
		q = q.Where("attendance_date = ?", day)
	}

	var rows []attendanceModel.AttendanceModel
	if err := q.Order("attendance_date DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	out := make([]dto.AttendanceEntry, 0, len(rows))
	for i := range rows {
		out = append(out, dto.EntryFromModel(&rows[i]))
	}
	return helper.JsonList(c, "Attendance fetched successfully", out, int64(len(out)))
}
