package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"scholax_backend/internals/features/school/attendance/dto"
	attendanceModel "scholax_backend/internals/features/school/attendance/model"
	"scholax_backend/internals/features/school/attendance/service"
	studentModel "scholax_backend/internals/features/school/students/model"
	helper "scholax_backend/internals/helpers"
)

type AttendanceStudentController struct {
	DB *gorm.DB
}

func NewAttendanceStudentController(db *gorm.DB) *AttendanceStudentController {
	return &AttendanceStudentController{DB: db}
}

func (ctrl *AttendanceStudentController) resolveStudent(c *fiber.Ctx) (*studentModel.StudentModel, error) {
	idStr, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token payload")
	}
	var student studentModel.StudentModel
	if err := ctrl.DB.Where("student_user_id = ?", userID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student profile not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to look up student")
	}
	return &student, nil
}

// applyFilters narrows a student's own rows by optional subject and
// YYYY-MM month.
func (ctrl *AttendanceStudentController) applyFilters(c *fiber.Ctx, q *gorm.DB) (*gorm.DB, error) {
	if subject := strings.TrimSpace(c.Query("subject")); subject != "" {
		q = q.Where("attendance_subject = ?", subject)
	}
	if month := strings.TrimSpace(c.Query("month")); month != "" {
		from, to, err := service.MonthRange(month)
		if err != nil {
			return nil, err
		}
		q = q.Where("attendance_date >= ? AND attendance_date < ?", from, to)
	}
	return q, nil
}

/* =============================
   GET /api/student/attendance
============================= */

func (ctrl *AttendanceStudentController) Summary(c *fiber.Ctx) error {
	student, err := ctrl.resolveStudent(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.Where("attendance_student_id = ?", student.StudentID)
	q, err = ctrl.applyFilters(c, q)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []attendanceModel.AttendanceModel
	if err := q.Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}
	return helper.JsonOK(c, "Attendance summary fetched successfully", service.ComputeSummary(rows))
}

/* =============================
   GET /api/student/attendance/details
============================= */

func (ctrl *AttendanceStudentController) Details(c *fiber.Ctx) error {
	student, err := ctrl.resolveStudent(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.Where("attendance_student_id = ?", student.StudentID)
	q, err = ctrl.applyFilters(c, q)
	if err != nil {
		return helper.FromFiberError(c, err)
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
