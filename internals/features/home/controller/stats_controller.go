package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentModel "scholax_backend/internals/features/school/students/model"
	teacherModel "scholax_backend/internals/features/school/teachers/model"
	helper "scholax_backend/internals/helpers"
)

// StatsController serves the admin dashboard counters.
type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

type groupCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

/* =============================
   GET /api/admin/stats
============================= */

func (ctrl *StatsController) Overview(c *fiber.Ctx) error {
	var totalStudents, totalTeachers, totalBatches, totalSections int64

	if err := ctrl.DB.Model(&studentModel.StudentModel{}).Count(&totalStudents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count students")
	}
	if err := ctrl.DB.Model(&teacherModel.TeacherModel{}).Count(&totalTeachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count teachers")
	}
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).
		Distinct("student_batch").Count(&totalBatches).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count batches")
	}
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).
		Distinct("student_batch", "student_section").Count(&totalSections).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count sections")
	}

	var byBranch []groupCount
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).
		Select("student_branch AS key, COUNT(*) AS count").
		Group("student_branch").
		Order("student_branch ASC").
		Scan(&byBranch).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to group by branch")
	}

	var byBatch []groupCount
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).
		Select("student_batch AS key, COUNT(*) AS count").
		Group("student_batch").
		Order("student_batch ASC").
		Scan(&byBatch).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to group by batch")
	}

	return helper.JsonOK(c, "Stats fetched successfully", fiber.Map{
		"total_students":     totalStudents,
		"total_teachers":     totalTeachers,
		"total_batches":      totalBatches,
		"total_sections":     totalSections,
		"students_by_branch": byBranch,
		"students_by_batch":  byBatch,
	})
}
