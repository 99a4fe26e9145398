package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"scholax_backend/internals/features/school/attendance/controller"
)

// AttendanceTeacherRoutes mounts marking and class review on the teacher
// group.
func AttendanceTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceTeacherController(db)

	teacher.Post("/attendance", ctrl.Mark)
	teacher.Get("/attendance", ctrl.GetByClass)
}

// AttendanceStudentRoutes mounts a student's own views on the student
// group.
func AttendanceStudentRoutes(student fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceStudentController(db)

	student.Get("/attendance", ctrl.Summary)
	student.Get("/attendance/details", ctrl.Details)
}
