package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"scholax_backend/internals/features/school/teachers/controller"
)

// TeacherAdminRoutes mounts teacher management on the admin group.
func TeacherAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeacherAdminController(db)

	teachers := admin.Group("/teachers")
	teachers.Post("/", ctrl.AddTeacher)
	teachers.Post("/assign", ctrl.AssignTeacher)
	teachers.Get("/", ctrl.ListTeachers)
}

// TeacherSelfRoutes mounts the logged-in teacher's class endpoints.
func TeacherSelfRoutes(teacher fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeacherSelfController(db)

	teacher.Get("/sections", ctrl.Sections)
	teacher.Get("/students", ctrl.StudentsBySection)
}
