package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"scholax_backend/internals/features/school/students/controller"
)

// StudentAdminRoutes mounts the roster management endpoints on an already
// authenticated admin group.
func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	students := admin.Group("/students")
	students.Post("/add", ctrl.AddStudent)
	students.Post("/import", ctrl.ImportStudents)
	students.Get("/", ctrl.ListStudents)
}
