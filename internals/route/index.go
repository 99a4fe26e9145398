// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"scholax_backend/internals/configs"
	"scholax_backend/internals/constants"
	homeRoute "scholax_backend/internals/features/home/route"
	attendanceRoute "scholax_backend/internals/features/school/attendance/route"
	studentRoute "scholax_backend/internals/features/school/students/route"
	teacherRoute "scholax_backend/internals/features/school/teachers/route"
	authRoute "scholax_backend/internals/features/users/auth/route"
	"scholax_backend/internals/helpers/mailer"
	authMiddleware "scholax_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every endpoint group. Auth is public plus its own
// protected subset; everything else sits behind the token check and a
// role gate per group.
func SetupRoutes(app *fiber.App, db *gorm.DB, sender mailer.Sender) {
	authRoute.AuthRoutes(app, db, sender)

	admin := app.Group("/api/admin",
		authMiddleware.AuthMiddleware(configs.JWTSecret),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("this resource"), constants.RoleAdmin),
	)
	studentRoute.StudentAdminRoutes(admin, db)
	teacherRoute.TeacherAdminRoutes(admin, db)
	homeRoute.HomeAdminRoutes(admin, db)

	teacher := app.Group("/api/teacher",
		authMiddleware.AuthMiddleware(configs.JWTSecret),
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("this resource"), constants.RoleTeacher),
	)
	teacherRoute.TeacherSelfRoutes(teacher, db)
	attendanceRoute.AttendanceTeacherRoutes(teacher, db)

	student := app.Group("/api/student",
		authMiddleware.AuthMiddleware(configs.JWTSecret),
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("this resource"), constants.RoleStudent),
	)
	attendanceRoute.AttendanceStudentRoutes(student, db)
}
