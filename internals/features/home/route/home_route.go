package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"scholax_backend/internals/features/home/controller"
)

// HomeAdminRoutes mounts the dashboard counters on the admin group.
func HomeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStatsController(db)

	admin.Get("/stats", ctrl.Overview)
}
