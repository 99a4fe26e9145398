// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"scholax_backend/internals/configs"
	controller "scholax_backend/internals/features/users/auth/controller"
	"scholax_backend/internals/helpers/mailer"
	"scholax_backend/internals/middlewares"
	authMiddleware "scholax_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, sender mailer.Sender) {
	authController := controller.NewAuthController(db, sender)

	// ==========================
	// PUBLIC
	// Base: /api/auth
	// ==========================
	baseAuth := app.Group("/api/auth")

	baseAuth.Post("/request-otp", middlewares.OTPRequestRateLimiter(), authController.RequestOTP)
	baseAuth.Post("/verify-otp", authController.VerifyOTP)

	// ==========================
	// PROTECTED
	// ==========================
	protectedAuth := app.Group("/api/auth",
		authMiddleware.AuthMiddleware(configs.JWTSecret),
	)
	protectedAuth.Get("/me", authController.Me)
	protectedAuth.Post("/logout", authController.Logout)
}
