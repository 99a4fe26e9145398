package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"scholax_backend/internals/constants"
)

const testSecret = "middleware-test-secret"

func signToken(t *testing.T, role string, ttl time.Duration) string {
	t.Helper()
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":    uuid.NewString(),
		"email": "someone@example.com",
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func newGatedApp() *fiber.App {
	app := fiber.New()
	admin := app.Group("/api/admin",
		AuthMiddleware(testSecret),
		OnlyRoles(constants.RoleErrorAdmin("this resource"), constants.RoleAdmin),
	)
	admin.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func TestAdminGate(t *testing.T) {
	app := newGatedApp()

	tests := []struct {
		name       string
		authHeader string
		cookie     string
		wantStatus int
	}{
		{
			name:       "no token",
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			authHeader: "NotBearer abc",
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "expired token",
			authHeader: "Bearer " + signToken(t, constants.RoleAdmin, -5*time.Minute),
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "teacher on admin route",
			authHeader: "Bearer " + signToken(t, constants.RoleTeacher, time.Hour),
			wantStatus: fiber.StatusForbidden,
		},
		{
			name:       "student on admin route",
			authHeader: "Bearer " + signToken(t, constants.RoleStudent, time.Hour),
			wantStatus: fiber.StatusForbidden,
		},
		{
			name:       "unrecognized role claim",
			authHeader: "Bearer " + signToken(t, "superuser", time.Hour),
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "admin via header",
			authHeader: "Bearer " + signToken(t, constants.RoleAdmin, time.Hour),
			wantStatus: fiber.StatusOK,
		},
		{
			name:       "admin via cookie",
			cookie:     signToken(t, constants.RoleAdmin, time.Hour),
			wantStatus: fiber.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/admin/ping", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "access_token", Value: tt.cookie})
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}
