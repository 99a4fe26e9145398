package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"scholax_backend/internals/configs"
	"scholax_backend/internals/constants"
	studentModel "scholax_backend/internals/features/school/students/model"
	teacherModel "scholax_backend/internals/features/school/teachers/model"
	"scholax_backend/internals/features/users/auth/dto"
	"scholax_backend/internals/features/users/auth/service"
	userModel "scholax_backend/internals/features/users/user/model"
	helper "scholax_backend/internals/helpers"
	"scholax_backend/internals/helpers/mailer"
)

const adminDisplayName = "Administrator"

type AuthController struct {
	DB       *gorm.DB
	Sender   mailer.Sender
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, sender mailer.Sender) *AuthController {
	return &AuthController{
		DB:       db,
		Sender:   sender,
		Validate: validator.New(),
	}
}

/* ==========================
   REQUEST OTP
========================== */

func (ctrl *AuthController) RequestOTP(c *fiber.Ctx) error {
	var req dto.RequestOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := service.RequestOTP(ctrl.DB, ctrl.Sender, req.Email, configs.OTPTTL); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OTP sent successfully to your email", nil)
}

/* ==========================
   VERIFY OTP
========================== */

func (ctrl *AuthController) VerifyOTP(c *fiber.Ctx) error {
	var req dto.VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, err := service.VerifyOTP(ctrl.DB, req.Email, req.OTP)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	token, err := service.IssueToken(configs.JWTSecret, configs.TokenTTL, user.UserID, user.UserEmail, user.UserRole)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create session token")
	}

	setAuthCookie(c, token, configs.TokenTTL)

	loginUser, err := ctrl.buildLoginUser(user)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Login successful", fiber.Map{
		"user":         loginUser,
		"access_token": token,
	})
}

/* ==========================
   ME / LOGOUT
========================== */

func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	idStr, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	loginUser, err := ctrl.buildLoginUser(&user)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", fiber.Map{"user": loginUser})
}

func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
	})
	return helper.JsonOK(c, "Logout successful", nil)
}

/* ==========================
   Helpers
========================== */

// buildLoginUser merges the role profile into the identity response:
// student rows contribute registration/branch/batch/section, teacher rows
// their display name, admins a static one.
func (ctrl *AuthController) buildLoginUser(user *userModel.UserModel) (dto.LoginUser, error) {
	out := dto.LoginUser{
		ID:         user.UserID.String(),
		Email:      user.UserEmail,
		Role:       user.UserRole,
		IsVerified: user.UserIsVerified,
	}

	switch user.UserRole {
	case constants.RoleStudent:
		var student studentModel.StudentModel
		err := ctrl.DB.First(&student, "student_user_id = ?", user.UserID).Error
		if err == nil {
			out.Name = student.StudentName
			out.RegistrationNo = student.StudentRegistrationNo
			out.Branch = student.StudentBranch
			out.Batch = student.StudentBatch
			out.Section = student.StudentSection
		} else if err != gorm.ErrRecordNotFound {
			return out, fiber.NewError(fiber.StatusInternalServerError, "Failed to load student profile")
		}
	case constants.RoleTeacher:
		var teacher teacherModel.TeacherModel
		err := ctrl.DB.First(&teacher, "teacher_user_id = ?", user.UserID).Error
		if err == nil {
			out.Name = teacher.TeacherName
		} else if err != gorm.ErrRecordNotFound {
			return out, fiber.NewError(fiber.StatusInternalServerError, "Failed to load teacher profile")
		}
	case constants.RoleAdmin:
		out.Name = adminDisplayName
	}
	return out, nil
}

func setAuthCookie(c *fiber.Ctx, token string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
		Expires:  time.Now().Add(ttl),
	})
}
