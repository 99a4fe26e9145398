package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"scholax_backend/internals/constants"
	"scholax_backend/internals/features/school/teachers/dto"
	teacherModel "scholax_backend/internals/features/school/teachers/model"
	userModel "scholax_backend/internals/features/users/user/model"
)

// IsStudentDomainEmail reports whether the address belongs to the
// institutional student domain. Teacher accounts must use an outside
// address so role inference at login stays unambiguous.
func IsStudentDomainEmail(email, studentDomain string) bool {
	return strings.HasSuffix(strings.ToLower(email), "@"+strings.ToLower(studentDomain))
}

// EvaluateTeacherEmail decides what an add-teacher call may do with the
// account already holding the address, if any. A nil user means a fresh
// account gets created; a teacher-role account without a profile is
// reused, anything else is a conflict.
func EvaluateTeacherEmail(user *userModel.UserModel, hasProfile bool) error {
	if user == nil {
		return nil
	}
	if user.UserRole != constants.RoleTeacher {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Email %s already exists with role '%s'", user.UserEmail, user.UserRole))
	}
	if hasProfile {
		return fiber.NewError(fiber.StatusBadRequest, "Teacher with this email already exists")
	}
	return nil
}

// AddTeacher creates the teacher profile, reusing an existing teacher-role
// account that has no profile yet. Student-domain addresses are rejected.
func AddTeacher(db *gorm.DB, req dto.AddTeacherRequest, studentDomain string) (*teacherModel.TeacherModel, error) {
	if IsStudentDomainEmail(req.Email, studentDomain) {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Teacher email must not use the @%s student domain", studentDomain))
	}

	var existing *userModel.UserModel
	var user userModel.UserModel
	err := db.Where("user_email = ?", req.Email).First(&user).Error
	switch {
	case err == nil:
		existing = &user
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to look up account")
	}

	hasProfile := false
	if existing != nil {
		var count int64
		if err := db.Model(&teacherModel.TeacherModel{}).
			Where("teacher_user_id = ?", existing.UserID).
			Count(&count).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to look up teacher")
		}
		hasProfile = count > 0
	}
	if err := EvaluateTeacherEmail(existing, hasProfile); err != nil {
		return nil, err
	}

	if existing == nil {
		user = userModel.UserModel{
			UserEmail:      req.Email,
			UserRole:       constants.RoleTeacher,
			UserIsVerified: false,
		}
		if err := db.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Email %s already exists", req.Email))
			}
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create account")
		}
	}

	teacher := teacherModel.TeacherModel{
		TeacherUserID: user.UserID,
		TeacherName:   req.Name,
		TeacherEmail:  req.Email,
	}
	if err := db.Create(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Teacher with this email already exists")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create teacher")
	}
	return &teacher, nil
}

// Assign attaches a batch+section+subject class to a teacher. The same
// tuple assigned twice is a conflict from the unique index, not a scan.
func Assign(db *gorm.DB, req dto.AssignTeacherRequest) (*teacherModel.TeacherAssignmentModel, error) {
	teacherID, err := uuid.Parse(req.TeacherID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid teacher id")
	}

	var teacher teacherModel.TeacherModel
	if err := db.Where("teacher_id = ?", teacherID).First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Teacher not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to look up teacher")
	}

	assignment := teacherModel.TeacherAssignmentModel{
		AssignmentTeacherID: teacher.TeacherID,
		AssignmentBatch:     req.Batch,
		AssignmentSection:   req.Section,
		AssignmentSubject:   req.Subject,
	}
	if err := db.Create(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("Teacher is already assigned %s for %s section %s", req.Subject, req.Batch, req.Section))
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create assignment")
	}
	return &assignment, nil
}

// FindByUserID resolves the teacher profile behind an authenticated user.
func FindByUserID(db *gorm.DB, userID uuid.UUID) (*teacherModel.TeacherModel, error) {
	var teacher teacherModel.TeacherModel
	if err := db.Where("teacher_user_id = ?", userID).First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Teacher profile not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to look up teacher")
	}
	return &teacher, nil
}
