package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"scholax_backend/internals/constants"
	"scholax_backend/internals/features/school/students/dto"
	studentModel "scholax_backend/internals/features/school/students/model"
	userModel "scholax_backend/internals/features/users/user/model"
)

/* ==========================
   Normalization
========================== */

// DeriveStudentEmail builds the institutional address:
// lowercase(first whitespace token of name) + "." + lowercase(regNo) + "@" + domain.
func DeriveStudentEmail(name, regNo, domain string) string {
	first := strings.Fields(name)[0]
	return strings.ToLower(first + "." + regNo + "@" + domain)
}

// ValidateSection enforces the configurable section length cap.
func ValidateSection(section string, maxLen int) error {
	if section == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Section is required")
	}
	if maxLen > 0 && len(section) > maxLen {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Section must be at most %d character(s)", maxLen))
	}
	return nil
}

// RosterRow is a validated, normalized import row.
type RosterRow struct {
	Line           int
	Name           string
	RegistrationNo string
	Branch         string
	Email          string
}

// NormalizeRows trims and cases each raw row. Rows missing any required
// value fail independently with a line-numbered message.
func NormalizeRows(raw []RawRow, domain string) (valid []RosterRow, rowErrors []string) {
	for _, r := range raw {
		name := strings.TrimSpace(r.Name)
		regNo := strings.TrimSpace(r.RegistrationNo)
		branch := strings.ToUpper(strings.TrimSpace(r.Branch))

		if name == "" || regNo == "" || branch == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: Missing required data", r.Line))
			continue
		}

		regNo = strings.ToUpper(regNo)
		valid = append(valid, RosterRow{
			Line:           r.Line,
			Name:           name,
			RegistrationNo: regNo,
			Branch:         branch,
			Email:          DeriveStudentEmail(name, regNo, domain),
		})
	}
	return valid, rowErrors
}

/* ==========================
   Reconciliation plan
========================== */

// PlannedStudent is a row that survived dedup. UserID is set when an
// existing student-role account is being reused; otherwise the account is
// created during execution.
type PlannedStudent struct {
	Row    RosterRow
	UserID uuid.UUID
}

type ImportPlan struct {
	// Deduplicated emails needing a fresh account, in first-seen order.
	NewUserEmails []string
	Students      []PlannedStudent
	Errors        []string
	FailedRows    int
}

// BuildImportPlan runs the dedup/role checks against pre-fetched lookup
// sets, so the store sees exactly two reads regardless of row count.
func BuildImportPlan(
	rows []RosterRow,
	existingRegNos map[string]struct{},
	usersByEmail map[string]userModel.UserModel,
) ImportPlan {
	plan := ImportPlan{}
	newEmailSeen := map[string]struct{}{}

	for _, row := range rows {
		if _, dup := existingRegNos[row.RegistrationNo]; dup {
			plan.FailedRows++
			plan.Errors = append(plan.Errors,
				fmt.Sprintf("Row %d: Student %s already exists", row.Line, row.RegistrationNo))
			continue
		}

		existing, ok := usersByEmail[row.Email]
		if ok && existing.UserRole != constants.RoleStudent {
			plan.FailedRows++
			plan.Errors = append(plan.Errors,
				fmt.Sprintf("Row %d: Email %s already exists with role '%s'", row.Line, row.Email, existing.UserRole))
			continue
		}

		ps := PlannedStudent{Row: row}
		if ok {
			ps.UserID = existing.UserID
		} else if _, seen := newEmailSeen[row.Email]; !seen {
			newEmailSeen[row.Email] = struct{}{}
			plan.NewUserEmails = append(plan.NewUserEmails, row.Email)
		}
		plan.Students = append(plan.Students, ps)
	}
	return plan
}

/* ==========================
   Import execution
========================== */

// Import runs the full bulk import: normalize, two bulk lookups, plan,
// then per-row creation where one row's uniqueness conflict never aborts
// the rest. It returns an error only when the store itself is unusable;
// every row-level problem lands in the result payload instead.
func Import(db *gorm.DB, raw []RawRow, batch, section, domain string) (*dto.ImportResults, error) {
	valid, rowErrors := NormalizeRows(raw, domain)
	results := &dto.ImportResults{
		Failed: len(rowErrors),
		Errors: append([]string{}, rowErrors...),
	}
	if len(valid) == 0 {
		return results, nil
	}

	regNos := make([]string, 0, len(valid))
	emails := make([]string, 0, len(valid))
	for _, r := range valid {
		regNos = append(regNos, r.RegistrationNo)
		emails = append(emails, r.Email)
	}

	// Bulk lookup 1: existing registrations
	var existingStudents []studentModel.StudentModel
	if err := db.Where("student_registration_no IN ?", regNos).Find(&existingStudents).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing students")
	}
	existingRegNos := make(map[string]struct{}, len(existingStudents))
	for _, s := range existingStudents {
		existingRegNos[s.StudentRegistrationNo] = struct{}{}
	}

	// Bulk lookup 2: existing accounts
	var existingUsers []userModel.UserModel
	if err := db.Where("user_email IN ?", emails).Find(&existingUsers).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing users")
	}
	usersByEmail := make(map[string]userModel.UserModel, len(existingUsers))
	for _, u := range existingUsers {
		usersByEmail[u.UserEmail] = u
	}

	plan := BuildImportPlan(valid, existingRegNos, usersByEmail)
	results.Failed += plan.FailedRows
	results.Errors = append(results.Errors, plan.Errors...)

	// Create the missing accounts. A duplicate-key here means a concurrent
	// writer beat us to the email; re-fetch and reuse when the role fits.
	userIDByEmail := map[string]uuid.UUID{}
	badEmails := map[string]string{}
	for _, email := range plan.NewUserEmails {
		u := userModel.UserModel{
			UserEmail:      email,
			UserRole:       constants.RoleStudent,
			UserIsVerified: false,
		}
		err := db.Create(&u).Error
		if err == nil {
			userIDByEmail[email] = u.UserID
			continue
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var racer userModel.UserModel
			if ferr := db.Where("user_email = ?", email).First(&racer).Error; ferr == nil {
				if racer.UserRole == constants.RoleStudent {
					userIDByEmail[email] = racer.UserID
					continue
				}
				badEmails[email] = fmt.Sprintf("Email %s already exists with role '%s'", email, racer.UserRole)
				continue
			}
		}
		badEmails[email] = fmt.Sprintf("Failed to create account for %s", email)
	}

	// Create the surviving profiles row by row.
	for _, ps := range plan.Students {
		if msg, bad := badEmails[ps.Row.Email]; bad {
			results.Failed++
			results.Errors = append(results.Errors, fmt.Sprintf("Row %d: %s", ps.Row.Line, msg))
			continue
		}
		userID := ps.UserID
		if userID == uuid.Nil {
			userID = userIDByEmail[ps.Row.Email]
		}
		if userID == uuid.Nil {
			results.Failed++
			results.Errors = append(results.Errors,
				fmt.Sprintf("Row %d: Account creation failed for %s", ps.Row.Line, ps.Row.Email))
			continue
		}

		st := studentModel.StudentModel{
			StudentUserID:         userID,
			StudentName:           ps.Row.Name,
			StudentRegistrationNo: ps.Row.RegistrationNo,
			StudentBranch:         ps.Row.Branch,
			StudentBatch:          batch,
			StudentSection:        strings.ToUpper(section),
			StudentEmail:          ps.Row.Email,
		}
		err := db.Create(&st).Error
		switch {
		case err == nil:
			results.Success++
		case errors.Is(err, gorm.ErrDuplicatedKey):
			results.Failed++
			results.Errors = append(results.Errors,
				fmt.Sprintf("Row %d: Student %s already exists", ps.Row.Line, ps.Row.RegistrationNo))
		default:
			results.Failed++
			results.Errors = append(results.Errors,
				fmt.Sprintf("Row %d: Failed to save student %s", ps.Row.Line, ps.Row.RegistrationNo))
		}
	}

	return results, nil
}

/* ==========================
   Single add
========================== */

// AddStudent applies the importer's normalization and dedup checks to one
// synchronous create.
func AddStudent(db *gorm.DB, req dto.AddStudentRequest, domain string) (*studentModel.StudentModel, error) {
	email := DeriveStudentEmail(req.Name, req.RegistrationNo, domain)

	var count int64
	if err := db.Model(&studentModel.StudentModel{}).
		Where("student_registration_no = ?", req.RegistrationNo).
		Count(&count).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing students")
	}
	if count > 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Student with registration number %s already exists", req.RegistrationNo))
	}

	var user userModel.UserModel
	err := db.Where("user_email = ?", email).First(&user).Error
	switch {
	case err == nil:
		if user.UserRole != constants.RoleStudent {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Email %s already exists with role '%s'", email, user.UserRole))
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = userModel.UserModel{
			UserEmail:      email,
			UserRole:       constants.RoleStudent,
			UserIsVerified: false,
		}
		if cerr := db.Create(&user).Error; cerr != nil {
			if errors.Is(cerr, gorm.ErrDuplicatedKey) {
				// lost a race; pick up the winner
				if ferr := db.Where("user_email = ?", email).First(&user).Error; ferr != nil {
					return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create account")
				}
				if user.UserRole != constants.RoleStudent {
					return nil, fiber.NewError(fiber.StatusBadRequest,
						fmt.Sprintf("Email %s already exists with role '%s'", email, user.UserRole))
				}
			} else {
				return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create account")
			}
		}
	default:
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to look up account")
	}

	st := studentModel.StudentModel{
		StudentUserID:         user.UserID,
		StudentName:           req.Name,
		StudentRegistrationNo: req.RegistrationNo,
		StudentBranch:         req.Branch,
		StudentBatch:          req.Batch,
		StudentSection:        req.Section,
		StudentEmail:          email,
	}
	if err := db.Create(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Student with registration number %s already exists", req.RegistrationNo))
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}
	return &st, nil
}
