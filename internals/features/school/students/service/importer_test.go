package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"scholax_backend/internals/constants"
	userModel "scholax_backend/internals/features/users/user/model"
)

const testDomain = "iiitranchi.ac.in"

func TestDeriveStudentEmail(t *testing.T) {
	tests := []struct {
		name  string
		regNo string
		want  string
	}{
		{"Aarav Sharma", "2023UG1001", "aarav.2023ug1001@iiitranchi.ac.in"},
		{"Diya", "2023UG1002", "diya.2023ug1002@iiitranchi.ac.in"},
		{"Rahul Kumar Singh", "2023UG1003", "rahul.2023ug1003@iiitranchi.ac.in"},
		{"ANANYA Verma", "2023ug1004", "ananya.2023ug1004@iiitranchi.ac.in"},
	}
	for _, tt := range tests {
		if got := DeriveStudentEmail(tt.name, tt.regNo, testDomain); got != tt.want {
			t.Errorf("DeriveStudentEmail(%q, %q) = %q, want %q", tt.name, tt.regNo, got, tt.want)
		}
	}
}

func TestNormalizeRows(t *testing.T) {
	raw := []RawRow{
		{Line: 2, Name: "  Aarav Sharma ", RegistrationNo: " 2023ug1001 ", Branch: " cse "},
		{Line: 3, Name: "Diya Patel", RegistrationNo: "", Branch: "ECE"},
		{Line: 4, Name: "   ", RegistrationNo: "2023UG1003", Branch: "CSE"},
	}

	valid, errs := NormalizeRows(raw, testDomain)
	if len(valid) != 1 {
		t.Fatalf("expected 1 valid row, got %d", len(valid))
	}
	if len(errs) != 2 {
		t.Fatalf("expected 2 row errors, got %d: %v", len(errs), errs)
	}
	if errs[0] != "Row 3: Missing required data" || errs[1] != "Row 4: Missing required data" {
		t.Errorf("unexpected error messages: %v", errs)
	}

	got := valid[0]
	if got.RegistrationNo != "2023UG1001" {
		t.Errorf("registration not uppercased: %q", got.RegistrationNo)
	}
	if got.Branch != "CSE" {
		t.Errorf("branch not uppercased: %q", got.Branch)
	}
	if got.Name != "Aarav Sharma" {
		t.Errorf("name not trimmed: %q", got.Name)
	}
	if got.Email != "aarav.2023ug1001@iiitranchi.ac.in" {
		t.Errorf("wrong derived email: %q", got.Email)
	}
}

func TestBuildImportPlan(t *testing.T) {
	rows := []RosterRow{
		{Line: 2, Name: "Aarav Sharma", RegistrationNo: "2023UG1001", Branch: "CSE",
			Email: "aarav.2023ug1001@iiitranchi.ac.in"},
		{Line: 3, Name: "Diya Patel", RegistrationNo: "2023UG1002", Branch: "ECE",
			Email: "diya.2023ug1002@iiitranchi.ac.in"},
		{Line: 4, Name: "Rahul Singh", RegistrationNo: "2023UG1003", Branch: "CSE",
			Email: "rahul.2023ug1003@iiitranchi.ac.in"},
		{Line: 5, Name: "Ananya Verma", RegistrationNo: "2023UG1004", Branch: "CSE",
			Email: "ananya.2023ug1004@iiitranchi.ac.in"},
	}

	existingRegNos := map[string]struct{}{"2023UG1002": {}}
	studentUserID := uuid.New()
	usersByEmail := map[string]userModel.UserModel{
		// existing student-role account, reusable
		"rahul.2023ug1003@iiitranchi.ac.in": {UserID: studentUserID, UserRole: constants.RoleStudent},
		// same address already held by a teacher
		"ananya.2023ug1004@iiitranchi.ac.in": {UserID: uuid.New(), UserRole: constants.RoleTeacher},
	}

	plan := BuildImportPlan(rows, existingRegNos, usersByEmail)

	if plan.FailedRows != 2 {
		t.Fatalf("expected 2 failed rows, got %d (errors: %v)", plan.FailedRows, plan.Errors)
	}
	wantErrs := []string{
		"Row 3: Student 2023UG1002 already exists",
		"Row 5: Email ananya.2023ug1004@iiitranchi.ac.in already exists with role 'teacher'",
	}
	for i, want := range wantErrs {
		if plan.Errors[i] != want {
			t.Errorf("error %d = %q, want %q", i, plan.Errors[i], want)
		}
	}

	if len(plan.Students) != 2 {
		t.Fatalf("expected 2 planned students, got %d", len(plan.Students))
	}
	if len(plan.NewUserEmails) != 1 || plan.NewUserEmails[0] != "aarav.2023ug1001@iiitranchi.ac.in" {
		t.Errorf("unexpected new emails: %v", plan.NewUserEmails)
	}
	if plan.Students[0].UserID != uuid.Nil {
		t.Errorf("fresh row should not carry a user id")
	}
	if plan.Students[1].UserID != studentUserID {
		t.Errorf("existing student account not reused")
	}
}

func TestBuildImportPlanDeduplicatesNewEmails(t *testing.T) {
	rows := []RosterRow{
		{Line: 2, Name: "Aarav A", RegistrationNo: "2023UG1001", Branch: "CSE",
			Email: "aarav.x@iiitranchi.ac.in"},
		{Line: 3, Name: "Aarav B", RegistrationNo: "2023UG1005", Branch: "CSE",
			Email: "aarav.x@iiitranchi.ac.in"},
	}

	plan := BuildImportPlan(rows, map[string]struct{}{}, map[string]userModel.UserModel{})
	if len(plan.NewUserEmails) != 1 {
		t.Errorf("shared email should be created once, got %v", plan.NewUserEmails)
	}
	if len(plan.Students) != 2 {
		t.Errorf("both rows should survive planning, got %d", len(plan.Students))
	}
}

func TestValidateSection(t *testing.T) {
	if err := ValidateSection("A", 1); err != nil {
		t.Errorf("single character should pass: %v", err)
	}
	if err := ValidateSection("", 1); err == nil {
		t.Error("empty section should fail")
	}
	err := ValidateSection("AB", 1)
	if err == nil {
		t.Fatal("over-length section should fail")
	}
	if !strings.Contains(err.Error(), "at most 1") {
		t.Errorf("message should mention the cap: %v", err)
	}
	if err := ValidateSection("AB", 2); err != nil {
		t.Errorf("cap of 2 should allow two characters: %v", err)
	}
}
