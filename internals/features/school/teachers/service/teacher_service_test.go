package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"scholax_backend/internals/constants"
	userModel "scholax_backend/internals/features/users/user/model"
)

func TestIsStudentDomainEmail(t *testing.T) {
	const domain = "iiitranchi.ac.in"
	tests := []struct {
		email string
		want  bool
	}{
		{"aarav.2023ug1001@iiitranchi.ac.in", true},
		{"AARAV.2023UG1001@IIITRANCHI.AC.IN", true},
		{"prof.mehta@gmail.com", false},
		{"someone@ac.in", false},
		{"someone@notiiitranchi.ac.in", false},
	}
	for _, tt := range tests {
		if got := IsStudentDomainEmail(tt.email, domain); got != tt.want {
			t.Errorf("IsStudentDomainEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestEvaluateTeacherEmail(t *testing.T) {
	account := func(role string) *userModel.UserModel {
		return &userModel.UserModel{
			UserID:    uuid.New(),
			UserEmail: "prof.mehta@gmail.com",
			UserRole:  role,
		}
	}

	tests := []struct {
		name       string
		user       *userModel.UserModel
		hasProfile bool
		wantErr    string
	}{
		{
			name: "fresh email creates account",
			user: nil,
		},
		{
			name:    "student role conflicts naming the role",
			user:    account(constants.RoleStudent),
			wantErr: "role 'student'",
		},
		{
			name:    "admin role conflicts naming the role",
			user:    account(constants.RoleAdmin),
			wantErr: "role 'admin'",
		},
		{
			name:       "teacher with profile is a duplicate",
			user:       account(constants.RoleTeacher),
			hasProfile: true,
			wantErr:    "Teacher with this email already exists",
		},
		{
			name: "teacher without profile is reused",
			user: account(constants.RoleTeacher),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EvaluateTeacherEmail(tt.user, tt.hasProfile)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}
