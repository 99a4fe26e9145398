package dto

import "strings"

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type RequestOTPRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

func (r *RequestOTPRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
	OTP   string `json:"otp" validate:"required"`
}

// Normalize trims the email only. The OTP is compared exactly as sent;
// no trimming or normalization of the code.
func (r *VerifyOTPRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// LoginUser is the role-merged identity returned by verify-otp and /me.
// Student fields are populated for students, Name alone for teachers, and
// a static display name for admins.
type LoginUser struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	IsVerified     bool   `json:"is_verified"`
	Name           string `json:"name,omitempty"`
	RegistrationNo string `json:"registration_no,omitempty"`
	Branch         string `json:"branch,omitempty"`
	Batch          string `json:"batch,omitempty"`
	Section        string `json:"section,omitempty"`
}
