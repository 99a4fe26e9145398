package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the users table. One account per email across every
// role; the OTP fields are both nil except between request-otp and a
// successful (or expired) verification.
type UserModel struct {
	UserID         uuid.UUID  `json:"user_id" gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserEmail      string     `json:"user_email" gorm:"column:user_email;size:255;uniqueIndex;not null"`
	UserRole       string     `json:"user_role" gorm:"column:user_role;type:varchar(20);not null"`
	UserOTPCode    *string    `json:"-" gorm:"column:user_otp_code;size:6"`
	UserOTPExpires *time.Time `json:"-" gorm:"column:user_otp_expires_at"`
	UserIsVerified bool       `json:"user_is_verified" gorm:"column:user_is_verified;not null;default:false"`
	CreatedAt      time.Time  `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time  `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// HasPendingOTP reports whether an OTP was requested and not yet consumed.
// Expiry is checked by the caller so that "expired" and "no OTP" stay
// distinct failures.
func (u *UserModel) HasPendingOTP() bool {
	return u.UserOTPCode != nil && u.UserOTPExpires != nil
}
