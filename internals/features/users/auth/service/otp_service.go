package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userModel "scholax_backend/internals/features/users/user/model"
	"scholax_backend/internals/helpers/mailer"
)

/* ==========================
   OTP generation
========================== */

// GenerateOTP draws a uniform 6-digit code in [100000, 999999].
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// OTPExpired reports whether the pending code's window has closed.
func OTPExpired(expiresAt time.Time, now time.Time) bool {
	return now.After(expiresAt)
}

/* ==========================
   REQUEST OTP
========================== */

// RequestOTP generates a fresh code for an existing account and dispatches
// it through the delivery collaborator. A request while a code is pending
// overwrites it; the old code dies the moment a new one is persisted.
// On delivery failure the persisted OTP fields are left as-is; the caller
// retries by requesting again, which regenerates everything.
func RequestOTP(db *gorm.DB, sender mailer.Sender, email string, ttl time.Duration) error {
	var user userModel.UserModel
	if err := db.Where("user_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found. Please contact administrator to register.")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to look up user")
	}

	code, err := GenerateOTP()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate OTP")
	}
	expires := time.Now().Add(ttl)

	if err := db.Model(&userModel.UserModel{}).
		Where("user_id = ?", user.UserID).
		Updates(map[string]interface{}{
			"user_otp_code":       code,
			"user_otp_expires_at": expires,
		}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to store OTP")
	}

	if err := sender.Send(email, code); err != nil {
		log.Printf("[ERROR] OTP mail to %s failed: %v", email, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to send OTP email. Please try again.")
	}
	return nil
}

/* ==========================
   VERIFY OTP
========================== */

// EvaluateOTP applies the verification sequence to a loaded account:
// pending check, then expiry, then exact compare. The order matters; an
// expired code must never be reported as a mismatch, and a consumed code
// (both fields cleared) lands on the "no OTP" branch rather than either.
func EvaluateOTP(user *userModel.UserModel, code string, now time.Time) error {
	if !user.HasPendingOTP() {
		return fiber.NewError(fiber.StatusBadRequest, "No OTP found. Please request a new one.")
	}
	if OTPExpired(*user.UserOTPExpires, now) {
		return fiber.NewError(fiber.StatusBadRequest, "OTP has expired. Please request a new one.")
	}
	if *user.UserOTPCode != code {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid OTP")
	}
	return nil
}

// VerifyOTP checks the pending code for the account and consumes it on
// success.
func VerifyOTP(db *gorm.DB, email, code string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("user_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to look up user")
	}

	if err := EvaluateOTP(&user, code, time.Now()); err != nil {
		return nil, err
	}

	// Consume: verified flag on, both OTP fields cleared so the code can
	// never be replayed.
	if err := db.Model(&userModel.UserModel{}).
		Where("user_id = ?", user.UserID).
		Updates(map[string]interface{}{
			"user_is_verified":    true,
			"user_otp_code":       nil,
			"user_otp_expires_at": nil,
		}).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to update user")
	}

	user.UserIsVerified = true
	user.UserOTPCode = nil
	user.UserOTPExpires = nil
	return &user, nil
}
