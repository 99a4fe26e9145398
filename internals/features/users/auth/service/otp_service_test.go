package service

import (
	"strings"
	"testing"
	"time"

	userModel "scholax_backend/internals/features/users/user/model"
)

func TestGenerateOTP(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 200; i++ {
		code, err := GenerateOTP()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("expected 6 digits, got %q", code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("non-digit in code %q", code)
			}
		}
		if code[0] == '0' {
			t.Fatalf("code %q below 100000", code)
		}
		seen[code] = struct{}{}
	}
	// 200 draws from 900k values colliding down to a handful would mean a
	// broken generator
	if len(seen) < 150 {
		t.Errorf("suspiciously many duplicate codes: %d unique of 200", len(seen))
	}
}

func TestEvaluateOTP(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	code := "482913"
	pending := func(c string, expiresAt time.Time) *userModel.UserModel {
		return &userModel.UserModel{UserOTPCode: &c, UserOTPExpires: &expiresAt}
	}

	tests := []struct {
		name    string
		user    *userModel.UserModel
		code    string
		wantErr string
	}{
		{
			name: "valid code inside window",
			user: pending(code, now.Add(5*time.Minute)),
			code: code,
		},
		{
			name:    "no pending code",
			user:    &userModel.UserModel{},
			code:    code,
			wantErr: "No OTP found",
		},
		{
			name:    "consumed code fails as no OTP, not mismatch",
			user:    &userModel.UserModel{UserIsVerified: true},
			code:    code,
			wantErr: "No OTP found",
		},
		{
			name:    "expired code with right digits fails as expired",
			user:    pending(code, now.Add(-time.Minute)),
			code:    code,
			wantErr: "expired",
		},
		{
			name:    "expired code with wrong digits still fails as expired",
			user:    pending(code, now.Add(-time.Minute)),
			code:    "000000",
			wantErr: "expired",
		},
		{
			name:    "wrong code inside window",
			user:    pending(code, now.Add(5*time.Minute)),
			code:    "000000",
			wantErr: "Invalid OTP",
		},
		{
			name:    "whitespace around the code is a mismatch",
			user:    pending(code, now.Add(5*time.Minute)),
			code:    " " + code,
			wantErr: "Invalid OTP",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EvaluateOTP(tt.user, tt.code, now)
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

func TestOTPExpired(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{"future expiry", now.Add(5 * time.Minute), false},
		{"exactly now", now, false},
		{"just past", now.Add(-time.Second), true},
		{"long past", now.Add(-24 * time.Hour), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OTPExpired(tt.expiresAt, now); got != tt.want {
				t.Errorf("OTPExpired(%v) = %v, want %v", tt.expiresAt, got, tt.want)
			}
		})
	}
}
