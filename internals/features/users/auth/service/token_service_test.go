package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"scholax_backend/internals/constants"
)

const testSecret = "test-secret-key"

func TestIssueAndParseToken(t *testing.T) {
	userID := uuid.New()
	token, err := IssueToken(testSecret, time.Hour, userID, "staff@example.com", constants.RoleTeacher)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims["sub"] != userID.String() || claims["id"] != userID.String() {
		t.Errorf("identity claims wrong: sub=%v id=%v", claims["sub"], claims["id"])
	}
	if claims["email"] != "staff@example.com" {
		t.Errorf("email claim = %v", claims["email"])
	}
	if claims["role"] != constants.RoleTeacher {
		t.Errorf("role claim = %v", claims["role"])
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := IssueToken(testSecret, time.Hour, uuid.New(), "a@b.c", constants.RoleStudent)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := ParseToken("other-secret", token); err == nil {
		t.Error("expected failure with wrong secret")
	}
}

func TestParseTokenTampered(t *testing.T) {
	token, err := IssueToken(testSecret, time.Hour, uuid.New(), "a@b.c", constants.RoleStudent)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape")
	}
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]
	if _, err := ParseToken(testSecret, tampered); err == nil {
		t.Error("expected failure on tampered payload")
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := IssueToken(testSecret, -time.Minute, uuid.New(), "a@b.c", constants.RoleStudent)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := ParseToken(testSecret, token); err == nil {
		t.Error("expected failure on expired token")
	}
}

func TestIssueTokenEmptySecret(t *testing.T) {
	if _, err := IssueToken("", time.Hour, uuid.New(), "a@b.c", constants.RoleStudent); err == nil {
		t.Error("expected failure with empty secret")
	}
}
