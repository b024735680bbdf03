package jwthandling

import (
	"testing"
	"time"
)

func TestUserTokenRoundtrip(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		token, err := GenerateNewUserToken(time.Minute, "user-1", "ADMIN", "Test Admin", "admin@field.org", "", "test-key")
		if err != nil {
			t.Fatal(err)
		}

		claims, valid, err := ValidateUserToken(token, "test-key")
		if err != nil {
			t.Fatal(err)
		}
		if !valid {
			t.Fatal("token should be valid")
		}
		if claims.Subject != "user-1" {
			t.Errorf("unexpected subject: %s", claims.Subject)
		}
		if claims.Role != "ADMIN" {
			t.Errorf("unexpected role: %s", claims.Role)
		}
	})

	t.Run("agent token carries owning admin", func(t *testing.T) {
		token, err := GenerateNewUserToken(time.Minute, "agent-1", "AGENT", "Agent", "agent@field.org", "admin-9", "test-key")
		if err != nil {
			t.Fatal(err)
		}

		claims, valid, err := ValidateUserToken(token, "test-key")
		if err != nil || !valid {
			t.Fatal("token should be valid")
		}
		if claims.AdminID != "admin-9" {
			t.Errorf("unexpected adminID: %s", claims.AdminID)
		}
	})

	t.Run("wrong sign key", func(t *testing.T) {
		token, err := GenerateNewUserToken(time.Minute, "user-1", "ADMIN", "", "", "", "test-key")
		if err != nil {
			t.Fatal(err)
		}

		_, valid, err := ValidateUserToken(token, "other-key")
		if valid {
			t.Error("token should not validate with wrong key")
		}
		if err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := GenerateNewUserToken(-time.Minute, "user-1", "AGENT", "", "", "", "test-key")
		if err != nil {
			t.Fatal(err)
		}

		_, valid, _ := ValidateUserToken(token, "test-key")
		if valid {
			t.Error("expired token should not be valid")
		}
	})
}
