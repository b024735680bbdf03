package pwhash

import (
	"testing"
)

func TestHashAndComparePassword(t *testing.T) {
	t.Run("matching password", func(t *testing.T) {
		hash, err := HashPassword("s3cret-Passw0rd")
		if err != nil {
			t.Fatal(err)
		}

		match, err := ComparePasswordWithHash(hash, "s3cret-Passw0rd")
		if err != nil {
			t.Fatal(err)
		}
		if !match {
			t.Error("password should match")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		hash, err := HashPassword("s3cret-Passw0rd")
		if err != nil {
			t.Fatal(err)
		}

		match, err := ComparePasswordWithHash(hash, "other-Passw0rd")
		if err != nil {
			t.Fatal(err)
		}
		if match {
			t.Error("password should not match")
		}
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		h1, err := HashPassword("s3cret-Passw0rd")
		if err != nil {
			t.Fatal(err)
		}
		h2, err := HashPassword("s3cret-Passw0rd")
		if err != nil {
			t.Fatal(err)
		}
		if h1 == h2 {
			t.Error("salted hashes should differ")
		}
	})

	t.Run("with malformed hash", func(t *testing.T) {
		if _, err := ComparePasswordWithHash("not-a-hash", "pw"); err == nil {
			t.Error("should fail on malformed hash")
		}
	})
}
