package utils

import "testing"

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "first.last+tag@example.com", "x_1@sub.domain.org"}
	invalid := []string{"", "plain", "@no-local.com", "no-at.com", "a@b", "a b@c.com"}

	for _, s := range valid {
		if !ValidEmail(s) {
			t.Errorf("ValidEmail(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if ValidEmail(s) {
			t.Errorf("ValidEmail(%q) = true, want false", s)
		}
	}
}

func TestValidPhone(t *testing.T) {
	if !ValidPhone("9876543210") {
		t.Error("10-digit number rejected")
	}
	for _, s := range []string{"", "12345", "98765432101", "98765abc10", "+919876543210"} {
		if ValidPhone(s) {
			t.Errorf("ValidPhone(%q) = true, want false", s)
		}
	}
}

func TestValidUsername(t *testing.T) {
	valid := []string{"abcd", "user_name", "a.b-c_d", "recruiter42"}
	invalid := []string{"", "abc", "has space", "way-too-long-username-over-thirty-chars", "emoji😀"}

	for _, s := range valid {
		if !ValidUsername(s) {
			t.Errorf("ValidUsername(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if ValidUsername(s) {
			t.Errorf("ValidUsername(%q) = true, want false", s)
		}
	}
}

func TestPasswordPattern(t *testing.T) {
	if !PasswordPattern.MatchString("Secret@123") {
		t.Error("typical password rejected")
	}
	if PasswordPattern.MatchString("short1") {
		t.Error("7-char password accepted")
	}
	if PasswordPattern.MatchString("has space 123") {
		t.Error("password with space accepted")
	}
}
