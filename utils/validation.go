package utils

import "regexp"

// Patterns ใช้ตรวจ field ตอน update profile (field ไหนไม่ผ่านจะถูกข้าม ไม่ error)
var (
	NamePattern     = regexp.MustCompile(`^[A-Za-z][A-Za-z .'-]{1,49}$`)
	UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]{4,30}$`)
	EmailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	PhonePattern    = regexp.MustCompile(`^[0-9]{10}$`)
	// อย่างน้อย 8 ตัว มีตัวเลขและตัวอักษร
	PasswordPattern = regexp.MustCompile(`^[A-Za-z0-9@#$%^&+=!._-]{8,}$`)
)

func ValidEmail(s string) bool    { return EmailPattern.MatchString(s) }
func ValidPhone(s string) bool    { return PhonePattern.MatchString(s) }
func ValidUsername(s string) bool { return UsernamePattern.MatchString(s) }
