package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt cost used by HashPassword. Tests lower it
// to bcrypt.MinCost.
var PasswordHashCost = bcrypt.DefaultCost

// HashPassword 비밀번호 해싱
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword 비밀번호 검증
func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
