package models

import "time"

// Registration 가입 신청 정보
type Registration struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"` // bcrypt 해시
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// StoreRegistrationRequest 가입 신청 요청
type StoreRegistrationRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
}

// ValidateEmailRequest 이메일 중복 확인 요청
type ValidateEmailRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

// EmailAvailability 이메일 중복 확인 응답
type EmailAvailability struct {
	Exists bool `json:"exists"`
}
