package user

import (
	"fmt"
	"net/mail"
	"unicode"
)

const (
	MaxEmailLen    = 254
	MinPasswordLen = 8
	MaxPasswordLen = 72 // предел bcrypt
)

// Validator - интерфейс для валидации пользовательских данных
type Validator interface {
	ValidateRegister(email, password string) error
	ValidateEmail(email string) error
	ValidatePassword(password string) error
}

type PasswordValidator struct {
	requireSpecialChar bool
	requireDigit       bool
	requireUpper       bool
	requireLower       bool
}

// NewPasswordValidator создает новый валидатор
func NewPasswordValidator() *PasswordValidator {
	return &PasswordValidator{
		requireSpecialChar: true,
		requireDigit:       true,
		requireUpper:       true,
		requireLower:       true,
	}
}

// ValidateRegister валидирует данные для регистрации
func (v *PasswordValidator) ValidateRegister(email, password string) error {
	if err := v.ValidateEmail(email); err != nil {
		return fmt.Errorf("email validation failed: %w", err)
	}

	if err := v.ValidatePassword(password); err != nil {
		return fmt.Errorf("password validation failed: %w", err)
	}

	return nil
}

// ValidateEmail валидирует адрес почты
func (v *PasswordValidator) ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email must not be empty")
	}

	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must be at most %d characters", MaxEmailLen)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("email is not a valid address")
	}

	return nil
}

// ValidatePassword валидирует пароль
func (v *PasswordValidator) ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}

	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password must be at most %d bytes", MaxPasswordLen)
	}

	hasLower := false
	hasUpper := false
	hasDigit := false
	hasSpecial := false

	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if v.requireLower && !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}

	if v.requireUpper && !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}

	if v.requireDigit && !hasDigit {
		return fmt.Errorf("password must contain at least one digit")
	}

	if v.requireSpecialChar && !hasSpecial {
		return fmt.Errorf("password must contain at least one special character")
	}

	return nil
}
