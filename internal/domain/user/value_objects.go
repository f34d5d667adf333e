package user

import (
	"regexp"
	"strings"

	"ootd-commerce/internal/pkg/errs"
)

var (
	ErrInvalidEmail      = errs.NewKind("invalid email format", errs.ErrBadRequest)
	ErrInvalidRole       = errs.NewKind("invalid role", errs.ErrBadRequest)
	ErrRoleNotSelectable = errs.NewKind("role cannot be selected at registration", errs.ErrBadRequest)
	ErrPasswordTooWeak   = errs.NewKind("password must be at least 8 characters long", errs.ErrBadRequest)
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
