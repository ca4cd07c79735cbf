package dto

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

// ContactInput carries the five business fields accepted on create and on
// full update. Birthday travels as a YYYY-MM-DD string.
type ContactInput struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Birthday string `json:"birthday"`
}

// Validate checks all fields and returns the parsed birthday.
func (c ContactInput) Validate() (time.Time, error) {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Surname) == "" {
		return time.Time{}, errors.New("name and surname are required")
	}
	if strings.TrimSpace(c.Phone) == "" {
		return time.Time{}, errors.New("phone is required")
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return time.Time{}, errors.New("email must be a valid address")
	}
	birthday, err := time.Parse(time.DateOnly, c.Birthday)
	if err != nil {
		return time.Time{}, errors.New("birthday must be a valid YYYY-MM-DD date")
	}
	return birthday, nil
}
