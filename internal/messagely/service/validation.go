package service

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/aussiebroadwan/messagely/pkg/cryptox"
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.\-]+$`)
	phonePattern    = regexp.MustCompile(`^[0-9 +()\-]+$`)
)

// RegisterInput carries the fields of a registration.
type RegisterInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// Validate checks the registration payload.
func (in RegisterInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Username,
			validation.Required,
			validation.Length(1, 64),
			validation.Match(usernamePattern).Error("may only contain letters, digits, '.', '_' and '-'"),
		),
		validation.Field(&in.Password,
			validation.Required,
			validation.By(maxBytes(cryptox.MaxPasswordBytes)),
		),
		validation.Field(&in.FirstName, validation.Required, validation.RuneLength(1, 100)),
		validation.Field(&in.LastName, validation.Required, validation.RuneLength(1, 100)),
		validation.Field(&in.Phone,
			validation.Length(0, 20),
			validation.Match(phonePattern).Error("may only contain digits, spaces and +-()"),
		),
	)
}

// SendInput carries the fields of a new message.
type SendInput struct {
	ToUsername string `json:"to_username"`
	Body       string `json:"body"`
}

// MaxBodyRunes caps message bodies.
const MaxBodyRunes = 4096

// Validate checks the message payload.
func (in SendInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.ToUsername, validation.Required, validation.Length(1, 64)),
		validation.Field(&in.Body, validation.Required, validation.RuneLength(1, MaxBodyRunes)),
	)
}

// maxBytes limits a string by byte length. bcrypt ignores anything past 72 bytes.
func maxBytes(limit int) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if len(s) > limit {
			return fmt.Errorf("must be at most %d bytes", limit)
		}
		return nil
	}
}
