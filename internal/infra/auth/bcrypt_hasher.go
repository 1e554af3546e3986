package auth

import (
	"fmt"
	"strings"
	"unicode"

	"satoru/config"
	domainerrors "satoru/internal/domain/errors"
	"satoru/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultMinPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	maxBcryptPasswordLength = 72
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	h := &bcryptHasher{cost: bcrypt.DefaultCost}
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		h.cost = cfg.Auth.BcryptCost
	}
	if cfg.PasswordStrength != nil {
		h.strength = *cfg.PasswordStrength
	}
	if h.strength.MinLength <= 0 {
		h.strength.MinLength = defaultMinPasswordLength
	}
	if h.strength.MaxLength <= 0 || h.strength.MaxLength > maxBcryptPasswordLength {
		h.strength.MaxLength = maxBcryptPasswordLength
	}

	return h
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrInternalError.WrapMessage("hash password")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.strength.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf("password must be at least %d characters", h.strength.MinLength))
	}
	if len(password) > h.strength.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf("password must be at most %d characters", h.strength.MaxLength))
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}

	var missing []string
	if h.strength.RequireUppercase && !upper {
		missing = append(missing, "an uppercase letter")
	}
	if h.strength.RequireLowercase && !lower {
		missing = append(missing, "a lowercase letter")
	}
	if h.strength.RequireNumbers && !digit {
		missing = append(missing, "a number")
	}
	if h.strength.RequireSpecial && !special {
		missing = append(missing, "a special character")
	}
	if len(missing) > 0 {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain " + strings.Join(missing, ", "))
	}

	return nil
}
