package auth

import (
	"testing"

	"satoru/config"
	domainerrors "satoru/internal/domain/errors"
	"satoru/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func strictHasherConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(strictHasherConfig())

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)
	assert.NotEqual(t, "StrongPass123!", hash)

	assert.True(t, hasher.Check("StrongPass123!", hash))
	assert.False(t, hasher.Check("WrongPass123!", hash))
	assert.False(t, hasher.Check("StrongPass123!", "not-a-hash"))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hasher := NewBcryptHasher(strictHasherConfig())

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(strictHasherConfig())

	weakPasswords := []string{
		"Ab1!",         // Too short
		"PASSWORD123!", // No lowercase
		"password123!", // No uppercase
		"PasswordABC!", // No numbers
		"Password1234", // No special characters
	}
	for _, weak := range weakPasswords {
		err := hasher.ValidatePasswordStrength(weak)
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength), "expected strength error for %q", weak)
	}

	assert.NoError(t, hasher.ValidatePasswordStrength("StrongPass123!"))
}

func TestBcryptHasher_DefaultsOnlyEnforceLength(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	assert.Error(t, hasher.ValidatePasswordStrength("short"))
	assert.NoError(t, hasher.ValidatePasswordStrength("longenough"))
}
