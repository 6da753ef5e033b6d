// Package password хеширует и проверяет пароли пользователей (bcrypt).
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword возвращается при попытке захешировать пустой пароль
var ErrEmptyPassword = errors.New("password cannot be empty")

// Hasher - хеширование и проверка паролей
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher создает Hasher на bcrypt; cost вне допустимого диапазона заменяется на DefaultCost
func NewBcryptHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify возвращает (false, nil) при несовпадении и ошибку при повреждённом хеше
func (h *bcryptHasher) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("failed to verify password: %w", err)
}
