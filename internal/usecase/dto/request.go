package dto

import (
	"strings"

	"github.com/listing-service/internal/pkg/errors"
	"github.com/listing-service/internal/pkg/validator"
)

// SignupRequest - регистрация пользователя
type SignupRequest struct {
	Email    string  `json:"email" validate:"required,email,max=256"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Username *string `json:"username,omitempty" validate:"omitempty,max=80"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=14"`
}

// LoginRequest - вход по email и паролю
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// EditUserRequest - частичное обновление профиля; пустые поля не меняются
type EditUserRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,max=80"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=256"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=14"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
}

// CreateListingRequest - создание объявления
type CreateListingRequest struct {
	Address            string   `json:"address" validate:"max=256"`
	Title              string   `json:"title" validate:"max=30"`
	Description        string   `json:"description" validate:"max=200"`
	PickupInstructions string   `json:"pickup_instructions" validate:"max=200"`
	StockNum           *int     `json:"stock_num,omitempty" validate:"omitempty,min=0"`
	Tags               []string `json:"tags,omitempty" validate:"omitempty,max=20,dive,max=20"`
}

// Validate проверяет обязательные поля в порядке: адрес, затем текст объявления,
// затем ограничения длины
func (r *CreateListingRequest) Validate() error {
	if strings.TrimSpace(r.Address) == "" {
		return errors.ErrMissingAddress
	}
	if strings.TrimSpace(r.Title) == "" ||
		strings.TrimSpace(r.Description) == "" ||
		strings.TrimSpace(r.PickupInstructions) == "" {
		return errors.ErrMissingListingComponent
	}
	return validator.Validate(r)
}

// UpdateListingRequest - частичное обновление объявления.
// Tags: nil - не менять, пустой список - удалить все метки
type UpdateListingRequest struct {
	Title              *string  `json:"title,omitempty" validate:"omitempty,max=30"`
	Description        *string  `json:"description,omitempty" validate:"omitempty,max=200"`
	PickupInstructions *string  `json:"pickup_instructions,omitempty" validate:"omitempty,max=200"`
	StockNum           *int     `json:"stock_num,omitempty" validate:"omitempty,min=0"`
	Tags               []string `json:"tags,omitempty" validate:"omitempty,max=20,dive,max=20"`
}

// SearchQuery - параметры поиска по ключевым словам и меткам
type SearchQuery struct {
	Keywords string
	Tags     string
	Lat      *float64
	Lon      *float64
}
