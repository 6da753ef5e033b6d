package domain

import "time"

// User - зарегистрированный пользователь (производитель объявлений)
type User struct {
	ID           int64     `json:"user_ID" db:"user_id"`
	PasswordHash string    `json:"-" db:"pwd"`
	Email        string    `json:"email" db:"email"`
	PhoneNum     *string   `json:"phone_num,omitempty" db:"phone_num"`
	Username     *string   `json:"username,omitempty" db:"username"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// UserPatch - частичное обновление профиля; nil означает "не менять"
type UserPatch struct {
	Email        *string
	PasswordHash *string
	PhoneNum     *string
	Username     *string
}

// IsEmpty - нет ни одного изменяемого поля
func (p UserPatch) IsEmpty() bool {
	return p.Email == nil && p.PasswordHash == nil && p.PhoneNum == nil && p.Username == nil
}
