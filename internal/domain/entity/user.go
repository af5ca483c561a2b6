package entity

import "time"

// User is an identity record. Email is stored lowercased and unique.
// PasswordHash only ever holds the bcrypt hash, never a plaintext password.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
