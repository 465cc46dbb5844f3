package entity

import "time"

// Admin is a privileged identity permitted to manage products and orders.
// Password holds a bcrypt hash, never the raw password.
type Admin struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
