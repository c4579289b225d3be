package models

import "time"

// User defines the user model based on the 'users' table. The availability
// column is an integer bitmask whose set bits mark free time slots.
type User struct {
	ID            int64      `json:"userid" db:"userid"`
	Name          string     `json:"name" db:"name"`
	Email         string     `json:"email" db:"email"`
	Password      string     `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Major         *string    `json:"major" db:"major"`
	LearningStyle *string    `json:"learning_style" db:"learning_style"`
	Availability  *int64     `json:"availability" db:"availability"`
	LastLogin     *time.Time `json:"last_login,omitempty" db:"last_login"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}
