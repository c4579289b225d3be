package models

// Admin defines the admin model based on the 'admins' table. Admins are
// independent of users, there is no shared account record.
type Admin struct {
	ID    int64  `json:"adminid" db:"adminid"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
	Role  string `json:"role" db:"role"`
}
