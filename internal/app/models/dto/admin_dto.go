package dto

// CreateAdminUserRequest creates a user from the admin dashboard
type CreateAdminUserRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Password      string  `json:"password" binding:"required"`
	Major         *string `json:"major"`
	LearningStyle *string `json:"learning_style"`
	Availability  *int64  `json:"availability"`
}

// CreateAdminRequest creates a new admin account
type CreateAdminRequest struct {
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// UpdateAdminRequest carries a partial admin update
type UpdateAdminRequest struct {
	Name  *string `json:"name"`
	Role  *string `json:"role"`
	Email *string `json:"email"`
}

// HasFields reports whether at least one recognized field is present
func (r *UpdateAdminRequest) HasFields() bool {
	return r.Name != nil || r.Role != nil || r.Email != nil
}

// CreatedUserResponse reports a created user's generated id
type CreatedUserResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userid"`
}

// CreatedAdminResponse reports a created admin's generated id
type CreatedAdminResponse struct {
	Message string `json:"message"`
	AdminID int64  `json:"adminid"`
}

// CountResponse reports a table row count
type CountResponse struct {
	Count int64 `json:"count"`
}
