package dto

import "github.com/studybuddy/backend/internal/app/models"

// UpdateUserRequest carries a partial profile update. All fields are
// optional, a request recognizing none of them is a 400.
type UpdateUserRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Major         *string `json:"major"`
	LearningStyle *string `json:"learning_style"`
	Availability  *int64  `json:"availability"`
}

// HasFields reports whether at least one recognized field is present
func (r *UpdateUserRequest) HasFields() bool {
	return r.Name != nil || r.Email != nil || r.Major != nil ||
		r.LearningStyle != nil || r.Availability != nil
}

// UpdateUserResponse returns the updated row alongside the message
type UpdateUserResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}
