package dto

// RegisterRequest represents a registration request (POST /login)
type RegisterRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Password      string  `json:"password" binding:"required"`
	Major         *string `json:"major"`
	LearningStyle *string `json:"learning_style"`
	Availability  *int64  `json:"availability"`
}

// LoginRequest represents login credentials (PUT /login)
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// LoginResponse is returned after a successful login. The token is
// advisory, routes do not require it.
type LoginResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
	Token   string `json:"token,omitempty"`
}
