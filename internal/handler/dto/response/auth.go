package response

import "pos-terminal/internal/usecase/queries"

type LoginResponse struct {
	UserID string            `json:"user_id"`
	User   *queries.UserView `json:"user,omitempty"`
}

type RegisterResponse struct {
	Success bool              `json:"success"`
	User    *queries.UserView `json:"user,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
