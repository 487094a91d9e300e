package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Email string  `json:"email" validate:"required,email" example:"alice@example.com"`
	Name  *string `json:"name" example:"Alice"`
}
