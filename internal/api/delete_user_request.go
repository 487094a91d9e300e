package api

// swagger:model api.DeleteUserRequest
type DeleteUserRequest struct {
	ID int `json:"id" validate:"required" example:"1"`
}
