// File: internal/api/create_users_request.go
package api

// CreateUsersRequest 批次新增使用者的請求，users 不可缺少或為空
// swagger:model api.CreateUsersRequest
type CreateUsersRequest struct {
	Users []CreateUserEntry `json:"users" validate:"required,min=1,dive"`
}

// swagger:model api.CreateUserEntry
type CreateUserEntry struct {
	Email string  `json:"email" validate:"required,email" example:"bob@example.com"`
	Name  *string `json:"name" example:"Bob"`
}
