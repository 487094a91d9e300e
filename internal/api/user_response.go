// File: internal/api/user_response.go
package api

import "time"

// UserData 回應中的使用者欄位，格式與前端約定為 camelCase
// swagger:model api.UserData
type UserData struct {
	ID        int       `json:"id" example:"1"`
	Email     string    `json:"email" example:"alice@example.com"`
	Name      *string   `json:"name" example:"Alice"`
	CreatedAt time.Time `json:"createdAt" example:"2025-05-01T15:04:05Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2025-05-01T15:04:05Z"`
}

// swagger:model api.UserResponse
type UserResponse struct {
	Success bool     `json:"success" example:"true"`
	Message string   `json:"message" example:"user created successfully"`
	User    UserData `json:"user"`
}

// swagger:model api.UsersResponse
type UsersResponse struct {
	Success bool       `json:"success" example:"true"`
	Users   []UserData `json:"users"`
}

// CountResponse 批次操作回應，count 為實際影響的筆數
// swagger:model api.CountResponse
type CountResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"2 users created successfully"`
	Count   int64  `json:"count" example:"2"`
}
