// File: internal/model/user.go
package model

import "time"

// User 對應 users 資料表的一筆紀錄
// Name 可為 NULL，以 *string 表示
type User struct {
	ID        int       `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Name      *string   `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
