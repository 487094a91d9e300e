package store

import (
	"context"
	"fmt"

	"user-crud-demo/internal/database"
	"user-crud-demo/internal/model"
)

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (email, name)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		u.Email,
		u.Name,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// CreateUsers 批次新增使用者，email 衝突的項目直接略過不中斷整批
// 回傳實際寫入的筆數
func CreateUsers(ctx context.Context, db database.DB, us []*model.User) (int64, error) {
	emails := make([]string, len(us))
	names := make([]*string, len(us))
	for i, u := range us {
		emails[i] = u.Email
		names[i] = u.Name
	}
	tag, err := db.Exec(ctx,
		`INSERT INTO users (email, name)
		 SELECT * FROM unnest($1::text[], $2::text[])
		 ON CONFLICT (email) DO NOTHING`,
		emails,
		names,
	)
	if err != nil {
		return 0, fmt.Errorf("CreateUsers: %w", err)
	}
	return tag.RowsAffected(), nil
}

func UpdateUser(ctx context.Context, db database.DB, u *model.User) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET email = $1, name = $2, updated_at = now()
		 WHERE id = $3`,
		u.Email,
		u.Name,
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUser: %w", err)
	}
	return nil
}

// DeleteUser 刪除指定 ID 的使用者並回傳被刪除的紀錄
// 查無此筆時回傳包裝過的 pgx.ErrNoRows
func DeleteUser(ctx context.Context, db database.DB, id int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`DELETE FROM users WHERE id = $1
		 RETURNING id, email, name, created_at, updated_at`,
		id,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("DeleteUser: %w", err)
	}
	return u, nil
}

// DeleteAllUsers 刪除全部使用者並回傳刪除筆數，空表回傳 0 不算錯誤
func DeleteAllUsers(ctx context.Context, db database.DB) (int64, error) {
	tag, err := db.Exec(ctx, `DELETE FROM users`)
	if err != nil {
		return 0, fmt.Errorf("DeleteAllUsers: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListUsers 回傳全部使用者，依 created_at 由新到舊排序
// 空表回傳空 slice 而非 nil
func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT id, email, name, created_at, updated_at
		 FROM users
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.ID,
			&u.Email,
			&u.Name,
			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}
