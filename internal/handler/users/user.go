package users

import (
	"fmt"
	"net/http"

	"user-crud-demo/internal/api"
	"user-crud-demo/internal/database"
	"user-crud-demo/internal/model"
	"user-crud-demo/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	createUser     = store.CreateUser
	createUsers    = store.CreateUsers
	deleteUser     = store.DeleteUser
	deleteAllUsers = store.DeleteAllUsers
	listUsers      = store.ListUsers
)

func toUserData(u *model.User) api.UserData {
	return api.UserData{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// CreateUserHandler 建立單一使用者
// @Summary     Create a user
// @Description 新增一筆使用者，email 為必填且不可重複，name 可省略
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateUserRequest true "使用者資料"
// @Success     201  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse "email 缺少或格式錯誤"
// @Failure     500  {object} api.ErrorResponse "email 重複或資料庫錯誤"
// @Router      /create-user [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Email: req.Email,
			Name:  req.Name,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.UserResponse{
			Success: true,
			Message: "user created successfully",
			User:    toUserData(user),
		})
	}
}

// CreateUsersHandler 批次建立使用者
// @Summary     Create many users
// @Description 一次新增多筆使用者，email 重複的項目會被略過，回傳實際寫入筆數
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateUsersRequest true "使用者清單"
// @Success     201  {object} api.CountResponse
// @Failure     400  {object} api.ErrorResponse "users 缺少或為空"
// @Failure     500  {object} api.ErrorResponse
// @Router      /create-many-users [post]
func CreateUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUsersRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		us := make([]*model.User, len(req.Users))
		for i, entry := range req.Users {
			us[i] = &model.User{Email: entry.Email, Name: entry.Name}
		}

		count, err := createUsers(c.Request().Context(), db, us)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.CountResponse{
			Success: true,
			Message: fmt.Sprintf("%d users created successfully", count),
			Count:   count,
		})
	}
}

// DeleteUserHandler 刪除指定 ID 的使用者
// @Summary     Delete a user
// @Description 依 ID 刪除使用者並回傳被刪除的紀錄，查無此筆視為錯誤
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.DeleteUserRequest true "使用者 ID"
// @Success     200  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse "id 缺少"
// @Failure     500  {object} api.ErrorResponse "查無此筆或資料庫錯誤"
// @Router      /delete-user [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.DeleteUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		user, err := deleteUser(c.Request().Context(), db, req.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		return c.JSON(http.StatusOK, api.UserResponse{
			Success: true,
			Message: "user deleted successfully",
			User:    toUserData(user),
		})
	}
}

// DeleteAllUsersHandler 刪除全部使用者
// @Summary     Delete all users
// @Description 無條件刪除全部使用者並回傳刪除筆數，空表回傳 0
// @Tags        users
// @Produce     json
// @Success     200 {object} api.CountResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /delete-all-users [delete]
func DeleteAllUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		count, err := deleteAllUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		return c.JSON(http.StatusOK, api.CountResponse{
			Success: true,
			Message: fmt.Sprintf("%d users deleted successfully", count),
			Count:   count,
		})
	}
}

// ListUsersHandler 列出全部使用者
// @Summary     List users
// @Description 回傳全部使用者，依建立時間由新到舊排序，空表回傳空陣列
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UsersResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /list-users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		data := make([]api.UserData, len(users))
		for i := range users {
			data[i] = toUserData(&users[i])
		}

		return c.JSON(http.StatusOK, api.UsersResponse{
			Success: true,
			Users:   data,
		})
	}
}
