// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"user-crud-demo/internal/database"
	"user-crud-demo/internal/handler"
	"user-crud-demo/internal/handler/users"
	"user-crud-demo/internal/web"
)

// Setup 註冊所有路由並注入 db
func Setup(e *echo.Echo, db database.DB) {
	// 示範頁面
	web.Register(e)

	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db))

	// Users CRUD
	api.POST("/create-user", users.CreateUserHandler(db))
	api.POST("/create-many-users", users.CreateUsersHandler(db))
	api.DELETE("/delete-user", users.DeleteUserHandler(db))
	api.DELETE("/delete-all-users", users.DeleteAllUsersHandler(db))
	api.GET("/list-users", users.ListUsersHandler(db))
}
