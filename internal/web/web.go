// File: internal/web/web.go
package web

import (
	"embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed index.html
var assets embed.FS

// Register 掛載內嵌的示範頁面至 /
func Register(e *echo.Echo) {
	e.GET("/", func(c echo.Context) error {
		page, err := assets.ReadFile("index.html")
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "page unavailable")
		}
		return c.HTMLBlob(http.StatusOK, page)
	})
}
