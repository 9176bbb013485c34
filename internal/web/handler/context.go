package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/freeboard/board-client/internal/core/domain"
	"github.com/freeboard/board-client/internal/web/middleware"
)

// paramID parses a positive numeric path parameter. Anything else is a 404:
// there is no record behind a malformed id.
func paramID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrNotFound
	}
	return id, nil
}

// sessionToken returns the bearer token for this request, empty when
// anonymous.
func sessionToken(c echo.Context) string {
	if sess := middleware.SessionFrom(c); sess != nil {
		return sess.Token
	}
	return ""
}
