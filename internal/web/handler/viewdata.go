package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/freeboard/board-client/internal/core/domain"
	"github.com/freeboard/board-client/internal/core/service"
	"github.com/freeboard/board-client/internal/web/middleware"
)

// baseData carries what the base layout needs on every page: the session for
// the navbar, the pending flash notice, and the navbar search box value.
type baseData struct {
	Title   string
	Session *domain.Session
	Flash   string
	Search  string
}

// newBaseData builds the layout data for this request, popping any pending
// flash notice.
func newBaseData(c echo.Context, sessions *service.SessionService, title string) baseData {
	sess := middleware.SessionFrom(c)
	return baseData{
		Title:   title,
		Session: sess,
		Flash:   sessions.PopFlash(c.Request().Context(), sess),
		Search:  c.QueryParam("search"),
	}
}
