package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/freeboard/board-client/internal/core/domain"
	"github.com/freeboard/board-client/internal/core/service"
)

// HomeHandler serves the post list page.
type HomeHandler struct {
	sessions *service.SessionService
	posts    *service.PostService
}

func NewHomeHandler(sessions *service.SessionService, posts *service.PostService) *HomeHandler {
	return &HomeHandler{sessions: sessions, posts: posts}
}

type homePageData struct {
	baseData
	Page        *domain.PostPage
	Query       domain.PostQuery
	CurrentPage int
}

// Home handles GET /. Search text and type live in the URL so result pages
// stay shareable; the page index is 1-based here and translated below.
func (h *HomeHandler) Home(c echo.Context) error {
	query := domain.PostQuery{
		Search:     c.QueryParam("search"),
		SearchType: c.QueryParam("searchType"),
		Page:       1,
	}
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		query.Page = p
	}
	if query.SearchType == "" {
		query.SearchType = domain.SearchAll
	}

	page, err := h.posts.List(c.Request().Context(), sessionToken(c), query)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "home", homePageData{
		baseData:    newBaseData(c, h.sessions, "게시판"),
		Page:        page,
		Query:       query,
		CurrentPage: page.Number + 1,
	})
}
