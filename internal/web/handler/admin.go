package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/freeboard/board-client/internal/core/domain"
	"github.com/freeboard/board-client/internal/core/service"
	"github.com/freeboard/board-client/internal/web/middleware"
)

// AdminHandler serves the tabbed management console.
type AdminHandler struct {
	sessions *service.SessionService
	admins   *service.AdminService
}

func NewAdminHandler(sessions *service.SessionService, admins *service.AdminService) *AdminHandler {
	return &AdminHandler{sessions: sessions, admins: admins}
}

type adminPageData struct {
	baseData
	Tab  string
	Data *service.AdminData
}

type adminDeleteForm struct {
	Type string `form:"type" validate:"required"`
	ID   int64  `form:"id"   validate:"required"`
	Tab  string `form:"tab"`
}

func adminTab(raw string) string {
	switch raw {
	case "posts", "comments":
		return raw
	default:
		return "users"
	}
}

// Console handles GET /admin. The three tables load with three concurrent
// backend requests.
func (h *AdminHandler) Console(c echo.Context) error {
	data, err := h.admins.FetchAll(c.Request().Context(), sessionToken(c))
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "admin", adminPageData{
		baseData: newBaseData(c, h.sessions, "관리자 페이지"),
		Tab:      adminTab(c.QueryParam("tab")),
		Data:     data,
	})
}

// Delete handles POST /admin/delete: one confirmed row removal, then back to
// the same tab. The page refetches on render, so the deleted row is gone
// without any client-side bookkeeping.
func (h *AdminHandler) Delete(c echo.Context) error {
	var form adminDeleteForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "잘못된 요청입니다.")
	}
	if err := c.Validate(form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess := middleware.SessionFrom(c)
	sid := middleware.SIDFrom(c)
	target := "/admin?tab=" + adminTab(form.Tab)

	var actor *domain.User
	if sess != nil {
		actor = sess.User
	}

	err := h.admins.Delete(c.Request().Context(), sessionToken(c), actor, form.Type, form.ID)
	switch {
	case errors.Is(err, domain.ErrSelfDelete):
		h.sessions.Flash(c.Request().Context(), sid, "자신의 계정은 삭제할 수 없습니다.")
	case err != nil:
		h.sessions.Flash(c.Request().Context(), sid, domain.ServerMessage(err, "삭제에 실패했습니다."))
	default:
		h.sessions.Flash(c.Request().Context(), sid, "삭제되었습니다. (ID: "+strconv.FormatInt(form.ID, 10)+")")
	}
	return c.Redirect(http.StatusSeeOther, target)
}
