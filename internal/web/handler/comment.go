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

// CommentHandler serves the comment mutations under a post. Every action
// lands back on the detail page of the parent post.
type CommentHandler struct {
	sessions *service.SessionService
	comments *service.CommentService
}

func NewCommentHandler(sessions *service.SessionService, comments *service.CommentService) *CommentHandler {
	return &CommentHandler{sessions: sessions, comments: comments}
}

type commentForm struct {
	Content string `form:"content"`
}

func postURL(postID int64) string {
	return "/post/" + strconv.FormatInt(postID, 10)
}

// Create handles POST /post/:id/comments.
func (h *CommentHandler) Create(c echo.Context) error {
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var form commentForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "잘못된 요청입니다.")
	}

	sid := middleware.SIDFrom(c)
	if _, err := h.comments.Create(c.Request().Context(), sessionToken(c), postID, form.Content); err != nil {
		h.sessions.Flash(c.Request().Context(), sid, formError(err, "댓글 작성에 실패했습니다."))
	}
	return c.Redirect(http.StatusSeeOther, postURL(postID))
}

// Update handles POST /post/:id/comments/:cid. A validation failure returns
// to the inline edit form instead of closing it.
func (h *CommentHandler) Update(c echo.Context) error {
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	commentID, err := paramID(c, "cid")
	if err != nil {
		return err
	}

	var form commentForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "잘못된 요청입니다.")
	}

	sid := middleware.SIDFrom(c)
	if _, err := h.comments.Update(c.Request().Context(), sessionToken(c), postID, commentID, form.Content); err != nil {
		h.sessions.Flash(c.Request().Context(), sid, formError(err, "댓글 수정에 실패했습니다."))

		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return c.Redirect(http.StatusSeeOther, postURL(postID)+"?edit_comment="+strconv.FormatInt(commentID, 10))
		}
	}
	return c.Redirect(http.StatusSeeOther, postURL(postID))
}

// Delete handles POST /post/:id/comments/:cid/delete.
func (h *CommentHandler) Delete(c echo.Context) error {
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	commentID, err := paramID(c, "cid")
	if err != nil {
		return err
	}

	sid := middleware.SIDFrom(c)
	if err := h.comments.Delete(c.Request().Context(), sessionToken(c), postID, commentID); err != nil {
		h.sessions.Flash(c.Request().Context(), sid, domain.ServerMessage(err, "댓글 삭제에 실패했습니다."))
	}
	return c.Redirect(http.StatusSeeOther, postURL(postID))
}

// Like handles POST /post/:id/comments/:cid/like. Only the affected row
// changes; the backend's patch drives the confirmation notice.
func (h *CommentHandler) Like(c echo.Context) error {
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	commentID, err := paramID(c, "cid")
	if err != nil {
		return err
	}

	sid := middleware.SIDFrom(c)
	like, err := h.comments.ToggleLike(c.Request().Context(), sessionToken(c), postID, commentID)
	if err != nil {
		h.sessions.Flash(c.Request().Context(), sid, domain.ServerMessage(err, "추천 처리에 실패했습니다."))
		return c.Redirect(http.StatusSeeOther, postURL(postID))
	}

	msg := "추천이 취소되었습니다"
	if like.LikedByCurrentUser {
		msg = "추천 하였습니다"
	}
	h.sessions.Flash(c.Request().Context(), sid, msg)
	return c.Redirect(http.StatusSeeOther, postURL(postID))
}
