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

// PostHandler serves the detail page, the write/edit form, and the post
// mutations hanging off them.
type PostHandler struct {
	sessions *service.SessionService
	posts    *service.PostService
	comments *service.CommentService
}

func NewPostHandler(sessions *service.SessionService, posts *service.PostService, comments *service.CommentService) *PostHandler {
	return &PostHandler{sessions: sessions, posts: posts, comments: comments}
}

type postForm struct {
	Title   string `form:"title"   validate:"required"`
	Content string `form:"content" validate:"required"`
}

type postPageData struct {
	baseData
	Post           *domain.Post
	Comments       []domain.Comment
	CommentsError  string
	EditingComment int64
}

type writePageData struct {
	baseData
	Mode         string // "write" or "edit"
	PostID       int64
	FormTitle    string
	FormContent  string
	ErrorMessage string
}

// Show handles GET /post/:id. A failing comment fetch degrades to an inline
// notice instead of failing the whole page.
func (h *PostHandler) Show(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	token := sessionToken(c)
	post, err := h.posts.Get(c.Request().Context(), token, id)
	if err != nil {
		return err
	}

	data := postPageData{
		baseData: newBaseData(c, h.sessions, post.Title),
		Post:     post,
	}

	comments, err := h.comments.List(c.Request().Context(), token, id)
	if err != nil {
		data.CommentsError = "댓글을 불러오는데 실패했습니다."
	} else {
		data.Comments = comments
	}

	if cid, err := strconv.ParseInt(c.QueryParam("edit_comment"), 10, 64); err == nil {
		data.EditingComment = cid
	}

	return c.Render(http.StatusOK, "post", data)
}

// Like handles POST /post/:id/like. The backend returns the full updated
// post; the page re-renders from it after the redirect, with a one-shot
// confirmation notice.
func (h *PostHandler) Like(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	target := "/post/" + strconv.FormatInt(id, 10)
	sid := middleware.SIDFrom(c)

	post, err := h.posts.ToggleLike(c.Request().Context(), sessionToken(c), id)
	if err != nil {
		h.sessions.Flash(c.Request().Context(), sid, domain.ServerMessage(err, "추천 처리에 실패했습니다."))
		return c.Redirect(http.StatusSeeOther, target)
	}

	msg := "추천이 취소되었습니다"
	if post.LikedByCurrentUser {
		msg = "추천 하였습니다"
	}
	h.sessions.Flash(c.Request().Context(), sid, msg)
	return c.Redirect(http.StatusSeeOther, target)
}

// Delete handles POST /post/:id/delete and returns to the list.
func (h *PostHandler) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.posts.Delete(c.Request().Context(), sessionToken(c), id); err != nil {
		return err
	}
	h.sessions.Flash(c.Request().Context(), middleware.SIDFrom(c), "게시글이 삭제되었습니다.")
	return c.Redirect(http.StatusSeeOther, "/")
}

// WritePage handles GET /write.
func (h *PostHandler) WritePage(c echo.Context) error {
	return c.Render(http.StatusOK, "write", writePageData{
		baseData: newBaseData(c, h.sessions, "글쓰기"),
		Mode:     "write",
	})
}

// WriteSubmit handles POST /write. Empty or whitespace-only fields re-render
// the form with an inline error; no backend request is issued for them.
func (h *PostHandler) WriteSubmit(c echo.Context) error {
	var form postForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "잘못된 요청입니다.")
	}

	post, err := h.posts.Create(c.Request().Context(), sessionToken(c), form.Title, form.Content)
	if err != nil {
		return c.Render(writeFailStatus(err), "write", writePageData{
			baseData:     newBaseData(c, h.sessions, "글쓰기"),
			Mode:         "write",
			FormTitle:    form.Title,
			FormContent:  form.Content,
			ErrorMessage: formError(err, "게시글 작성에 실패했습니다."),
		})
	}
	return c.Redirect(http.StatusSeeOther, "/post/"+strconv.FormatInt(post.ID, 10))
}

// EditPage handles GET /edit/:id, prefilled from the edit endpoint.
func (h *PostHandler) EditPage(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.posts.GetForEdit(c.Request().Context(), sessionToken(c), id)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "write", writePageData{
		baseData:    newBaseData(c, h.sessions, "게시글 수정"),
		Mode:        "edit",
		PostID:      post.ID,
		FormTitle:   post.Title,
		FormContent: post.Content,
	})
}

// EditSubmit handles POST /edit/:id.
func (h *PostHandler) EditSubmit(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var form postForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "잘못된 요청입니다.")
	}

	post, err := h.posts.Update(c.Request().Context(), sessionToken(c), id, form.Title, form.Content)
	if err != nil {
		return c.Render(writeFailStatus(err), "write", writePageData{
			baseData:     newBaseData(c, h.sessions, "게시글 수정"),
			Mode:         "edit",
			PostID:       id,
			FormTitle:    form.Title,
			FormContent:  form.Content,
			ErrorMessage: formError(err, "게시글 수정에 실패했습니다."),
		})
	}
	return c.Redirect(http.StatusSeeOther, "/post/"+strconv.FormatInt(post.ID, 10))
}

// formError picks the inline message for a failed submit: the client-side
// validation message, the server's message, or the generic fallback.
func formError(err error, fallback string) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return domain.ServerMessage(err, fallback)
}

func writeFailStatus(err error) int {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity
	}
	var be *domain.BackendError
	if errors.As(err, &be) && be.StatusCode >= 400 && be.StatusCode <= 499 {
		return be.StatusCode
	}
	return http.StatusBadGateway
}
