package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/freeboard/board-client/internal/core/domain"
	"github.com/freeboard/board-client/internal/core/ports"
	"github.com/freeboard/board-client/internal/core/service"
	"github.com/freeboard/board-client/internal/web/handler"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type listOnlyAPI struct {
	page *domain.PostPage
}

func (a *listOnlyAPI) ListPosts(_ context.Context, token string, q ports.ListPostsQuery) (*domain.PostPage, error) {
	return a.page, nil
}
func (a *listOnlyAPI) GetPost(context.Context, string, int64) (*domain.Post, error) {
	return nil, domain.ErrNotFound
}
func (a *listOnlyAPI) GetPostForEdit(context.Context, string, int64) (*domain.Post, error) {
	return nil, domain.ErrNotFound
}
func (a *listOnlyAPI) CreatePost(context.Context, string, ports.PostInput) (*domain.Post, error) {
	return nil, domain.ErrNotFound
}
func (a *listOnlyAPI) UpdatePost(context.Context, string, int64, ports.PostInput) (*domain.Post, error) {
	return nil, domain.ErrNotFound
}
func (a *listOnlyAPI) DeletePost(context.Context, string, int64) error { return domain.ErrNotFound }
func (a *listOnlyAPI) TogglePostLike(context.Context, string, int64) (*domain.Post, error) {
	return nil, domain.ErrNotFound
}
func (a *listOnlyAPI) ListComments(context.Context, string, int64) ([]domain.Comment, error) {
	return nil, nil
}
func (a *listOnlyAPI) CreateComment(context.Context, string, int64, string) (*domain.Comment, error) {
	return nil, domain.ErrNotFound
}
func (a *listOnlyAPI) UpdateComment(context.Context, string, int64, int64, string) (*domain.Comment, error) {
	return nil, domain.ErrNotFound
}
func (a *listOnlyAPI) DeleteComment(context.Context, string, int64, int64) error {
	return domain.ErrNotFound
}
func (a *listOnlyAPI) ToggleCommentLike(context.Context, string, int64, int64) (*domain.CommentLike, error) {
	return nil, domain.ErrNotFound
}

type noopAuthAPI struct{}

func (noopAuthAPI) Login(context.Context, string, string) (*ports.LoginResult, error) {
	return nil, domain.ErrInvalidCredentials
}
func (noopAuthAPI) Register(context.Context, string, string) error { return nil }
func (noopAuthAPI) Me(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUnauthorized
}

type noopSessionStore struct{}

func (noopSessionStore) Save(context.Context, *domain.Session) error { return nil }
func (noopSessionStore) Get(context.Context, string) (*domain.Session, error) {
	return nil, domain.ErrSessionNotFound
}
func (noopSessionStore) Delete(context.Context, string) error { return nil }

func renderHome(t *testing.T, target string, page *domain.PostPage) string {
	t.Helper()

	e := echo.New()
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e.Renderer = renderer

	sessions := service.NewSessionService(noopAuthAPI{}, noopSessionStore{}, time.Minute, zerolog.Nop())
	posts := service.NewPostService(&listOnlyAPI{page: page})
	h := handler.NewHomeHandler(sessions, posts)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Home(c); err != nil {
		t.Fatalf("home: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	return rec.Body.String()
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestHomePage_EmptySearchResult(t *testing.T) {
	body := renderHome(t, "/?search=nothing", &domain.PostPage{Content: nil, TotalPages: 0})

	if !strings.Contains(body, "검색 결과가 없습니다.") {
		t.Fatalf("empty search state missing")
	}
	if strings.Contains(body, "pagination") {
		t.Fatalf("pagination rendered for empty result")
	}
}

func TestHomePage_EmptyBoard(t *testing.T) {
	body := renderHome(t, "/", &domain.PostPage{Content: nil, TotalPages: 0})

	if !strings.Contains(body, "아직 게시글이 없습니다.") {
		t.Fatalf("empty board state missing")
	}
	if strings.Contains(body, "검색 결과가 없습니다.") {
		t.Fatalf("search empty state shown without a search")
	}
}

func TestHomePage_ListAndPagination(t *testing.T) {
	created := domain.Time{Time: time.Now().Add(-2 * time.Hour)}
	page := &domain.PostPage{
		Content: []domain.Post{
			{ID: 1, Title: "첫 글", AuthorUsername: "alice", CreatedAt: created, ViewCount: 3, LikeCount: 1, CommentCount: 2},
		},
		TotalElements: 25,
		TotalPages:    3,
		Size:          10,
		Number:        1,
	}
	body := renderHome(t, "/?page=2", page)

	if !strings.Contains(body, "첫 글") {
		t.Fatalf("post title missing")
	}
	if !strings.Contains(body, "2시간 전") {
		t.Fatalf("relative timestamp missing")
	}
	if !strings.Contains(body, "총 25개의 게시글") {
		t.Fatalf("total count missing")
	}
	if !strings.Contains(body, "pagination") {
		t.Fatalf("pagination missing for multi-page result")
	}
	if !strings.Contains(body, `<span class="current">2</span>`) {
		t.Fatalf("current page marker missing")
	}
	if !strings.Contains(body, `/?page=3`) {
		t.Fatalf("link to page 3 missing")
	}
}

func TestHomePage_SinglePageHidesPagination(t *testing.T) {
	page := &domain.PostPage{
		Content:       []domain.Post{{ID: 1, Title: "only", CreatedAt: domain.Time{Time: time.Now()}}},
		TotalElements: 1,
		TotalPages:    1,
		Number:        0,
	}
	body := renderHome(t, "/", page)

	if strings.Contains(body, "pagination") {
		t.Fatalf("pagination rendered for a single page")
	}
}
