package service

import (
	"context"
	"strings"

	"github.com/freeboard/board-client/internal/core/domain"
	"github.com/freeboard/board-client/internal/core/ports"
)

// PageSize is the fixed post-list page size.
const PageSize = 10

// defaultSort keeps the list newest-first.
const defaultSort = "createdAt,desc"

// PostService wraps the post surface of the board API with the client-side
// rules: 1-based to 0-based page translation, fixed page size, and trim
// validation that blocks empty submissions before any request is issued.
type PostService struct {
	api ports.BoardAPI
}

func NewPostService(api ports.BoardAPI) *PostService {
	return &PostService{api: api}
}

// List fetches one page of posts. q.Page is the 1-based UI index; values
// below 1 clamp to the first page.
func (s *PostService) List(ctx context.Context, token string, q domain.PostQuery) (*domain.PostPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	searchType := q.SearchType
	if searchType == "" {
		searchType = domain.SearchAll
	}

	return s.api.ListPosts(ctx, token, ports.ListPostsQuery{
		Page:       page - 1,
		Size:       PageSize,
		Sort:       defaultSort,
		Search:     strings.TrimSpace(q.Search),
		SearchType: searchType,
	})
}

func (s *PostService) Get(ctx context.Context, token string, id int64) (*domain.Post, error) {
	return s.api.GetPost(ctx, token, id)
}

func (s *PostService) GetForEdit(ctx context.Context, token string, id int64) (*domain.Post, error) {
	return s.api.GetPostForEdit(ctx, token, id)
}

func (s *PostService) Create(ctx context.Context, token, title, content string) (*domain.Post, error) {
	in, err := postInput(title, content)
	if err != nil {
		return nil, err
	}
	return s.api.CreatePost(ctx, token, in)
}

func (s *PostService) Update(ctx context.Context, token string, id int64, title, content string) (*domain.Post, error) {
	in, err := postInput(title, content)
	if err != nil {
		return nil, err
	}
	return s.api.UpdatePost(ctx, token, id, in)
}

func (s *PostService) Delete(ctx context.Context, token string, id int64) error {
	return s.api.DeletePost(ctx, token, id)
}

// ToggleLike flips the like state and returns the full updated post, which
// replaces the caller's local copy.
func (s *PostService) ToggleLike(ctx context.Context, token string, id int64) (*domain.Post, error) {
	return s.api.TogglePostLike(ctx, token, id)
}

// postInput trims both fields and rejects empty ones. Whitespace-only input
// must never turn into a create or update request.
func postInput(title, content string) (ports.PostInput, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return ports.PostInput{}, &domain.ValidationError{Field: "title", Message: "제목을 입력해주세요."}
	}
	if content == "" {
		return ports.PostInput{}, &domain.ValidationError{Field: "content", Message: "내용을 입력해주세요."}
	}
	return ports.PostInput{Title: title, Content: content}, nil
}
