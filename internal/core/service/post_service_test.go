package service

import (
	"context"
	"errors"
	"testing"

	"github.com/freeboard/board-client/internal/core/domain"
	"github.com/freeboard/board-client/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub board API
// ---------------------------------------------------------------------------

type stubBoardAPI struct {
	lastListQuery ports.ListPostsQuery
	lastToken     string
	listResult    *domain.PostPage
	listErr       error

	createCalls int
	updateCalls int
	lastInput   ports.PostInput

	liked bool // toggled state for TogglePostLike

	comments      []domain.Comment
	createdBodies []string
	deleteCalls   []int64
}

func (s *stubBoardAPI) ListPosts(_ context.Context, token string, q ports.ListPostsQuery) (*domain.PostPage, error) {
	s.lastToken = token
	s.lastListQuery = q
	if s.listErr != nil {
		return nil, s.listErr
	}
	if s.listResult != nil {
		return s.listResult, nil
	}
	return &domain.PostPage{Content: []domain.Post{}, Size: q.Size, Number: q.Page}, nil
}

func (s *stubBoardAPI) GetPost(_ context.Context, token string, id int64) (*domain.Post, error) {
	return &domain.Post{ID: id, Title: "t", Content: "c"}, nil
}

func (s *stubBoardAPI) GetPostForEdit(_ context.Context, token string, id int64) (*domain.Post, error) {
	return &domain.Post{ID: id, Title: "t", Content: "c"}, nil
}

func (s *stubBoardAPI) CreatePost(_ context.Context, token string, in ports.PostInput) (*domain.Post, error) {
	s.createCalls++
	s.lastInput = in
	return &domain.Post{ID: 1, Title: in.Title, Content: in.Content}, nil
}

func (s *stubBoardAPI) UpdatePost(_ context.Context, token string, id int64, in ports.PostInput) (*domain.Post, error) {
	s.updateCalls++
	s.lastInput = in
	return &domain.Post{ID: id, Title: in.Title, Content: in.Content}, nil
}

func (s *stubBoardAPI) DeletePost(_ context.Context, token string, id int64) error {
	s.deleteCalls = append(s.deleteCalls, id)
	return nil
}

func (s *stubBoardAPI) TogglePostLike(_ context.Context, token string, id int64) (*domain.Post, error) {
	s.liked = !s.liked
	count := 0
	if s.liked {
		count = 1
	}
	return &domain.Post{ID: id, LikeCount: count, LikedByCurrentUser: s.liked}, nil
}

func (s *stubBoardAPI) ListComments(_ context.Context, token string, postID int64) ([]domain.Comment, error) {
	return s.comments, nil
}

func (s *stubBoardAPI) CreateComment(_ context.Context, token string, postID int64, content string) (*domain.Comment, error) {
	s.createdBodies = append(s.createdBodies, content)
	return &domain.Comment{ID: int64(len(s.createdBodies)), Content: content}, nil
}

func (s *stubBoardAPI) UpdateComment(_ context.Context, token string, postID, commentID int64, content string) (*domain.Comment, error) {
	s.createdBodies = append(s.createdBodies, content)
	return &domain.Comment{ID: commentID, Content: content}, nil
}

func (s *stubBoardAPI) DeleteComment(_ context.Context, token string, postID, commentID int64) error {
	s.deleteCalls = append(s.deleteCalls, commentID)
	return nil
}

func (s *stubBoardAPI) ToggleCommentLike(_ context.Context, token string, postID, commentID int64) (*domain.CommentLike, error) {
	s.liked = !s.liked
	count := 0
	if s.liked {
		count = 1
	}
	return &domain.CommentLike{LikeCount: count, LikedByCurrentUser: s.liked}, nil
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestPostServiceList_TranslatesPageIndex(t *testing.T) {
	api := &stubBoardAPI{}
	svc := NewPostService(api)

	_, err := svc.List(context.Background(), "tok", domain.PostQuery{Page: 3})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if api.lastListQuery.Page != 2 {
		t.Fatalf("expected backend page 2, got %d", api.lastListQuery.Page)
	}
	if api.lastListQuery.Size != PageSize {
		t.Fatalf("expected size %d, got %d", PageSize, api.lastListQuery.Size)
	}
	if api.lastListQuery.Sort != "createdAt,desc" {
		t.Fatalf("unexpected sort %q", api.lastListQuery.Sort)
	}
	if api.lastToken != "tok" {
		t.Fatalf("token not forwarded, got %q", api.lastToken)
	}
}

func TestPostServiceList_ClampsPageBelowOne(t *testing.T) {
	api := &stubBoardAPI{}
	svc := NewPostService(api)

	for _, page := range []int{0, -5} {
		if _, err := svc.List(context.Background(), "", domain.PostQuery{Page: page}); err != nil {
			t.Fatalf("list page=%d: %v", page, err)
		}
		if api.lastListQuery.Page != 0 {
			t.Fatalf("page=%d: expected backend page 0, got %d", page, api.lastListQuery.Page)
		}
	}
}

func TestPostServiceList_TrimsSearchAndDefaultsType(t *testing.T) {
	api := &stubBoardAPI{}
	svc := NewPostService(api)

	_, err := svc.List(context.Background(), "", domain.PostQuery{Page: 1, Search: "  golang  "})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if api.lastListQuery.Search != "golang" {
		t.Fatalf("expected trimmed search, got %q", api.lastListQuery.Search)
	}
	if api.lastListQuery.SearchType != domain.SearchAll {
		t.Fatalf("expected default search type %q, got %q", domain.SearchAll, api.lastListQuery.SearchType)
	}
}

// ---------------------------------------------------------------------------
// Create / Update validation
// ---------------------------------------------------------------------------

func TestPostServiceCreate_RejectsWhitespaceOnlyInput(t *testing.T) {
	api := &stubBoardAPI{}
	svc := NewPostService(api)

	cases := []struct {
		name           string
		title, content string
	}{
		{"empty title", "   ", "body"},
		{"empty content", "title", "\n\t "},
		{"both empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "tok", tc.title, tc.content)

			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if api.createCalls != 0 {
				t.Fatalf("create request issued for invalid input")
			}
		})
	}
}

func TestPostServiceUpdate_TrimsBeforeSending(t *testing.T) {
	api := &stubBoardAPI{}
	svc := NewPostService(api)

	_, err := svc.Update(context.Background(), "tok", 7, "  title  ", "  body  ")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if api.updateCalls != 1 {
		t.Fatalf("expected exactly one update call, got %d", api.updateCalls)
	}
	if api.lastInput.Title != "title" || api.lastInput.Content != "body" {
		t.Fatalf("input not trimmed: %+v", api.lastInput)
	}
}

// ---------------------------------------------------------------------------
// Like toggle
// ---------------------------------------------------------------------------

func TestPostServiceToggleLike_RoundTripRestoresState(t *testing.T) {
	api := &stubBoardAPI{}
	svc := NewPostService(api)

	first, err := svc.ToggleLike(context.Background(), "tok", 1)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !first.LikedByCurrentUser || first.LikeCount != 1 {
		t.Fatalf("expected liked after first toggle, got %+v", first)
	}

	second, err := svc.ToggleLike(context.Background(), "tok", 1)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if second.LikedByCurrentUser || second.LikeCount != 0 {
		t.Fatalf("expected unliked after second toggle, got %+v", second)
	}
}
