package service

import (
	"context"
	"strings"

	"github.com/freeboard/board-client/internal/core/domain"
	"github.com/freeboard/board-client/internal/core/ports"
)

// CommentService wraps the comment surface of the board API, scoped to a
// parent post per call.
type CommentService struct {
	api ports.BoardAPI
}

func NewCommentService(api ports.BoardAPI) *CommentService {
	return &CommentService{api: api}
}

func (s *CommentService) List(ctx context.Context, token string, postID int64) ([]domain.Comment, error) {
	return s.api.ListComments(ctx, token, postID)
}

func (s *CommentService) Create(ctx context.Context, token string, postID int64, content string) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, &domain.ValidationError{Field: "content", Message: "댓글 내용을 입력해주세요."}
	}
	return s.api.CreateComment(ctx, token, postID, content)
}

func (s *CommentService) Update(ctx context.Context, token string, postID, commentID int64, content string) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, &domain.ValidationError{Field: "content", Message: "댓글 내용을 입력해주세요."}
	}
	return s.api.UpdateComment(ctx, token, postID, commentID, content)
}

func (s *CommentService) Delete(ctx context.Context, token string, postID, commentID int64) error {
	return s.api.DeleteComment(ctx, token, postID, commentID)
}

// ToggleLike flips the like state of one comment and returns the patch for
// that row only; the rest of the list is left untouched.
func (s *CommentService) ToggleLike(ctx context.Context, token string, postID, commentID int64) (*domain.CommentLike, error) {
	return s.api.ToggleCommentLike(ctx, token, postID, commentID)
}
