package backend

import (
	"context"
	"net/http"
	"strconv"

	"github.com/freeboard/board-client/internal/core/domain"
)

func commentsPath(postID int64) string {
	return postPath(postID) + "/comments"
}

func commentPath(postID, commentID int64) string {
	return commentsPath(postID) + "/" + strconv.FormatInt(commentID, 10)
}

type commentInput struct {
	Content string `json:"content"`
}

// ListComments implements ports.BoardAPI. The endpoint returns a bare array,
// not a page envelope.
func (c *Client) ListComments(ctx context.Context, token string, postID int64) ([]domain.Comment, error) {
	var comments []domain.Comment
	if err := c.do(ctx, "list_comments", http.MethodGet, commentsPath(postID), token, nil, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment implements ports.BoardAPI.
func (c *Client) CreateComment(ctx context.Context, token string, postID int64, content string) (*domain.Comment, error) {
	var comment domain.Comment
	err := c.do(ctx, "create_comment", http.MethodPost, commentsPath(postID), token, nil,
		commentInput{Content: content}, &comment)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateComment implements ports.BoardAPI.
func (c *Client) UpdateComment(ctx context.Context, token string, postID, commentID int64, content string) (*domain.Comment, error) {
	var comment domain.Comment
	err := c.do(ctx, "update_comment", http.MethodPut, commentPath(postID, commentID), token, nil,
		commentInput{Content: content}, &comment)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment implements ports.BoardAPI.
func (c *Client) DeleteComment(ctx context.Context, token string, postID, commentID int64) error {
	return c.do(ctx, "delete_comment", http.MethodDelete, commentPath(postID, commentID), token, nil, nil, nil)
}

// ToggleCommentLike implements ports.BoardAPI. Only the affected row's
// count and flag come back.
func (c *Client) ToggleCommentLike(ctx context.Context, token string, postID, commentID int64) (*domain.CommentLike, error) {
	var like domain.CommentLike
	err := c.do(ctx, "toggle_comment_like", http.MethodPost, commentPath(postID, commentID)+"/like", token, nil, nil, &like)
	if err != nil {
		return nil, err
	}
	return &like, nil
}
