package backend

import (
	"context"
	"net/http"
	"strconv"

	"github.com/freeboard/board-client/internal/core/domain"
)

// Admin list endpoints answer with a page envelope; only the content slice
// is consumed here.

type adminUserList struct {
	Content []domain.AdminUser `json:"content"`
}

type adminPostList struct {
	Content []domain.AdminPost `json:"content"`
}

type adminCommentList struct {
	Content []domain.AdminComment `json:"content"`
}

// ListUsers implements ports.AdminAPI.
func (c *Client) ListUsers(ctx context.Context, token string) ([]domain.AdminUser, error) {
	var list adminUserList
	if err := c.do(ctx, "admin_list_users", http.MethodGet, "/admin/users", token, nil, nil, &list); err != nil {
		return nil, err
	}
	return list.Content, nil
}

// DeleteUser implements ports.AdminAPI.
func (c *Client) DeleteUser(ctx context.Context, token string, id int64) error {
	return c.do(ctx, "admin_delete_user", http.MethodDelete, "/admin/users/"+strconv.FormatInt(id, 10), token, nil, nil, nil)
}

// ListAllPosts implements ports.AdminAPI.
func (c *Client) ListAllPosts(ctx context.Context, token string) ([]domain.AdminPost, error) {
	var list adminPostList
	if err := c.do(ctx, "admin_list_posts", http.MethodGet, "/admin/posts", token, nil, nil, &list); err != nil {
		return nil, err
	}
	return list.Content, nil
}

// HardDeletePost implements ports.AdminAPI. Unlike the author-facing delete,
// this removes the record outright.
func (c *Client) HardDeletePost(ctx context.Context, token string, id int64) error {
	return c.do(ctx, "admin_delete_post", http.MethodDelete, "/admin/posts/"+strconv.FormatInt(id, 10)+"/hard-delete", token, nil, nil, nil)
}

// ListAllComments implements ports.AdminAPI.
func (c *Client) ListAllComments(ctx context.Context, token string) ([]domain.AdminComment, error) {
	var list adminCommentList
	if err := c.do(ctx, "admin_list_comments", http.MethodGet, "/admin/comments", token, nil, nil, &list); err != nil {
		return nil, err
	}
	return list.Content, nil
}

// DeleteAnyComment implements ports.AdminAPI.
func (c *Client) DeleteAnyComment(ctx context.Context, token string, id int64) error {
	return c.do(ctx, "admin_delete_comment", http.MethodDelete, "/admin/comments/"+strconv.FormatInt(id, 10), token, nil, nil, nil)
}
