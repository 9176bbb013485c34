package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/freeboard/board-client/internal/core/domain"
	"github.com/freeboard/board-client/internal/core/ports"
)

func postPath(id int64) string {
	return "/posts/" + strconv.FormatInt(id, 10)
}

// ListPosts implements ports.BoardAPI. Search parameters are only sent when
// search text is present, matching what the backend expects.
func (c *Client) ListPosts(ctx context.Context, token string, q ports.ListPostsQuery) (*domain.PostPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(q.Page))
	query.Set("size", strconv.Itoa(q.Size))
	query.Set("sort", q.Sort)
	if q.Search != "" {
		query.Set("search", q.Search)
		query.Set("searchType", q.SearchType)
	}

	var page domain.PostPage
	if err := c.do(ctx, "list_posts", http.MethodGet, "/posts", token, query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetPost implements ports.BoardAPI.
func (c *Client) GetPost(ctx context.Context, token string, id int64) (*domain.Post, error) {
	var post domain.Post
	if err := c.do(ctx, "get_post", http.MethodGet, postPath(id), token, nil, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPostForEdit implements ports.BoardAPI.
func (c *Client) GetPostForEdit(ctx context.Context, token string, id int64) (*domain.Post, error) {
	var post domain.Post
	if err := c.do(ctx, "get_post_edit", http.MethodGet, postPath(id)+"/edit", token, nil, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost implements ports.BoardAPI.
func (c *Client) CreatePost(ctx context.Context, token string, in ports.PostInput) (*domain.Post, error) {
	var post domain.Post
	if err := c.do(ctx, "create_post", http.MethodPost, "/posts", token, nil, in, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost implements ports.BoardAPI.
func (c *Client) UpdatePost(ctx context.Context, token string, id int64, in ports.PostInput) (*domain.Post, error) {
	var post domain.Post
	if err := c.do(ctx, "update_post", http.MethodPut, postPath(id), token, nil, in, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost implements ports.BoardAPI.
func (c *Client) DeletePost(ctx context.Context, token string, id int64) error {
	return c.do(ctx, "delete_post", http.MethodDelete, postPath(id), token, nil, nil, nil)
}

// TogglePostLike implements ports.BoardAPI. The backend answers with the
// full updated post projection for the current viewer.
func (c *Client) TogglePostLike(ctx context.Context, token string, id int64) (*domain.Post, error) {
	var post domain.Post
	if err := c.do(ctx, "toggle_post_like", http.MethodPost, postPath(id)+"/like", token, nil, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}
