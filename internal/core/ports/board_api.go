package ports

import (
	"context"

	"github.com/freeboard/board-client/internal/core/domain"
)

// LoginResult is the payload of POST /auth/login.
type LoginResult struct {
	AccessToken string `json:"accessToken"`
	Username    string `json:"username"`
	Role        string `json:"role"`
}

// AuthAPI is the authentication surface of the board backend.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Register(ctx context.Context, username, password string) error
	// Me resolves the identity behind a bearer token.
	Me(ctx context.Context, token string) (*domain.User, error)
}

// ListPostsQuery carries the backend's list parameters. Page is 0-based here;
// the 1-based UI index is translated before this point.
type ListPostsQuery struct {
	Page       int
	Size       int
	Sort       string
	Search     string
	SearchType string
}

// PostInput is the create/update payload for a post.
type PostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// BoardAPI is the post and comment surface of the board backend. Every call
// takes the session's bearer token; an empty token issues the request
// unauthenticated.
type BoardAPI interface {
	ListPosts(ctx context.Context, token string, q ListPostsQuery) (*domain.PostPage, error)
	GetPost(ctx context.Context, token string, id int64) (*domain.Post, error)
	// GetPostForEdit fetches the raw record for the edit form without
	// counting a view.
	GetPostForEdit(ctx context.Context, token string, id int64) (*domain.Post, error)
	CreatePost(ctx context.Context, token string, in PostInput) (*domain.Post, error)
	UpdatePost(ctx context.Context, token string, id int64, in PostInput) (*domain.Post, error)
	DeletePost(ctx context.Context, token string, id int64) error
	// TogglePostLike flips the like state and returns the full updated post.
	TogglePostLike(ctx context.Context, token string, id int64) (*domain.Post, error)

	ListComments(ctx context.Context, token string, postID int64) ([]domain.Comment, error)
	CreateComment(ctx context.Context, token string, postID int64, content string) (*domain.Comment, error)
	UpdateComment(ctx context.Context, token string, postID, commentID int64, content string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, token string, postID, commentID int64) error
	// ToggleCommentLike returns only the patch for the affected row.
	ToggleCommentLike(ctx context.Context, token string, postID, commentID int64) (*domain.CommentLike, error)
}

// AdminAPI is the administrator surface of the board backend.
type AdminAPI interface {
	ListUsers(ctx context.Context, token string) ([]domain.AdminUser, error)
	DeleteUser(ctx context.Context, token string, id int64) error
	ListAllPosts(ctx context.Context, token string) ([]domain.AdminPost, error)
	HardDeletePost(ctx context.Context, token string, id int64) error
	ListAllComments(ctx context.Context, token string) ([]domain.AdminComment, error)
	DeleteAnyComment(ctx context.Context, token string, id int64) error
}
