package backend

import (
	"context"
	"net/http"

	"github.com/freeboard/board-client/internal/core/domain"
	"github.com/freeboard/board-client/internal/core/ports"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login implements ports.AuthAPI.
func (c *Client) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	var res ports.LoginResult
	err := c.do(ctx, "login", http.MethodPost, "/auth/login", "", nil,
		credentials{Username: username, Password: password}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Register implements ports.AuthAPI.
func (c *Client) Register(ctx context.Context, username, password string) error {
	return c.do(ctx, "register", http.MethodPost, "/auth/register", "", nil,
		credentials{Username: username, Password: password}, nil)
}

// Me implements ports.AuthAPI. It resolves the identity behind token.
func (c *Client) Me(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, "me", http.MethodGet, "/auth/me", token, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
