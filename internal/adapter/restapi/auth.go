package restapi

import (
	"context"
	"net/http"

	"github.com/ombank/teller/internal/domain"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates with the given credentials.
func (c *Client) Login(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	var result domain.AuthResult
	err := c.do(ctx, http.MethodPost, "/auth/login", credentialsRequest{
		Username: username,
		Password: password,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates a new user. A successful registration authenticates
// immediately, same contract as Login.
func (c *Client) Register(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	var result domain.AuthResult
	err := c.do(ctx, http.MethodPost, "/auth/register", credentialsRequest{
		Username: username,
		Password: password,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
