package nanocreatures

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SignUp registers a new user. The configured API key, if any, is sent as
// the credential; there is no per-call token yet.
func (c *Client) SignUp(ctx context.Context, params SignUpParams) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", c.apiKey, params, &out, "Failed to sign up"); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignIn authenticates a user. The server-issued token is returned as-is;
// only when the response omits it and a token signer was configured does
// the client mint one locally.
func (c *Client) SignIn(ctx context.Context, params SignInParams) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/signin", c.apiKey, params, &out, "Failed to sign in"); err != nil {
		return nil, err
	}
	if out.Token == "" && c.signingSecret != "" {
		token, err := mintToken(c.signingSecret, out.User)
		if err != nil {
			return nil, fmt.Errorf("mint session token: %w", err)
		}
		out.Token = token
	}
	return &out, nil
}

func mintToken(secret string, user User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
