package predictorapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/Winmix713/hekoprot2/internal/domain"
	"github.com/Winmix713/hekoprot2/internal/domain/auth"
)

// Login exchanges credentials for an access token and stores it in the session.
func (c *Client) Login(ctx context.Context, email, password string) (auth.Token, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var token auth.Token
	err := c.call(ctx, "predictorapi.Client.Login", Request{
		Method: http.MethodPost,
		Path:   "/auth/token",
		Form:   form,
	}, &token)
	if err != nil {
		return auth.Token{}, err
	}

	if strings.TrimSpace(token.AccessToken) == "" {
		return auth.Token{}, &Error{Message: "login response has no access token", Status: http.StatusOK}
	}
	if err := c.session.SetToken(ctx, token.AccessToken); err != nil {
		return token, crerr.Wrap(err, "store access token")
	}

	c.logger.InfoContext(ctx, "logged in", "token_type", token.TokenType, "expires_in", token.ExpiresIn)
	return token, nil
}

// Logout only forgets the local token.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.session.Clear(ctx); err != nil {
		return crerr.Wrap(err, "clear session")
	}
	return nil
}

func (c *Client) HealthCheck(ctx context.Context) (domain.Document, error) {
	var out domain.Document
	if err := c.call(ctx, "predictorapi.Client.HealthCheck", Request{Path: "/health"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
