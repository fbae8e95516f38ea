package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-user-api/internal/application"
	"github.com/oksasatya/go-user-api/internal/domain/entity"
	"github.com/oksasatya/go-user-api/pkg/response"
)

const authContextKey = "auth"

// AuthContext is the caller identity resolved from the request's token.
type AuthContext struct {
	User     *entity.User
	TokenKey string
}

// Authenticator resolves a token key to its owner.
type Authenticator interface {
	Authenticate(ctx context.Context, key string) (*entity.User, error)
}

// TokenAuth requires "Authorization: Token <key>" (or "Bearer <key>") and
// stores an *AuthContext for the handlers behind it.
func TokenAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, err := tokenFromHeader(c.GetHeader("Authorization"))
		if err != nil {
			unauthorized(c, err.Error())
			return
		}
		u, err := auth.Authenticate(c.Request.Context(), key)
		if err != nil {
			msg := "authentication failed"
			switch {
			case errors.Is(err, application.ErrInvalidToken):
				msg = "invalid token"
			case errors.Is(err, application.ErrUserInactive):
				msg = "user inactive or deleted"
			}
			unauthorized(c, msg)
			return
		}
		c.Set(authContextKey, &AuthContext{User: u, TokenKey: key})
		c.Next()
	}
}

// Auth returns the caller identity stored by TokenAuth.
func Auth(c *gin.Context) (*AuthContext, bool) {
	v, ok := c.Get(authContextKey)
	if !ok {
		return nil, false
	}
	a, ok := v.(*AuthContext)
	return a, ok && a != nil && a.User != nil
}

// CurrentUser is shorthand for Auth(c).User.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	a, ok := Auth(c)
	if !ok {
		return nil, false
	}
	return a.User, true
}

var (
	errNoCredentials = errors.New("authentication credentials were not provided")
	errBadHeader     = errors.New("invalid token header")
)

func tokenFromHeader(h string) (string, error) {
	h = strings.TrimSpace(h)
	if h == "" {
		return "", errNoCredentials
	}
	parts := strings.Fields(h)
	if len(parts) != 2 {
		return "", errBadHeader
	}
	switch strings.ToLower(parts[0]) {
	case "token", "bearer":
		return parts[1], nil
	}
	return "", errNoCredentials
}

func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Token")
	response.Abort(c, http.StatusUnauthorized, msg, nil)
}
