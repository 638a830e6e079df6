package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo"

	"github.com/communitycal/events-api/internal/access"
	"github.com/communitycal/events-api/pkg/helper"
	"github.com/communitycal/events-api/pkg/wrapper"
)

// Middleware abstraction
type Middleware interface {
	Basic(ctx context.Context, authKey string) error
	Authenticate() echo.MiddlewareFunc
	WithIdentity() echo.MiddlewareFunc
}

// APIKeyValidator resolve a group api key to an editor identity
type APIKeyValidator interface {
	ValidateAPIKey(ctx context.Context, apiKey string) (*access.Identity, error)
}

type mw struct {
	username, password string
	apiKeyValidator    APIKeyValidator
}

// NewMiddleware create new middleware instance
func NewMiddleware(basicAuthUsername, basicAuthPassword string, apiKeyValidator APIKeyValidator) Middleware {
	return &mw{
		username:        basicAuthUsername,
		password:        basicAuthPassword,
		apiKeyValidator: apiKeyValidator,
	}
}

// Authenticate reject requests without a valid credential
func (m *mw) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := m.extractIdentity(c)
			if err != nil {
				return wrapper.NewHTTPResponse(http.StatusUnauthorized, err.Error()).JSON(c.Response())
			}
			if identity == nil {
				return wrapper.NewHTTPResponse(http.StatusUnauthorized, "Missing credentials").JSON(c.Response())
			}

			req := c.Request()
			c.SetRequest(req.WithContext(access.SetToContext(req.Context(), identity)))
			return next(c)
		}
	}
}

// WithIdentity attach identity when a credential is present, anonymous otherwise
func (m *mw) WithIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := m.extractIdentity(c)
			if err != nil {
				return wrapper.NewHTTPResponse(http.StatusUnauthorized, err.Error()).JSON(c.Response())
			}
			if identity != nil {
				req := c.Request()
				c.SetRequest(req.WithContext(access.SetToContext(req.Context(), identity)))
			}
			return next(c)
		}
	}
}

func (m *mw) extractIdentity(c echo.Context) (*access.Identity, error) {
	req := c.Request()

	if authorization := req.Header.Get(echo.HeaderAuthorization); authorization != "" {
		authKey, err := extractBasicAuth(authorization)
		if err != nil {
			return nil, err
		}
		if err := m.Basic(req.Context(), authKey); err != nil {
			return nil, err
		}
		return &access.Identity{ID: m.username, Roles: []string{helper.RoleAdmin}}, nil
	}

	if apiKey := req.Header.Get(helper.HeaderAPIKey); apiKey != "" {
		return m.apiKeyValidator.ValidateAPIKey(req.Context(), apiKey)
	}

	return nil, nil
}
