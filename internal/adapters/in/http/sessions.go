package http

import (
	"net/http"
	"strings"

	"parcelhub/internal/core/application/auth"
	"parcelhub/internal/core/domain/model/user"
	"parcelhub/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

const sessionContextKey = "parcelhub.session"

// Login handles POST /api/v1/sessions - exchanges credentials for a bearer token.
func (s *Server) Login(ctx echo.Context) error {
	var req servers.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return invalidBody(ctx)
	}

	session, err := s.sessions.Login(ctx.Request().Context(), req.Email, req.Password)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toSession(session))
}

// Logout handles DELETE /api/v1/sessions/current - ends the caller's session.
func (s *Server) Logout(ctx echo.Context) error {
	session, ok := ctx.Get(sessionContextKey).(auth.Session)
	if !ok {
		return s.fail(ctx, errUnauthenticated)
	}

	s.sessions.Logout(ctx.Request().Context(), session.Token)
	return ctx.NoContent(http.StatusNoContent)
}

// SessionMiddleware resolves a bearer token into the request's session. Requests
// without a usable token pass through unauthenticated; handlers that need a user
// reject them with 401.
func SessionMiddleware(sessions SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if ok {
				if session, err := sessions.Resolve(c.Request().Context(), token); err == nil {
					c.Set(sessionContextKey, session)
				}
			}
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// authorize returns the signed-in user if they act in one of roles. No roles means
// any signed-in user.
func authorize(ctx echo.Context, roles ...user.Role) (user.User, error) {
	session, ok := ctx.Get(sessionContextKey).(auth.Session)
	if !ok {
		return user.User{}, errUnauthenticated
	}
	if len(roles) > 0 && !session.User.HasRole(roles...) {
		return user.User{}, errForbidden
	}
	return session.User, nil
}
