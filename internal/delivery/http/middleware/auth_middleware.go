package middleware

import (
	"errors"

	"job-portal/internal/access"
	"job-portal/internal/pkg/token"

	"github.com/gofiber/fiber/v3"
)

const (
	// SessionCookieName is the cookie carrying the session token.
	SessionCookieName = "token"

	ctxSessionKey = "session"
)

type AuthMiddleware struct {
	tokens token.Service
}

func NewAuthMiddleware(tokens token.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Middleware requires a valid session cookie and attaches the session to the
// request. Role checks stay in the access gate, not here.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		sess, err := m.sessionFromCookie(c)
		if err != nil {
			return err
		}
		c.Locals(ctxSessionKey, sess)
		return c.Next()
	}
}

// Optional attaches the session when a valid cookie is present but lets
// anonymous requests through; used on public reads that still personalize.
func (m *AuthMiddleware) Optional() fiber.Handler {
	return func(c fiber.Ctx) error {
		if sess, err := m.sessionFromCookie(c); err == nil {
			c.Locals(ctxSessionKey, sess)
		}
		return c.Next()
	}
}

func (m *AuthMiddleware) sessionFromCookie(c fiber.Ctx) (*access.Session, error) {
	raw := c.Cookies(SessionCookieName)
	if raw == "" {
		return nil, NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	claims, err := m.tokens.Validate(raw)
	if err != nil {
		if errors.Is(err, token.ErrTokenExpired) {
			return nil, NewAppError(fiber.StatusUnauthorized, "Session expired", err)
		}
		return nil, NewAppError(fiber.StatusUnauthorized, "Invalid session", err)
	}

	return &access.Session{UserID: claims.UserID, Role: claims.Role}, nil
}

// SessionFromCtx returns the request's session or nil when anonymous.
func SessionFromCtx(c fiber.Ctx) *access.Session {
	sess, _ := c.Locals(ctxSessionKey).(*access.Session)
	return sess
}
