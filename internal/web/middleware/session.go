package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/freeboard/board-client/internal/core/domain"
	"github.com/freeboard/board-client/internal/core/service"
)

// Echo context keys set by the session middleware.
const (
	ctxSession = "session"
	ctxSID     = "session_id"
)

// Session resolves the session cookie on every request and stashes the
// resolved session, if any, in the Echo context. Resolution completes before
// any handler runs, so guards and pages never see a half-resolved identity.
// A cookie that fails verification is cleared and the request proceeds
// anonymously.
func Session(sessions *service.SessionService, codec *CookieCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			sid, err := codec.Decode(cookie.Value)
			if err != nil {
				c.SetCookie(codec.ClearCookie())
				return next(c)
			}

			c.Set(ctxSID, sid)
			if sess := sessions.Resolve(c.Request().Context(), sid); sess != nil {
				c.Set(ctxSession, sess)
			}
			return next(c)
		}
	}
}

// SessionFrom returns the resolved session for this request, or nil for an
// anonymous request.
func SessionFrom(c echo.Context) *domain.Session {
	sess, _ := c.Get(ctxSession).(*domain.Session)
	return sess
}

// SIDFrom returns the verified session id carried by the request cookie,
// even when the session behind it no longer resolves.
func SIDFrom(c echo.Context) string {
	sid, _ := c.Get(ctxSID).(string)
	return sid
}
