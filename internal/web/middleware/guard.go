package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAuth gates a route on an authenticated session. Anonymous requests
// are redirected to the login page.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !SessionFrom(c).Authenticated() {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			return next(c)
		}
	}
}

// RequireAdmin gates a route on an administrator session. Anonymous requests
// redirect to login; an authenticated non-admin gets the forbidden page in
// place, deliberately not a redirect.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := SessionFrom(c)
			if !sess.Authenticated() {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			if !sess.IsAdmin() {
				return c.Render(http.StatusForbidden, "forbidden", map[string]any{
					"Title":   "접근 권한이 없습니다",
					"Session": sess,
					"Flash":   "",
					"Search":  "",
				})
			}
			return next(c)
		}
	}
}
