package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freeboard/board-client/internal/core/domain"
	"github.com/freeboard/board-client/internal/core/service"
	"github.com/freeboard/board-client/internal/metrics"
	"github.com/freeboard/board-client/internal/web/middleware"
)

// AuthHandler serves the login and register pages and the session endpoints.
type AuthHandler struct {
	sessions *service.SessionService
	codec    *middleware.CookieCodec
}

func NewAuthHandler(sessions *service.SessionService, codec *middleware.CookieCodec) *AuthHandler {
	return &AuthHandler{sessions: sessions, codec: codec}
}

type loginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type registerForm struct {
	Username string `form:"username" validate:"required,min=3,max=20"`
	Password string `form:"password" validate:"required,min=4"`
}

type authPageData struct {
	baseData
	Username     string
	ErrorMessage string
	Notice       string
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	data := authPageData{baseData: newBaseData(c, h.sessions, "로그인")}
	if c.QueryParam("registered") == "1" {
		data.Notice = "회원가입이 완료되었습니다. 로그인해주세요."
	}
	return c.Render(http.StatusOK, "login", data)
}

// Login handles POST /login. Failures re-render the form with the server's
// message when present, otherwise the generic one.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "잘못된 요청입니다.")
	}

	data := authPageData{
		baseData: newBaseData(c, h.sessions, "로그인"),
		Username: form.Username,
	}
	if err := c.Validate(form); err != nil {
		data.ErrorMessage = err.Error()
		return c.Render(http.StatusUnprocessableEntity, "login", data)
	}

	sess, err := h.sessions.Login(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		data.ErrorMessage = domain.ServerMessage(err, "로그인에 실패했습니다.")
		return c.Render(http.StatusUnauthorized, "login", data)
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	value, err := h.codec.Encode(sess.ID)
	if err != nil {
		return err
	}
	c.SetCookie(h.codec.NewCookie(value))
	return c.Redirect(http.StatusSeeOther, "/")
}

// RegisterPage handles GET /register.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register", authPageData{
		baseData: newBaseData(c, h.sessions, "회원가입"),
	})
}

// Register handles POST /register. Success creates the account without a
// session and sends the user to the login page.
func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "잘못된 요청입니다.")
	}

	data := authPageData{
		baseData: newBaseData(c, h.sessions, "회원가입"),
		Username: form.Username,
	}
	if err := c.Validate(form); err != nil {
		data.ErrorMessage = err.Error()
		return c.Render(http.StatusUnprocessableEntity, "register", data)
	}

	if err := h.sessions.Register(c.Request().Context(), form.Username, form.Password); err != nil {
		data.ErrorMessage = domain.ServerMessage(err, "회원가입에 실패했습니다.")
		return c.Render(http.StatusUnprocessableEntity, "register", data)
	}
	return c.Redirect(http.StatusSeeOther, "/login?registered=1")
}

// Logout handles POST /logout: discard the stored session, clear the cookie,
// go home.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c.Request().Context(), middleware.SIDFrom(c))
	c.SetCookie(h.codec.ClearCookie())
	return c.Redirect(http.StatusSeeOther, "/")
}
