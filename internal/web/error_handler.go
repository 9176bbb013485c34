package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/freeboard/board-client/internal/core/domain"
	"github.com/freeboard/board-client/internal/web/middleware"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the domain error taxonomy to HTTP status codes and user-facing
//     Korean messages, keeping server-reported messages when present.
//   - Logs unexpected errors internally without leaking details to the page.
//   - Renders the error page, with a retry link on read (GET) paths.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)

		retryURL := ""
		if c.Request().Method == http.MethodGet {
			retryURL = c.Request().RequestURI
		}

		renderErr := c.Render(code, "error", map[string]any{
			"Title":    "오류",
			"Session":  middleware.SessionFrom(c),
			"Flash":    "",
			"Search":   "",
			"Status":   code,
			"Message":  msg,
			"RetryURL": retryURL,
		})
		if renderErr != nil {
			_ = c.String(code, msg)
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Client-side validation caught after the handler gave up on inline
	// rendering.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Message
	}

	// Known failure classes → deterministic codes and messages.
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "요청한 내용을 찾을 수 없습니다."
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "로그인이 필요합니다."
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "접근 권한이 없습니다."
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "아이디 또는 비밀번호가 올바르지 않습니다."
	}

	// Remaining backend business errors keep the server's message.
	var be *domain.BackendError
	if errors.As(err, &be) {
		code := be.StatusCode
		if code < 400 || code > 599 {
			code = http.StatusBadGateway
		}
		return code, domain.ServerMessage(err, "요청 처리에 실패했습니다.")
	}

	// Transport failure: the backend never answered usefully.
	var te *domain.TransportError
	if errors.As(err, &te) {
		log.Warn().Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("backend unreachable")
		return http.StatusBadGateway, "서버와 통신하지 못했습니다. 잠시 후 다시 시도해주세요."
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "일시적인 오류가 발생했습니다."
}
