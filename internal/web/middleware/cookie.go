package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the fixed key the session cookie lives under. Its absence
// means logged out.
const CookieName = "board_session"

var errBadCookie = errors.New("invalid session cookie")

// CookieCodec signs and verifies the session cookie. The cookie value is an
// HS256 JWT carrying only the session id and an expiry; the bearer token
// itself never leaves the server side.
type CookieCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewCookieCodec(secret string, ttl time.Duration) *CookieCodec {
	return &CookieCodec{secret: []byte(secret), ttl: ttl}
}

// Encode produces the signed cookie value for a session id.
func (cc *CookieCodec) Encode(sid string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(cc.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cc.secret)
}

// Decode verifies a cookie value and returns the session id inside it.
func (cc *CookieCodec) Decode(value string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return cc.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", errBadCookie
	}

	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", errBadCookie
	}
	return sid, nil
}

// NewCookie builds the Set-Cookie carrier for a signed value.
func (cc *CookieCodec) NewCookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(cc.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearCookie builds the expired cookie that removes the session client-side.
func (cc *CookieCodec) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
