package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/freeboard/board-client/internal/core/domain"
	"github.com/freeboard/board-client/internal/core/ports"
	"github.com/freeboard/board-client/internal/metrics"
)

const defaultVerifyInterval = time.Minute

// SessionService owns the session lifecycle: credential exchange, identity
// resolution, teardown, and one-shot flash notices.
type SessionService struct {
	auth           ports.AuthAPI
	store          ports.SessionStore
	verifyInterval time.Duration
	log            zerolog.Logger
}

func NewSessionService(auth ports.AuthAPI, store ports.SessionStore, verifyInterval time.Duration, log zerolog.Logger) *SessionService {
	if verifyInterval <= 0 {
		verifyInterval = defaultVerifyInterval
	}
	return &SessionService{auth: auth, store: store, verifyInterval: verifyInterval, log: log}
}

// Login exchanges credentials for a token and establishes a session. The
// login response itself carries no user id, so the full identity is resolved
// through /auth/me before the session is stored; if that resolution fails the
// session falls back to the username/role the login response returned.
func (s *SessionService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, &domain.ValidationError{Field: "username", Message: "아이디와 비밀번호를 입력해주세요."}
	}

	res, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	sess := &domain.Session{
		ID:         uuid.NewString(),
		Token:      res.AccessToken,
		VerifiedAt: time.Now().UTC(),
	}

	if user, meErr := s.auth.Me(ctx, res.AccessToken); meErr == nil {
		sess.User = user
	} else {
		s.log.Warn().Err(meErr).Str("username", username).Msg("identity resolution after login failed")
		sess.User = &domain.User{Username: res.Username, Role: res.Role}
	}

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Register creates an account. It establishes no session; the caller sends
// the user to the login page.
func (s *SessionService) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return &domain.ValidationError{Field: "username", Message: "아이디와 비밀번호를 입력해주세요."}
	}
	return s.auth.Register(ctx, username, password)
}

// Logout discards the stored session. The cookie itself is cleared by the
// handler.
func (s *SessionService) Logout(ctx context.Context, sid string) {
	if sid == "" {
		return
	}
	if err := s.store.Delete(ctx, sid); err != nil {
		s.log.Warn().Err(err).Str("sid", sid).Msg("session delete failed")
	}
}

// Resolve loads the session behind sid and returns it with a verified
// identity, or nil for an anonymous request. An invalid or expired token is
// detected by a failed identity check, clears the stored session, and is
// never surfaced as an error: the request simply proceeds logged out.
func (s *SessionService) Resolve(ctx context.Context, sid string) *domain.Session {
	if sid == "" {
		return nil
	}

	sess, err := s.store.Get(ctx, sid)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			s.log.Warn().Err(err).Str("sid", sid).Msg("session load failed")
		}
		return nil
	}
	if sess.Token == "" {
		return nil
	}

	if sess.User != nil && time.Since(sess.VerifiedAt) < s.verifyInterval {
		return sess
	}

	user, err := s.auth.Me(ctx, sess.Token)
	switch {
	case err == nil:
		sess.User = user
		sess.VerifiedAt = time.Now().UTC()
		if saveErr := s.store.Save(ctx, sess); saveErr != nil {
			s.log.Warn().Err(saveErr).Str("sid", sid).Msg("session refresh save failed")
		}
		return sess
	case errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrForbidden):
		// Token rejected by the backend: the session is dead.
		s.Logout(ctx, sid)
		metrics.SessionsClearedTotal.Inc()
		return nil
	default:
		// Backend unreachable. Keep serving the cached identity rather than
		// logging the user out over a transient outage.
		if sess.User != nil {
			return sess
		}
		return nil
	}
}

// Flash stores a one-shot notice on the session for the next rendered page.
func (s *SessionService) Flash(ctx context.Context, sid, message string) {
	if sid == "" || message == "" {
		return
	}
	sess, err := s.store.Get(ctx, sid)
	if err != nil {
		return
	}
	sess.Flash = message
	if err := s.store.Save(ctx, sess); err != nil {
		s.log.Warn().Err(err).Str("sid", sid).Msg("flash save failed")
	}
}

// PopFlash returns the pending notice, if any, and clears it.
func (s *SessionService) PopFlash(ctx context.Context, sess *domain.Session) string {
	if sess == nil || sess.Flash == "" {
		return ""
	}
	msg := sess.Flash
	sess.Flash = ""
	if err := s.store.Save(ctx, sess); err != nil {
		s.log.Warn().Err(err).Str("sid", sess.ID).Msg("flash clear failed")
	}
	return msg
}
