package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Triva-Elevate/triva-datapublishagent/internal/adapter"
	"github.com/Triva-Elevate/triva-datapublishagent/internal/logger"
	"github.com/Triva-Elevate/triva-datapublishagent/internal/utils"
	"github.com/Triva-Elevate/triva-datapublishagent/models"
)

const (
	// sessionLifetime bounds a session even when the ID token claims longer.
	sessionLifetime = 30 * time.Minute

	refreshKey = "refresh"
)

// TokenManager is the [Authenticator] of one run. It keeps the session
// obtained from the login service and refreshes it on demand; concurrent
// callers share a single in-flight refresh.
type TokenManager struct {
	auth   adapter.AuthAdapter
	logger *logger.Logger
	now    func() time.Time

	flight singleflight.Group

	mu         sync.Mutex
	session    models.Session
	refreshing bool
	lastErr    error
}

// TokenManagerOption customises a TokenManager.
type TokenManagerOption func(*TokenManager)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) TokenManagerOption {
	return func(m *TokenManager) {
		m.now = now
	}
}

// NewTokenManager constructs a TokenManager without a session.
func NewTokenManager(auth adapter.AuthAdapter, log *logger.Logger, opts ...TokenManagerOption) *TokenManager {
	m := &TokenManager{
		auth:   auth,
		logger: log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Login implements [Authenticator]. The previous session is dropped before
// the request is sent, so no session remains when it fails.
func (m *TokenManager) Login(ctx context.Context, userID, password string) error {
	m.mu.Lock()
	m.session = models.Session{}
	m.lastErr = nil
	m.mu.Unlock()

	resp, err := m.auth.Login(ctx, models.LoginRequest{UserID: userID, Password: password})
	sess, err := m.newSession(userID, "", resp, err)

	m.mu.Lock()
	m.session = sess
	m.lastErr = err
	m.mu.Unlock()

	if err != nil {
		m.logger.Err(err).Str("user_id", userID).Msg("login failed")
		return err
	}
	m.logger.Info().Str("user_id", userID).Time("expiry", sess.Expiry).Msg("login complete")
	return nil
}

// Token implements [Authenticator].
//
// An unexpired session token is returned directly. An expired one is
// refreshed through a single flight shared by every concurrent caller; the
// refresh itself ignores the cancellation of ctx, while a caller whose ctx
// is cancelled stops waiting for it.
func (m *TokenManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	sess, refreshing, lastErr := m.session, m.refreshing, m.lastErr
	m.mu.Unlock()

	if !sess.IsZero() && m.now().Before(sess.Expiry) {
		return sess.IDToken, nil
	}
	if sess.IsZero() && !refreshing {
		if lastErr != nil {
			return "", lastErr
		}
		return "", ErrNoValidLogin
	}

	flightCtx := context.WithoutCancel(ctx)
	ch := m.flight.DoChan(refreshKey, func() (any, error) {
		return m.refresh(flightCtx)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

// Logout implements [Authenticator].
func (m *TokenManager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = models.Session{}
	m.lastErr = nil
}

// refresh runs inside the single flight. It re-reads the session first: a
// caller may join after another flight already renewed or lost it.
func (m *TokenManager) refresh(ctx context.Context) (string, error) {
	m.mu.Lock()
	prev := m.session
	if !prev.IsZero() && m.now().Before(prev.Expiry) {
		m.mu.Unlock()
		return prev.IDToken, nil
	}
	if prev.RefreshToken == "" {
		// expired without a refresh token: the session is lost for good
		if m.lastErr == nil {
			m.lastErr = fmt.Errorf("%w: %w", ErrAuthentication, ErrNoValidLogin)
		}
		m.session = models.Session{}
		err := m.lastErr
		m.mu.Unlock()
		return "", err
	}
	m.session = models.Session{}
	m.refreshing = true
	m.mu.Unlock()

	m.logger.Info().Str("user_id", prev.UserID).Msg("refreshing login token")

	resp, err := m.auth.RefreshLogin(ctx, models.RefreshLoginRequest{
		UserID:       prev.UserID,
		RefreshToken: prev.RefreshToken,
	})
	sess, err := m.newSession(prev.UserID, prev.RefreshToken, resp, err)

	m.mu.Lock()
	m.session = sess
	m.lastErr = err
	m.refreshing = false
	m.mu.Unlock()

	if err != nil {
		m.logger.Err(err).Str("user_id", prev.UserID).Msg("login refresh failed")
		return "", err
	}
	m.logger.Info().Str("user_id", prev.UserID).Time("expiry", sess.Expiry).Msg("login refresh complete")
	return sess.IDToken, nil
}

// newSession turns a login service answer into a session. The refresh
// endpoint may omit the refresh token, in which case prevRefresh is kept.
func (m *TokenManager) newSession(userID, prevRefresh string, resp models.LoginResponse, err error) (models.Session, error) {
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	if resp.ChallengeType != "" {
		return models.Session{}, fmt.Errorf("%w: Login failed: %w - %s", ErrAuthentication, ErrChallengeRequired, resp.ChallengeType)
	}
	if resp.IDToken == "" {
		return models.Session{}, fmt.Errorf("%w: %w", ErrAuthentication, ErrNoIDToken)
	}

	expiry := m.now().Add(sessionLifetime)
	if exp, err := utils.TokenExpiry(resp.IDToken); err == nil && exp.Before(expiry) {
		expiry = exp
	}

	refreshToken := resp.RefreshToken
	if refreshToken == "" {
		refreshToken = prevRefresh
	}

	return models.Session{
		UserID:       userID,
		IDToken:      resp.IDToken,
		RefreshToken: refreshToken,
		Expiry:       expiry,
	}, nil
}
