package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"lightningcath-stock-api/internal/cache"

	"go.uber.org/zap"
)

const (
	// tokenPrefix marks admin session tokens.
	tokenPrefix = "lcp_"

	// tokenKeyPrefix namespaces session entries in the cache.
	tokenKeyPrefix = "session:"
)

// SessionData is what a session token resolves to.
type SessionData struct {
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TokenService issues and validates admin session tokens. The gate itself is
// a single shared secret compared in constant time; a matching login yields
// an opaque token held in the cache for the session TTL. Not a credential
// system, and not meant to become one.
type TokenService struct {
	cache    cache.Cache
	adminKey string
	ttl      time.Duration
	log      *zap.Logger
}

// NewTokenService creates the token service. An empty adminKey disables
// admin login entirely.
func NewTokenService(c cache.Cache, adminKey string, ttl time.Duration, log *zap.Logger) *TokenService {
	if log == nil {
		log = zap.NewNop()
	}
	return &TokenService{cache: c, adminKey: adminKey, ttl: ttl, log: log}
}

// Login checks the shared key and, on match, issues a session token.
func (s *TokenService) Login(ctx context.Context, key string) (string, time.Duration, error) {
	if s.adminKey == "" {
		return "", 0, fmt.Errorf("admin access is not configured")
	}
	if subtle.ConstantTimeCompare([]byte(key), []byte(s.adminKey)) != 1 {
		return "", 0, fmt.Errorf("invalid admin key")
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", 0, fmt.Errorf("failed to generate token: %w", err)
	}
	token := tokenPrefix + hex.EncodeToString(raw)

	now := time.Now()
	data, err := json.Marshal(SessionData{CreatedAt: now, ExpiresAt: now.Add(s.ttl)})
	if err != nil {
		return "", 0, fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := s.cache.Set(ctx, tokenKeyPrefix+token, data, s.ttl); err != nil {
		return "", 0, fmt.Errorf("failed to store session: %w", err)
	}

	s.log.Info("admin session opened", zap.Time("expires_at", now.Add(s.ttl)))
	return token, s.ttl, nil
}

// Validate checks a token and returns its session data.
func (s *TokenService) Validate(ctx context.Context, token string) (*SessionData, error) {
	if token == "" {
		return nil, fmt.Errorf("empty token")
	}
	if len(token) < len(tokenPrefix) || token[:len(tokenPrefix)] != tokenPrefix {
		return nil, fmt.Errorf("invalid token format")
	}

	data, err := s.cache.Get(ctx, tokenKeyPrefix+token)
	if err == cache.ErrCacheMiss {
		return nil, fmt.Errorf("session not found or expired")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session SessionData
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	if time.Now().After(session.ExpiresAt) {
		_ = s.cache.Delete(ctx, tokenKeyPrefix+token)
		return nil, fmt.Errorf("session expired")
	}
	return &session, nil
}

// Logout revokes a session token.
func (s *TokenService) Logout(ctx context.Context, token string) error {
	return s.cache.Delete(ctx, tokenKeyPrefix+token)
}
