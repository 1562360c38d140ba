// Package session keeps the bearer token and account identity in the local
// state database and derives the logged-in state from the token expiry.
//
// The expiry check decodes the token without verifying its signature. It is a
// client-side heuristic only; the backend authorizes every call.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/thronos/careerforge/internal/client/models"
	"github.com/thronos/careerforge/internal/client/repositories/metadata"
	"github.com/thronos/careerforge/internal/common"
	"github.com/thronos/careerforge/internal/dbx"
)

// Store persists the session. It satisfies api.TokenSource.
type Store struct {
	db   *sql.DB
	repo metadata.Repository
	now  func() time.Time
}

type Option func(*Store)

// WithClock overrides the time source used by IsLoggedIn.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(db *sql.DB, opts ...Option) *Store {
	s := &Store{
		db:   db,
		repo: metadata.NewSQLiteRepository(db),
		now:  time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Save overwrites the stored token.
func (s *Store) Save(ctx context.Context, token string) error {
	return s.repo.Set(ctx, common.TokenKey, []byte(token))
}

// SaveLogin stores the token and identity of a login or register response
// atomically.
func (s *Store) SaveLogin(ctx context.Context, auth *models.AuthResponse) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.TokenKey, []byte(auth.Token)); err != nil {
			return err
		}
		if err := repo.Set(ctx, common.EmailKey, []byte(auth.Email)); err != nil {
			return err
		}
		return repo.Set(ctx, common.SubjectKey, []byte(auth.Sub))
	})
}

// Clear removes the token and identity. The language preference survives.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, common.TokenKey, common.EmailKey, common.SubjectKey)
}

// Token returns the stored token; ok is false when none is stored.
func (s *Store) Token(ctx context.Context) (token string, ok bool, err error) {
	v, err := s.repo.Get(ctx, common.TokenKey)
	if err != nil {
		return "", false, fmt.Errorf("read token: %w", err)
	}
	if len(v) == 0 {
		return "", false, nil
	}
	return string(v), true, nil
}

// BearerToken returns the stored token or "" when logged out.
func (s *Store) BearerToken(ctx context.Context) (string, error) {
	token, _, err := s.Token(ctx)
	return token, err
}

type Identity struct {
	Email string
	Sub   string
}

func (s *Store) Identity(ctx context.Context) (Identity, error) {
	var id Identity
	email, err := s.repo.Get(ctx, common.EmailKey)
	if err != nil {
		return id, err
	}
	sub, err := s.repo.Get(ctx, common.SubjectKey)
	if err != nil {
		return id, err
	}
	id.Email, id.Sub = string(email), string(sub)
	return id, nil
}

// IsLoggedIn reports whether a token is stored and not yet expired.
// Storage errors count as logged out.
func (s *Store) IsLoggedIn(ctx context.Context) bool {
	token, ok, err := s.Token(ctx)
	if err != nil || !ok {
		return false
	}
	return IsValidAt(token, s.now())
}

// IsValidAt decodes the unverified exp claim of token and reports whether it
// lies after now. Malformed tokens and tokens without exp are invalid.
func IsValidAt(token string, now time.Time) (valid bool) {
	defer func() {
		if recover() != nil {
			valid = false
		}
	}()

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.After(now)
}
