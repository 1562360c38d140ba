package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/thronos/careerforge/internal/client/models"
	"github.com/thronos/careerforge/internal/client/session"
	"github.com/thronos/careerforge/internal/common"
	"github.com/thronos/careerforge/internal/logging"
)

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, email, password, fullName string) (*models.AuthResponse, error)
	Me(ctx context.Context) (*models.Me, error)
}

// SessionStore persists the login. *session.Store implements it.
type SessionStore interface {
	SaveLogin(ctx context.Context, auth *models.AuthResponse) error
	Clear(ctx context.Context) error
	IsLoggedIn(ctx context.Context) bool
	Identity(ctx context.Context) (session.Identity, error)
}

// AuthService logs in, registers and signs out.
type AuthService struct {
	api      AuthAPI
	sessions SessionStore
	log      logging.Logger
}

func NewAuthService(api AuthAPI, sessions SessionStore, log logging.Logger) *AuthService {
	return &AuthService{api: api, sessions: sessions, log: log}
}

// Login authenticates and stores the session. password is wiped on return.
func (s *AuthService) Login(ctx context.Context, email string, password []byte) (*models.AuthResponse, error) {
	defer common.WipeByteArray(password)

	email = strings.TrimSpace(email)
	if email == "" || len(password) == 0 {
		return nil, common.Invalid("Email and password are required.")
	}

	res, err := s.api.Login(ctx, email, string(password))
	if err != nil {
		return nil, err
	}
	if err := s.sessions.SaveLogin(ctx, res); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	s.log.Info(ctx, "logged in", "sub", res.Sub)
	return res, nil
}

// Register creates the account and logs in with it.
func (s *AuthService) Register(ctx context.Context, email string, password []byte, fullName string) (*models.AuthResponse, error) {
	defer common.WipeByteArray(password)

	email, fullName = strings.TrimSpace(email), strings.TrimSpace(fullName)
	if email == "" || len(password) == 0 || fullName == "" {
		return nil, common.Invalid("Please fill all required fields.")
	}

	res, err := s.api.Register(ctx, email, string(password), fullName)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.SaveLogin(ctx, res); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	s.log.Info(ctx, "registered", "sub", res.Sub)
	return res, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

func (s *AuthService) LoggedIn(ctx context.Context) bool {
	return s.sessions.IsLoggedIn(ctx)
}

// Who returns the stored e-mail, or "" when logged out.
func (s *AuthService) Who(ctx context.Context) string {
	if !s.sessions.IsLoggedIn(ctx) {
		return ""
	}
	id, err := s.sessions.Identity(ctx)
	if err != nil {
		return ""
	}
	return id.Email
}

func (s *AuthService) Me(ctx context.Context) (*models.Me, error) {
	return s.api.Me(ctx)
}
