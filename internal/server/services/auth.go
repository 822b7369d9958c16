package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/desawisata/internal/common"
	"github.com/dmitrijs2005/desawisata/internal/dbx"
	"github.com/dmitrijs2005/desawisata/internal/server/models"
	"github.com/dmitrijs2005/desawisata/internal/server/repositories/repomanager"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	Issue(userID int64, role string) (string, error)
}

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, encoded string) bool
}

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	AccessToken string
	UserID      int64
	Username    string
	Email       string
	Role        string
}

type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      TokenIssuer
	passwords   PasswordHasher
	timeout     time.Duration
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, tokens TokenIssuer, passwords PasswordHasher, timeout time.Duration) *AuthService {
	return &AuthService{
		db:          db,
		repomanager: m,
		tokens:      tokens,
		passwords:   passwords,
		timeout:     timeout,
	}
}

// Login authenticates an active user by exact email and password. Unknown
// emails, inactive accounts and wrong passwords all yield
// common.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.repomanager.Users(s.db).GetActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.PasswordHash == "" || !s.passwords.Verify(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: sign token: %w", common.ErrorInternal, err)
	}

	return &LoginResult{
		AccessToken: token,
		UserID:      user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Role:        user.Role,
	}, nil
}

// ProvisionAdmin creates an active admin account. It backs the provisioning
// command; the HTTP API has no way to create users.
func (s *AuthService) ProvisionAdmin(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	err := validation.Errors{
		"username": validation.Validate(username, validation.Required, validation.Length(1, 100)),
		"email":    validation.Validate(email, validation.Required, is.Email),
		"password": validation.Validate(password, validation.Required, validation.Length(8, 0)),
	}.Filter()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%w: hash password: %w", common.ErrorInternal, err)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	user := &models.User{Username: username, Email: email, PasswordHash: hash, Role: models.RoleAdmin}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		user, err = s.repomanager.Users(tx).Create(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
