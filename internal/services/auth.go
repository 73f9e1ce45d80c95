package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/memo-app/internal/logger"
	"github.com/sbilibin2017/memo-app/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (int64, error)
}

// TokenIssuer issues session tokens for authenticated usernames.
type TokenIssuer interface {
	Issue(ctx context.Context, username string) (string, error)
}

// TokenRevoker invalidates previously issued session tokens.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenString string) error
}

// AuthService handles signup, login and logout.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	issuer  TokenIssuer
	revoker TokenRevoker
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, issuer TokenIssuer, revoker TokenRevoker) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		issuer:  issuer,
		revoker: revoker,
	}
}

// Signup creates a new user with a bcrypt-hashed password and returns
// the new user's id.
func (svc *AuthService) Signup(ctx context.Context, username, email, password string) (int64, error) {
	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return 0, err
	}
	if existing != nil {
		logger.Log.Infow("username already taken", "username", username)
		return 0, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	id, err := svc.writer.Save(ctx, username, email, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return 0, err
	}

	return id, nil
}

// Login verifies the credentials and returns a session token. bcrypt
// fails closed on malformed stored hashes, so a corrupt row behaves
// like a wrong password.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Infow("login for unknown user", "username", username)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.issuer.Issue(ctx, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to issue session token", "err", err)
		return "", err
	}

	return token, nil
}

// Logout revokes the session token. Logging out twice, or with a token
// that never was valid, is not an error.
func (svc *AuthService) Logout(ctx context.Context, tokenString string) error {
	if err := svc.revoker.Revoke(ctx, tokenString); err != nil {
		logger.Log.Errorw("failed to revoke session token", "err", err)
		return err
	}
	return nil
}
