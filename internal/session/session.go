package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the name of the session cookie.
const CookieName = "memo_session"

var (
	ErrNoSessionCookie = errors.New("session cookie missing")
	ErrInvalidSession  = errors.New("invalid session token")
	ErrSessionRevoked  = errors.New("session has been revoked")
)

// Denylist tracks revoked session IDs until their natural expiry.
type Denylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Session issues and validates signed session tokens carried in a cookie.
// The token payload binds a username to a unique session id (jti).
type Session struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Session lifetime
	denylist  Denylist      // Optional revocation store
}

// New creates a Session manager. denylist may be nil, in which case
// logout only clears the cookie and tokens stay valid until expiry.
func New(secretKey string, exp time.Duration, denylist Denylist) *Session {
	return &Session{
		SecretKey: secretKey,
		Exp:       exp,
		denylist:  denylist,
	}
}

// Issue creates a signed session token bound to username.
func (s *Session) Issue(ctx context.Context, username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"username": username,
		"jti":      uuid.New().String(),
		"iat":      now.Unix(),
		"exp":      now.Add(s.Exp).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.SecretKey))
}

// Username verifies the token and returns the username it is bound to.
// Revoked sessions fail even if the signature is still valid.
func (s *Session) Username(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return "", err
	}

	if s.denylist != nil {
		jti, _ := claims["jti"].(string)
		revoked, err := s.denylist.IsRevoked(ctx, jti)
		if err != nil {
			return "", err
		}
		if revoked {
			return "", ErrSessionRevoked
		}
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", ErrInvalidSession
	}
	return username, nil
}

// Validate reports whether the token is an active session.
func (s *Session) Validate(ctx context.Context, tokenString string) error {
	_, err := s.Username(ctx, tokenString)
	return err
}

// Revoke invalidates the session the token represents. Revoking an
// invalid, expired or already revoked token is not an error, so logout
// stays idempotent.
func (s *Session) Revoke(ctx context.Context, tokenString string) error {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil
	}

	if s.denylist == nil {
		return nil
	}

	jti, ok := claims["jti"].(string)
	if !ok || jti == "" {
		return nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	ttl := time.Until(exp.Time)
	if ttl <= 0 {
		return nil
	}

	return s.denylist.Revoke(ctx, jti, ttl)
}

// GetTokenFromRequest extracts the session token from the request cookie.
func (s *Session) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", ErrNoSessionCookie
	}
	return c.Value, nil
}

// Cookie builds the cookie that carries a freshly issued token.
func (s *Session) Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.Exp.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie builds the cookie that clears the session on the client.
func (s *Session) ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (s *Session) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
