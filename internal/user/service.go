// internal/user/service.go
package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/anthony-garcia-santos/techstorage/internal/types/user"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrInvalidCreds = errors.New("invalid credentials")
	ErrInvalidToken = errors.New("invalid session token")
)

// Service opens shopper sessions. There is no credential store: any
// email/password pair is accepted and the admin flag is granted to the one
// configured admin address.
type Service struct {
	adminEmail string
	jwtSecret  []byte
	jwtTTL     time.Duration
}

func NewService(adminEmail string, jwtSecret []byte, jwtTTL time.Duration) *Service {
	return &Service{adminEmail: adminEmail, jwtSecret: jwtSecret, jwtTTL: jwtTTL}
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name"`
	Admin bool   `json:"admin"`
}

func (s *Service) newUser(email, name string) (*user.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrInvalidCreds
	}
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	return &user.User{
		ID:      email,
		Name:    name,
		IsAdmin: s.adminEmail != "" && email == s.adminEmail,
	}, nil
}

func (s *Service) Login(_ context.Context, email, password string) (*user.User, error) {
	return s.newUser(email, "")
}

func (s *Service) Signup(_ context.Context, email, password, name string) (*user.User, error) {
	return s.newUser(email, strings.TrimSpace(name))
}

func (s *Service) IssueToken(u *user.User) (string, error) {
	now := time.Now().UTC()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Name:  u.Name,
		Admin: u.IsAdmin,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *Service) ParseToken(tokenStr string) (*user.User, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &user.User{ID: claims.Subject, Name: claims.Name, IsAdmin: claims.Admin}, nil
}
