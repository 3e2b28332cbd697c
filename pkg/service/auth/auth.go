// Package auth signs users in and issues the bearer tokens that scope every
// ledger request to one user.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
)

// Compared against when the mail is unknown so both paths cost one bcrypt check.
const dummyHash = "$2a$10$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

// Claims is the token payload.
type Claims struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Mail string `json:"mail"`
	jwt.RegisteredClaims
}

// Service authenticates users with HS256 JWTs.
type Service struct {
	uow    repository.UnitOfWork
	cfg    *config.Jwt
	logger *slog.Logger
	now    func() time.Time
}

// NewWithJWT creates an auth service signing with cfg.Secret.
func NewWithJWT(uow repository.UnitOfWork, cfg *config.Jwt, logger *slog.Logger) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger, now: time.Now}
}

// Login checks mail and passwd. Any mismatch is domain.ErrUnauthorized.
func (s *Service) Login(ctx context.Context, mail, passwd string) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "Login", "mail", mail)
	log.Debug("Login called")

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return fmt.Errorf("failed to get user repository: %w", err)
		}
		u, err = repo.GetByMail(ctx, mail)
		if errors.Is(err, domain.ErrNotFound) {
			_ = utils.CheckPasswordHash(passwd, dummyHash)
			return domain.ErrUnauthorized
		}
		if err != nil {
			return err
		}
		if !utils.CheckPasswordHash(passwd, u.Passwd) {
			return domain.ErrUnauthorized
		}
		return nil
	})
	if err != nil {
		log.Error("Login failed", "error", err)
		return nil, err
	}
	log.Info("Login successful", "userID", u.ID)
	return u, nil
}

// GenerateToken signs a token carrying the id, name and mail of u.
func (s *Service) GenerateToken(u *dto.UserRead) (string, error) {
	now := s.now()
	claims := Claims{
		ID:   u.ID,
		Name: u.Name,
		Mail: u.Mail,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Expiry)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		s.logger.Error("GenerateToken failed", "userID", u.ID, "error", err)
		return "", err
	}
	return token, nil
}

// CurrentUserID extracts the user id from a verified token.
func CurrentUserID(token *jwt.Token) (int64, error) {
	if token == nil {
		return 0, domain.ErrUnauthorized
	}
	switch claims := token.Claims.(type) {
	case *Claims:
		if claims.ID > 0 {
			return claims.ID, nil
		}
	case jwt.MapClaims:
		if raw, ok := claims["id"].(float64); ok && raw > 0 {
			return int64(raw), nil
		}
	}
	return 0, domain.ErrUnauthorized
}
