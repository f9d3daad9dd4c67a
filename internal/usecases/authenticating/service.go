package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
)

// Authenticator valida os tokens emitidos pelo provedor de identidade.
// O acesso de administrador vem do perfil no token, nunca de uma lista de e-mails.
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg config.Auth
}

func NewService(cfg *config.Config) *Service {
	return &Service{cfg: cfg.Auth}
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if s.cfg.Secret == "" {
		return nil, NewAuthError(ErrMissingSecret, apiErrors.ErrInvalidToken, "")
	}

	options := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.cfg.Issuer != "" {
		options = append(options, jwt.WithIssuer(s.cfg.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, options...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		case errors.Is(err, jwt.ErrTokenInvalidIssuer):
			return nil, NewAuthError(ErrInvalidIssuer, apiErrors.ErrInvalidToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	if claims.Role != domain.RoleAdmin && claims.Role != domain.RoleViewer {
		return nil, NewAuthError(ErrInvalidRole, apiErrors.ErrInsufficientPrivilege, claims.Role)
	}

	return claims, nil
}

// GenerateToken assina um token com o mesmo segredo usado na validação.
// Usado pelo comando de emissão de tokens de desenvolvimento e pelos testes.
func (s *Service) GenerateToken(email, name, role string, ttl time.Duration) (string, error) {
	if s.cfg.Secret == "" {
		return "", ErrMissingSecret
	}

	now := time.Now()
	claims := domain.Claims{
		Email: email,
		Name:  name,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}
