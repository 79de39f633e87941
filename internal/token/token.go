// Package token issues and verifies the signed bearer tokens that
// carry authentication state between requests.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/recipe-share/internal/config"
	"github.com/recipe-share/internal/model"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims is the verified content of a token.
type Claims struct {
	UserID uuid.UUID
	Role   model.Role
}

type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(cfg config.AuthConfig) *Service {
	return &Service{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TokenTTL,
	}
}

// Issue signs a token for the given user carrying its role bitmask.
func (s *Service) Issue(userID uuid.UUID, role model.Role) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"role":    int(role),
		"exp":     time.Now().Add(s.ttl).Unix(),
		"iat":     time.Now().Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// IssueAdmin signs a token for a synthetic identity with every
// authority set. The subject is random and never stored as a user row;
// the token exists for bootstrap and ops access only.
func (s *Service) IssueAdmin() (string, error) {
	return s.Issue(uuid.New(), model.RoleAdmin|model.RoleModerator|model.RoleUser)
}

// Verify checks the signature and expiry of a token and returns its
// claims. Expired tokens yield ErrTokenExpired; everything else wrong
// with the token yields ErrTokenInvalid.
func (s *Service) Verify(tokenStr string) (*Claims, error) {
	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return nil, ErrTokenInvalid
	}

	rawID, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrTokenInvalid
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	rawRole, ok := claims["role"].(float64)
	if !ok {
		return nil, ErrTokenInvalid
	}

	return &Claims{
		UserID: userID,
		Role:   model.Role(rawRole),
	}, nil
}
