package auth

import (
	"fmt"
	"strings"
	"time"

	"duty-roster-backend/internal/repository"

	apperrors "duty-roster-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const accessTokenTTL = 15 * time.Minute

// Claims carries the authenticated soldier's identity inside the JWT
type Claims struct {
	SoldierID uuid.UUID `json:"soldier_id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	jwt.RegisteredClaims
}

// AuthService issues and validates access tokens for roster users
type AuthService struct {
	soldierRepo repository.SoldierRepositoryInterface
	secret      []byte
	now         func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(soldierRepo repository.SoldierRepositoryInterface, secret string) *AuthService {
	return &AuthService{
		soldierRepo: soldierRepo,
		secret:      []byte(secret),
		now:         time.Now,
	}
}

// NormalizePhone strips spaces, dashes and parentheses from a phone number
func NormalizePhone(phone string) string {
	return strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
}

// Login looks up a soldier by phone number and issues an access token
func (s *AuthService) Login(phone string) (string, *Claims, error) {
	normalized := NormalizePhone(phone)
	if normalized == "" {
		return "", nil, apperrors.NewAuthenticationError("phone number is required")
	}

	soldier, err := s.soldierRepo.GetByPhone(normalized)
	if err != nil {
		return "", nil, apperrors.ErrSoldierNotFound
	}

	token, claims, err := s.generateToken(soldier.ID, soldier.FullName, normalized)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, claims, nil
}

func (s *AuthService) generateToken(soldierID uuid.UUID, fullName, phone string) (string, *Claims, error) {
	now := s.now()
	claims := &Claims{
		SoldierID: soldierID,
		FullName:  fullName,
		Phone:     phone,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// ValidateToken parses and validates an access token
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, apperrors.NewAuthenticationError("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.NewAuthenticationError("invalid token claims")
	}
	return claims, nil
}
