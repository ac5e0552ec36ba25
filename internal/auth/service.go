package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	apperrors "or-caseflow-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents JWT token claims issued to a board station
type AuthClaims struct {
	Station string `json:"station" example:"or-desk-1"`
	Role    string `json:"role" example:"board"`
	jwt.RegisteredClaims
}

// TokenRequest is the body of the token exchange endpoint. Stations present
// the shared board secret and receive a short-lived JWT.
type TokenRequest struct {
	Secret  string `json:"secret" binding:"required"`
	Station string `json:"station" binding:"required"`
}

// TokenResponse is the response for a successful token exchange
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn" example:"43200"`
}

// AuthService issues and validates station tokens
type AuthService struct {
	boardSecret string
	jwtSecret   string
	tokenTTL    time.Duration
}

// NewAuthService creates a new authentication service
func NewAuthService(boardSecret, jwtSecret string) (*AuthService, error) {
	if jwtSecret == "" {
		return nil, apperrors.NewConfigurationError("JWT_SECRET is required")
	}
	return &AuthService{
		boardSecret: boardSecret,
		jwtSecret:   jwtSecret,
		tokenTTL:    12 * time.Hour,
	}, nil
}

// ExchangeSecret validates the shared board secret and issues a JWT for the
// station. An empty configured secret disables the check, which is only
// acceptable in development.
func (s *AuthService) ExchangeSecret(req *TokenRequest) (*TokenResponse, error) {
	if s.boardSecret != "" {
		if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(s.boardSecret)) != 1 {
			return nil, apperrors.ErrInvalidBoardSecret
		}
	}

	token, err := s.GenerateJWT(req.Station)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
	}, nil
}

// GenerateJWT creates a JWT token for a station
func (s *AuthService) GenerateJWT(station string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		Station: station,
		Role:    "board",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "or-caseflow-backend",
			Subject:   station,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, apperrors.ErrInvalidToken
}
