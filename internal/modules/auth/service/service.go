package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"anoa.com/internfundraiser/internal/modules/auth/dto"
	"anoa.com/internfundraiser/pkg/apperror"
	"anoa.com/internfundraiser/pkg/ratelimiter"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "intern-fundraiser"

// AuthService issues demo tokens. There is no credential store: any well formed
// email and password pair is accepted, so the token only gates client navigation.
type AuthService interface {
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error)
	ParseToken(token string) (*jwt.RegisteredClaims, error)
}

// LoginLimiter throttles repeated logins for the same email. May be nil.
type LoginLimiter interface {
	Allow(ctx context.Context, subject string) (bool, time.Duration, error)
}

type authService struct {
	secret   []byte
	tokenTTL time.Duration
	limiter  LoginLimiter
	now      func() time.Time
}

func NewAuthService(secret string, tokenTTL time.Duration, limiter LoginLimiter) AuthService {
	return &authService{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		limiter:  limiter,
		now:      time.Now,
	}
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", apperror.ErrInvalidInput)
	}

	if s.limiter != nil {
		allowed, retryAfter, err := s.limiter.Allow(ctx, email)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, &ratelimiter.RateLimitError{
				Message:    fmt.Sprintf("Too many login attempts. Try again in %.0f seconds", retryAfter.Seconds()),
				RetryAfter: retryAfter,
			}
		}
	}

	now := s.now()
	expiresAt := now.Add(s.tokenTTL)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    issuer,
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.AuthResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt.UTC().Truncate(time.Second),
		Email:       email,
	}, nil
}

func (s *authService) ParseToken(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, apperror.ErrUnauthorized
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, apperror.ErrUnauthorized
	}
	return claims, nil
}
