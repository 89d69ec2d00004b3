package http

import (
	"errors"
	"fmt"

	authDto "anoa.com/internfundraiser/internal/modules/auth/dto"
	authService "anoa.com/internfundraiser/internal/modules/auth/service"
	"anoa.com/internfundraiser/internal/middleware"
	"anoa.com/internfundraiser/pkg/apperror"
	"anoa.com/internfundraiser/pkg/ratelimiter"
	"anoa.com/internfundraiser/pkg/response"
	"anoa.com/internfundraiser/pkg/validator"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service authService.AuthService
}

func NewAuthHandler(service authService.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input authDto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Failure(c, fmt.Errorf("%w: %s", apperror.ErrInvalidInput, validator.FormatValidationError(err)), "Invalid login request")
		return
	}

	res, err := h.service.Login(c.Request.Context(), input)
	if err != nil {
		var rateLimitErr *ratelimiter.RateLimitError
		if errors.As(err, &rateLimitErr) {
			c.Header("Retry-After", fmt.Sprintf("%.0f", rateLimitErr.RetryAfter.Seconds()))
			response.Failure(c, err, rateLimitErr.Message)
			return
		}
		response.Failure(c, err, "Login failed")
		return
	}

	response.Success(c, res)
}

func (h *AuthHandler) Session(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		response.Failure(c, apperror.ErrUnauthorized, "Not logged in")
		return
	}

	session := authDto.SessionResponse{Email: claims.Subject}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}

	response.Success(c, session)
}
