package usecase

import (
	"campaign-engine/internal/domain/campaign"
	"campaign-engine/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, campaign.LoginType, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, campaign.LoginType, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	loginType, err := campaign.NewLoginType(claims.LoginType)
	if err != nil {
		return uuid.Nil, "", err
	}

	return claims.UserID, loginType, nil
}
