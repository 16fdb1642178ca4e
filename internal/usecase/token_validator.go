package usecase

//go:generate mockgen -source=token_validator.go -destination=../testutil/mock/usecase/token_validator.go -package=usecasemock

import (
	"facility-booking/internal/domain/pricing"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/pkg/jwt"
	"facility-booking/internal/usecase/shared"
)

var ErrInvalidSystemRole = errs.New("invalid system role in token")

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (shared.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (shared.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Actor{}, err
	}

	role := pricing.SystemRole(claims.SystemRole)
	switch role {
	case pricing.SystemRoleAdmin, pricing.SystemRoleUser:
	case "":
		role = pricing.SystemRoleUser
	default:
		return shared.Actor{}, errs.Wrapf(ErrInvalidSystemRole, "%q", claims.SystemRole)
	}

	return shared.Actor{
		UserID: claims.UserID,
		Profile: pricing.RoleProfile{
			IsAdmin:      claims.IsAdmin,
			CustomRoleID: claims.CustomRoleID,
			SystemRole:   role,
			IsMember:     claims.IsMember,
		},
	}, nil
}
