package usecase

import (
	"movie-reservation/internal/pkg/jwt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator_mock.go -package=usecasemock

// CustomerIdentity is who a bearer token says the caller is.
type CustomerIdentity struct {
	ID   uuid.UUID
	Name string
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (CustomerIdentity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (CustomerIdentity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return CustomerIdentity{}, err
	}

	id, err := claims.CustomerID()
	if err != nil {
		return CustomerIdentity{}, err
	}

	return CustomerIdentity{ID: id, Name: claims.Name}, nil
}
