package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/domain"
	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/repository"
)

// ApplicationReader looks up one account application by phone number.
type ApplicationReader interface {
	GetApplication(ctx context.Context, phoneNumber string) (domain.Application, error)
}

// StatusService answers account-status lookups. Plain read-through, no
// caching.
type StatusService struct {
	apps ApplicationReader
}

func NewStatusService(apps ApplicationReader) (*StatusService, error) {
	if apps == nil {
		return nil, errors.New("usecase: application reader must not be nil")
	}
	return &StatusService{apps: apps}, nil
}

// Lookup fetches the application on file for phoneNumber.
func (s *StatusService) Lookup(ctx context.Context, phoneNumber string) (domain.Application, error) {
	if strings.TrimSpace(phoneNumber) == "" {
		return domain.Application{}, newError(ErrorValidation, "missing required parameter: phone_no", nil)
	}

	app, err := s.apps.GetApplication(ctx, phoneNumber)
	if errors.Is(err, repository.ErrApplicationNotFound) {
		return domain.Application{}, newError(ErrorNotFound, "application_not_found", err)
	}
	if err != nil {
		return domain.Application{}, newError(ErrorDependency, "dynamodb_read_error", err)
	}
	return app, nil
}
