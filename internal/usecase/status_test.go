package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/domain"
	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/repository"
)

type mockApps struct {
	app       domain.Application
	err       error
	lastPhone string
}

func (m *mockApps) GetApplication(_ context.Context, phoneNumber string) (domain.Application, error) {
	m.lastPhone = phoneNumber
	return m.app, m.err
}

func TestLookup_HappyPath(t *testing.T) {
	apps := &mockApps{app: domain.Application{
		PhoneNumber: "5551234",
		Attributes:  map[string]string{"status": "approved"},
	}}
	s, err := NewStatusService(apps)
	require.NoError(t, err)

	app, err := s.Lookup(context.Background(), "5551234")
	require.NoError(t, err)
	require.Equal(t, "approved", app.Attributes["status"])
	require.Equal(t, "5551234", apps.lastPhone)
}

func TestLookup_MissingPhoneNumber(t *testing.T) {
	s, err := NewStatusService(&mockApps{})
	require.NoError(t, err)

	_, err = s.Lookup(context.Background(), " ")
	var ucErr *Error
	require.ErrorAs(t, err, &ucErr)
	require.Equal(t, ErrorValidation, ucErr.Code)
	require.Contains(t, ucErr.Reason, "phone_no")
}

func TestLookup_NotFound(t *testing.T) {
	apps := &mockApps{err: repository.ErrApplicationNotFound}
	s, err := NewStatusService(apps)
	require.NoError(t, err)

	_, err = s.Lookup(context.Background(), "5551234")
	var ucErr *Error
	require.ErrorAs(t, err, &ucErr)
	require.Equal(t, ErrorNotFound, ucErr.Code)
}

func TestLookup_DependencyError(t *testing.T) {
	apps := &mockApps{err: errors.New("table missing")}
	s, err := NewStatusService(apps)
	require.NoError(t, err)

	_, err = s.Lookup(context.Background(), "5551234")
	var ucErr *Error
	require.ErrorAs(t, err, &ucErr)
	require.Equal(t, ErrorDependency, ucErr.Code)
}

func TestNewStatusService_NilReader(t *testing.T) {
	_, err := NewStatusService(nil)
	require.Error(t, err)
}
