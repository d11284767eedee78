package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/agent"
	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/domain"
	"github.com/chinmay-github-account/eazybank-agentverse-aws-lambda/internal/usecase"
)

type statusService interface {
	Lookup(ctx context.Context, phoneNumber string) (domain.Application, error)
}

// AccountStatusHandler answers account-status action invocations with a
// read-through lookup of the applications table.
type AccountStatusHandler struct {
	svc statusService
}

func NewAccountStatusHandler(svc statusService) (*AccountStatusHandler, error) {
	if svc == nil {
		return nil, errors.New("handler: status service must not be nil")
	}
	return &AccountStatusHandler{svc: svc}, nil
}

// Handle looks up the application for the phone_no invocation parameter.
// An unknown phone number is a normal answer for the agent, not an error.
func (h *AccountStatusHandler) Handle(ctx context.Context, event agent.Event) (agent.Response, error) {
	phone, _ := event.Parameter("phone_no")

	app, err := h.svc.Lookup(ctx, phone)
	if err != nil {
		var ucErr *usecase.Error
		if errors.As(err, &ucErr) {
			switch ucErr.Code {
			case usecase.ErrorValidation:
				slog.Warn("rejected status lookup", "reason", ucErr.Reason)
				return event.Respond(http.StatusBadRequest, messageBody{Message: ucErr.Reason})
			case usecase.ErrorNotFound:
				slog.Info("no application on file", "phone_no", phone)
				return event.Respond(http.StatusOK, messageBody{Message: "User not found"})
			}
		}
		slog.Error("status lookup failed", "err", err, "phone_no", phone)
		return event.Respond(http.StatusInternalServerError, messageBody{Message: "Error retrieving user details"})
	}

	return event.Respond(http.StatusOK, app.Attributes)
}
