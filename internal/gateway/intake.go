package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"renovation_backend/internal/model"
	"renovation_backend/internal/service"

	"github.com/aws/aws-lambda-go/events"
)

// IntakeHandler is the repair-estimate submission function
type IntakeHandler struct {
	service service.RequestService
	debug   bool
}

// NewIntakeHandler creates a new IntakeHandler
func NewIntakeHandler(s service.RequestService, debug bool) *IntakeHandler {
	return &IntakeHandler{service: s, debug: debug}
}

func (h *IntakeHandler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if event.HTTPMethod == http.MethodOptions {
		return preflight("POST, OPTIONS"), nil
	}
	if event.HTTPMethod != http.MethodPost {
		return respond(405, errorBody{Error: "Method not allowed"}), nil
	}

	var input model.CreateRequestInput
	if err := json.Unmarshal([]byte(event.Body), &input); err != nil {
		return serverError(h.debug, err), nil
	}

	req, err := h.service.Submit(ctx, input)
	if err != nil {
		if errors.Is(err, model.ErrMissingFields) {
			return respond(400, errorBody{Error: "Please fill in all required fields"}), nil
		}
		return serverError(h.debug, err), nil
	}

	return respond(200, model.SubmitResponse{
		Success:   true,
		RequestID: req.ID,
		Message:   "Request submitted successfully",
	}), nil
}
