package gateway

import (
	"context"
	"net/http"
	"strconv"

	"renovation_backend/internal/model"
	"renovation_backend/internal/service"

	"github.com/aws/aws-lambda-go/events"
)

// UserRequestsHandler is the cabinet listing function
type UserRequestsHandler struct {
	service service.RequestService
	debug   bool
}

// NewUserRequestsHandler creates a new UserRequestsHandler
func NewUserRequestsHandler(s service.RequestService, debug bool) *UserRequestsHandler {
	return &UserRequestsHandler{service: s, debug: debug}
}

func (h *UserRequestsHandler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if event.HTTPMethod == http.MethodOptions {
		return preflight("GET, OPTIONS"), nil
	}
	if event.HTTPMethod != http.MethodGet {
		return respond(405, errorBody{Error: "Method not allowed"}), nil
	}

	userIDStr := event.QueryStringParameters["userId"]
	if userIDStr == "" {
		return respond(400, errorBody{Error: "userId is required"}), nil
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return respond(400, errorBody{Error: "Invalid userId format"}), nil
	}

	views, err := h.service.ListForUser(ctx, userID)
	if err != nil {
		return serverError(h.debug, err), nil
	}

	return respond(200, model.RequestListResponse{Requests: views}), nil
}
