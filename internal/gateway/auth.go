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

// AuthHandler is the registration/login function. It routes on the action
// query parameter combined with POST; anything else is a generic 400.
type AuthHandler struct {
	service service.AuthService
	debug   bool
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, debug bool) *AuthHandler {
	return &AuthHandler{service: s, debug: debug}
}

func (h *AuthHandler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if event.HTTPMethod == http.MethodOptions {
		return preflight("POST, GET, OPTIONS"), nil
	}

	action := event.QueryStringParameters["action"]

	switch {
	case event.HTTPMethod == http.MethodPost && action == "register":
		return h.register(ctx, event.Body), nil
	case event.HTTPMethod == http.MethodPost && action == "login":
		return h.login(ctx, event.Body), nil
	default:
		return respond(400, errorBody{Error: "Invalid path or method"}), nil
	}
}

func (h *AuthHandler) register(ctx context.Context, body string) events.APIGatewayProxyResponse {
	var req model.RegisterRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return serverError(h.debug, err)
	}

	user, token, err := h.service.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrMissingFields):
			return respond(400, errorBody{Error: "Please fill in all required fields"})
		case errors.Is(err, service.ErrEmailTaken):
			return respond(400, errorBody{Error: "Email is already registered"})
		default:
			return serverError(h.debug, err)
		}
	}

	return respond(200, model.AuthResponse{Success: true, User: user.Info(), Token: token})
}

func (h *AuthHandler) login(ctx context.Context, body string) events.APIGatewayProxyResponse {
	var req model.LoginRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return serverError(h.debug, err)
	}

	user, token, err := h.service.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrMissingFields):
			return respond(400, errorBody{Error: "Please fill in all required fields"})
		case errors.Is(err, service.ErrInvalidCredentials):
			return respond(401, errorBody{Error: "Invalid email or password"})
		default:
			return serverError(h.debug, err)
		}
	}

	return respond(200, model.AuthResponse{Success: true, User: user.Info(), Token: token})
}
