package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"renovation_backend/internal/model"
	"renovation_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRequestService struct {
	submitFn func(ctx context.Context, input model.CreateRequestInput) (*model.Request, error)
	listFn   func(ctx context.Context, userID int64) ([]model.RequestView, error)
}

func (s *stubRequestService) Submit(ctx context.Context, input model.CreateRequestInput) (*model.Request, error) {
	return s.submitFn(ctx, input)
}

func (s *stubRequestService) ListForUser(ctx context.Context, userID int64) ([]model.RequestView, error) {
	return s.listFn(ctx, userID)
}

func newRequestRouter(svc service.RequestService, debug bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.HandleMethodNotAllowed = true

	h := NewRequestHandler(svc, debug)
	h.RegisterRequestRoutes(router.Group("/api/v1"))
	return router
}

func TestRequestHandler_Submit(t *testing.T) {
	svc := &stubRequestService{
		submitFn: func(ctx context.Context, input model.CreateRequestInput) (*model.Request, error) {
			return &model.Request{ID: 42, FullName: input.FullName, Status: model.StatusNew}, nil
		},
	}
	router := newRequestRouter(svc, false)

	w := doJSON(t, router, http.MethodPost, "/api/v1/requests",
		`{"fullName":"A B","email":"a@b.com","phone":"+7 900 000-00-00","finishType":"premium"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp model.SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(42), resp.RequestID)
	assert.Equal(t, "Request submitted successfully", resp.Message)
}

func TestRequestHandler_Submit_MissingFields(t *testing.T) {
	svc := &stubRequestService{
		submitFn: func(ctx context.Context, input model.CreateRequestInput) (*model.Request, error) {
			return nil, model.ErrMissingFields
		},
	}
	router := newRequestRouter(svc, false)

	w := doJSON(t, router, http.MethodPost, "/api/v1/requests", `{"email":"a@b.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "required fields")
}

func TestRequestHandler_Submit_StoreError(t *testing.T) {
	svc := &stubRequestService{
		submitFn: func(ctx context.Context, input model.CreateRequestInput) (*model.Request, error) {
			return nil, errors.New("connection refused")
		},
	}
	router := newRequestRouter(svc, false)

	w := doJSON(t, router, http.MethodPost, "/api/v1/requests",
		`{"fullName":"A B","email":"a@b.com","phone":"1","finishType":"basic"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestRequestHandler_ListByUser(t *testing.T) {
	area := 55.5
	svc := &stubRequestService{
		listFn: func(ctx context.Context, userID int64) ([]model.RequestView, error) {
			assert.Equal(t, int64(7), userID)
			return []model.RequestView{{
				ID:        1,
				FullName:  "A B",
				Email:     "a@b.com",
				Phone:     "1",
				Area:      &area,
				Status:    model.StatusNew,
				CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).Format(time.RFC3339),
			}}, nil
		},
	}
	router := newRequestRouter(svc, false)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests?userId=7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp model.RequestListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Requests, 1)
	assert.Equal(t, "new", resp.Requests[0].Status)
	assert.Equal(t, "2025-06-01T12:00:00Z", resp.Requests[0].CreatedAt)
}

func TestRequestHandler_ListByUser_EmptyIsArray(t *testing.T) {
	svc := &stubRequestService{
		listFn: func(ctx context.Context, userID int64) ([]model.RequestView, error) {
			return []model.RequestView{}, nil
		},
	}
	router := newRequestRouter(svc, false)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests?userId=7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"requests":[]}`, w.Body.String())
}

func TestRequestHandler_ListByUser_MissingUserID(t *testing.T) {
	router := newRequestRouter(&stubRequestService{}, false)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "userId is required")
}

func TestRequestHandler_ListByUser_BadUserID(t *testing.T) {
	router := newRequestRouter(&stubRequestService{}, false)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests?userId=abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid userId format")
}

func TestRequestHandler_MethodNotAllowed(t *testing.T) {
	router := newRequestRouter(&stubRequestService{}, false)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/requests", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
