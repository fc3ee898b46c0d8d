package service

import (
	"context"
	"fmt"
	"log"

	"renovation_backend/internal/model"
	"renovation_backend/internal/repository"
)

// Notifier delivers the admin notification for a stored submission.
// A nil Notifier disables notification entirely.
type Notifier interface {
	NotifyNewRequest(ctx context.Context, req *model.Request) error
}

// RequestService provides intake and listing of repair-estimate submissions
type RequestService interface {
	Submit(ctx context.Context, input model.CreateRequestInput) (*model.Request, error)
	ListForUser(ctx context.Context, userID int64) ([]model.RequestView, error)
}

type requestService struct {
	repo     repository.RequestRepository
	notifier Notifier
}

// NewRequestService creates a new RequestService
func NewRequestService(repo repository.RequestRepository, notifier Notifier) RequestService {
	return &requestService{repo: repo, notifier: notifier}
}

// Submit validates and persists a submission, then attempts the admin email.
// Persistence is the contract: by the time the email is tried the row is
// already committed, so notification failures are logged and swallowed.
func (s *requestService) Submit(ctx context.Context, input model.CreateRequestInput) (*model.Request, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	req := input.Record()
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create request in repo: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyNewRequest(ctx, req); err != nil {
			log.Printf("Email send error for request #%d: %v", req.ID, err)
		}
	}

	return req, nil
}

// ListForUser returns the user's submissions newest first. An unknown user id
// simply yields an empty list.
func (s *requestService) ListForUser(ctx context.Context, userID int64) ([]model.RequestView, error) {
	requests, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user requests from repo: %w", err)
	}

	views := make([]model.RequestView, 0, len(requests))
	for i := range requests {
		views = append(views, requests[i].View())
	}
	return views, nil
}
