package model

import (
	"strings"
	"time"
)

// StatusNew is the status every submission starts in. Later transitions are
// performed by administrative tooling, not by this backend.
const StatusNew = "new"

// Request represents a repair-estimate submission
type Request struct {
	ID             int64
	FullName       string
	Email          string
	Phone          string
	Area           *float64
	FinishType     string
	EstimatedPrice *float64
	Message        *string
	Status         string
	UserID         *int64
	CreatedAt      time.Time
}

// CreateRequestInput is the intake payload
type CreateRequestInput struct {
	FullName       string   `json:"fullName"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Area           *float64 `json:"area"`
	FinishType     string   `json:"finishType"`
	EstimatedPrice *float64 `json:"estimatedPrice"`
	Message        string   `json:"message"`
	UserID         *int64   `json:"userId"`
}

// Validate trims the text fields and checks fullName, email and phone are
// non-empty. Everything else is optional.
func (in *CreateRequestInput) Validate() error {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.FinishType = strings.TrimSpace(in.FinishType)
	in.Message = strings.TrimSpace(in.Message)

	if in.FullName == "" || in.Email == "" || in.Phone == "" {
		return ErrMissingFields
	}
	return nil
}

// Record builds the row to persist from the validated input
func (in *CreateRequestInput) Record() *Request {
	r := &Request{
		FullName:       in.FullName,
		Email:          in.Email,
		Phone:          in.Phone,
		Area:           in.Area,
		FinishType:     in.FinishType,
		EstimatedPrice: in.EstimatedPrice,
		Status:         StatusNew,
		UserID:         in.UserID,
		CreatedAt:      time.Now(),
	}
	if in.Message != "" {
		msg := in.Message
		r.Message = &msg
	}
	return r
}

// RequestView is the wire representation of a submission. Nullable numerics
// stay pointers so absent values render as JSON null, and the timestamp is
// rendered as an RFC 3339 string.
type RequestView struct {
	ID             int64    `json:"id"`
	FullName       string   `json:"fullName"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Area           *float64 `json:"area"`
	FinishType     string   `json:"finishType"`
	EstimatedPrice *float64 `json:"estimatedPrice"`
	Message        *string  `json:"message"`
	Status         string   `json:"status"`
	CreatedAt      string   `json:"createdAt"`
}

// View maps a stored request to its wire representation
func (r *Request) View() RequestView {
	return RequestView{
		ID:             r.ID,
		FullName:       r.FullName,
		Email:          r.Email,
		Phone:          r.Phone,
		Area:           r.Area,
		FinishType:     r.FinishType,
		EstimatedPrice: r.EstimatedPrice,
		Message:        r.Message,
		Status:         r.Status,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
}

// RequestListResponse is the success body for the user-requests endpoint
type RequestListResponse struct {
	Requests []RequestView `json:"requests"`
}

// SubmitResponse is the success body for the intake endpoint
type SubmitResponse struct {
	Success   bool   `json:"success"`
	RequestID int64  `json:"requestId"`
	Message   string `json:"message"`
}
