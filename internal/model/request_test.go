package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRequestInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   CreateRequestInput
		wantErr error
	}{
		{
			name:  "all required fields",
			input: CreateRequestInput{FullName: "A B", Email: "a@b.com", Phone: "1"},
		},
		{
			name:  "whitespace trimmed",
			input: CreateRequestInput{FullName: "  A B  ", Email: " a@b.com ", Phone: " 1 "},
		},
		{
			name:    "missing fullName",
			input:   CreateRequestInput{Email: "a@b.com", Phone: "1"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing email",
			input:   CreateRequestInput{FullName: "A B", Phone: "1"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing phone",
			input:   CreateRequestInput{FullName: "A B", Email: "a@b.com"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "whitespace-only phone",
			input:   CreateRequestInput{FullName: "A B", Email: "a@b.com", Phone: "   "},
			wantErr: ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotContains(t, tt.input.FullName, " A")
		})
	}
}

func TestCreateRequestInput_Record(t *testing.T) {
	area := 55.5
	input := CreateRequestInput{
		FullName:   "A B",
		Email:      "a@b.com",
		Phone:      "1",
		Area:       &area,
		FinishType: "premium",
		Message:    "Call after 18:00",
	}
	require.NoError(t, input.Validate())

	req := input.Record()
	assert.Equal(t, StatusNew, req.Status)
	assert.WithinDuration(t, time.Now(), req.CreatedAt, time.Second)
	require.NotNil(t, req.Message)
	assert.Equal(t, "Call after 18:00", *req.Message)
	assert.Nil(t, req.UserID)
}

func TestCreateRequestInput_Record_EmptyMessageIsNil(t *testing.T) {
	input := CreateRequestInput{FullName: "A B", Email: "a@b.com", Phone: "1"}
	require.NoError(t, input.Validate())

	req := input.Record()
	assert.Nil(t, req.Message)
	assert.Nil(t, req.Area)
	assert.Nil(t, req.EstimatedPrice)
}

func TestRequestView_JSONNulls(t *testing.T) {
	req := Request{
		ID:        1,
		FullName:  "A B",
		Email:     "a@b.com",
		Phone:     "1",
		Status:    StatusNew,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	payload, err := json.Marshal(req.View())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 1,
		"fullName": "A B",
		"email": "a@b.com",
		"phone": "1",
		"area": null,
		"finishType": "",
		"estimatedPrice": null,
		"message": null,
		"status": "new",
		"createdAt": "2025-06-01T12:00:00Z"
	}`, string(payload))
}
