package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr error
	}{
		{
			name: "valid without phone",
			req:  RegisterRequest{Email: "a@b.com", Password: "x", FullName: "A B"},
		},
		{
			name: "valid with phone",
			req:  RegisterRequest{Email: "a@b.com", Password: "x", FullName: "A B", Phone: "1"},
		},
		{
			name:    "missing email",
			req:     RegisterRequest{Password: "x", FullName: "A B"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing password",
			req:     RegisterRequest{Email: "a@b.com", FullName: "A B"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing fullName",
			req:     RegisterRequest{Email: "a@b.com", Password: "x"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "whitespace-only password",
			req:     RegisterRequest{Email: "a@b.com", Password: "   ", FullName: "A B"},
			wantErr: ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	valid := LoginRequest{Email: " a@b.com ", Password: " x "}
	require.NoError(t, valid.Validate())
	assert.Equal(t, "a@b.com", valid.Email)
	assert.Equal(t, "x", valid.Password)

	assert.ErrorIs(t, (&LoginRequest{Email: "a@b.com"}).Validate(), ErrMissingFields)
	assert.ErrorIs(t, (&LoginRequest{Password: "x"}).Validate(), ErrMissingFields)
}

func TestUser_PasswordHashNotSerialized(t *testing.T) {
	user := User{ID: 1, Email: "a@b.com", PasswordHash: "$2a$10$secret", FullName: "A B"}

	payload, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "secret")
	assert.NotContains(t, string(payload), "password")
}

func TestUser_Info(t *testing.T) {
	user := User{ID: 1, Email: "a@b.com", PasswordHash: "h", FullName: "A B", Phone: "1"}

	info := user.Info()
	assert.Equal(t, 1, info.ID)
	assert.Equal(t, "a@b.com", info.Email)
	assert.Equal(t, "A B", info.FullName)
	assert.Equal(t, "1", info.Phone)
}
