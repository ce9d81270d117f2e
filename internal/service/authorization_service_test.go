package service_test

import (
	"context"
	"errors"
	"event-tracker-auth/internal/model"
	"event-tracker-auth/internal/ports"
	"event-tracker-auth/internal/service"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockOwnerLookup struct {
	mock.Mock
}

func (m *MockOwnerLookup) FindOwner(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func TestAuthorize_AllCases(t *testing.T) {
	lookupErr := errors.New("db down")

	tests := []struct {
		name         string
		userID       string
		resourceType model.ResourceType
		owner        string
		lookupErr    error
		wantErr      error
	}{
		{name: "owner", userID: "u1", resourceType: model.ResourceEvent, owner: "u1"},
		{name: "other user", userID: "u2", resourceType: model.ResourceEvent, owner: "u1", wantErr: model.ErrForbidden},
		{name: "missing resource", userID: "u1", resourceType: model.ResourceEvent, owner: "", wantErr: model.ErrResourceNotFound},
		{name: "anonymous", userID: "", resourceType: model.ResourceEvent, owner: "u1", wantErr: model.ErrForbidden},
		{name: "unknown type", userID: "u1", resourceType: "calendar", owner: "u1", wantErr: model.ErrForbidden},
		{name: "lookup error", userID: "u1", resourceType: model.ResourceEvent, lookupErr: lookupErr, wantErr: lookupErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			lookup := new(MockOwnerLookup)
			lookup.On("FindOwner", ctx, "e1").Return(tt.owner, tt.lookupErr).Maybe()
			authz := service.NewAuthorizationService(map[model.ResourceType]ports.OwnerLookup{
				model.ResourceEvent: lookup,
			})

			err := authz.Authorize(ctx, tt.userID, tt.resourceType, "e1")

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
