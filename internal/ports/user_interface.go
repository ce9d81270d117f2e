package ports

import (
	"context"
	"event-tracker-auth/internal/model"
)

// UserRepository : FindBy* возвращают (nil, nil), если пользователя нет
type UserRepository interface {
	FindByExternalID(ctx context.Context, googleID string) (*model.User, error)
	FindByID(ctx context.Context, uuid string) (*model.User, error)
	Create(ctx context.Context, user *model.User) (*model.User, error)
}
