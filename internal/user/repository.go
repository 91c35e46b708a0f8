package user

import (
	"context"

	"github.com/hometown-industries/warehouse-service/internal/model"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByCompanyName(ctx context.Context, companyName string) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	FindClients(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, u *model.User) error
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id string) error
}
