package skumapping

import (
	"context"

	"github.com/hometown-industries/warehouse-service/internal/model"
)

type Repository interface {
	FindBySKU(ctx context.Context, sku string) ([]model.SKUMapping, error)
	FindAll(ctx context.Context, clientID string) ([]model.SKUMapping, error)
	Create(ctx context.Context, m *model.SKUMapping) error
	Delete(ctx context.Context, id string) error

	CreateUnmapped(ctx context.Context, u *model.UnmappedSKU) error
	ListUnmapped(ctx context.Context, clientID string) ([]model.UnmappedSKU, error)
	DeleteUnmappedBySKU(ctx context.Context, sku string) error
	DeleteUnmappedByID(ctx context.Context, id string) error
}
