package skumapping

import (
	"context"

	"github.com/hometown-industries/warehouse-service/internal/model"
	"github.com/hometown-industries/warehouse-service/internal/skumapping/dto"
)

type UseCase interface {
	CreateMapping(ctx context.Context, input *dto.CreateMappingInput) (*model.SKUMapping, error)
	DeleteMapping(ctx context.Context, id string) error
	ListMappings(ctx context.Context, clientID string) ([]model.SKUMapping, error)

	// Resolve looks up the mapping rows for an incoming order SKU. A miss
	// records one unmapped SKU occurrence and raises an operator alert; it is
	// an expected condition and never returns an error for the miss itself.
	Resolve(ctx context.Context, input *dto.ResolveInput) (*dto.Resolution, error)

	ListUnmapped(ctx context.Context, clientID string) ([]model.UnmappedSKU, error)
	DeleteUnmappedBySKU(ctx context.Context, sku string) error
	DeleteUnmappedByID(ctx context.Context, id string) error
}
