package inventory

import (
	"context"

	"github.com/hometown-industries/warehouse-service/internal/model"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*model.Inventory, error)
	GetByClientAndSKU(ctx context.Context, clientID, sku string) (*model.Inventory, error)
	FindAll(ctx context.Context, clientID string) ([]model.Inventory, error)
	Create(ctx context.Context, inv *model.Inventory) error
	Update(ctx context.Context, inv *model.Inventory) error
	Delete(ctx context.Context, id string) error

	// ApplyChangeWithLog persists the mutated row and its changelog entry in a
	// single transaction.
	ApplyChangeWithLog(ctx context.Context, inv *model.Inventory, entry *model.ChangelogEntry) error
	ListChangelog(ctx context.Context, clientID string, limit, offset int) ([]model.ChangelogEntry, error)
}
