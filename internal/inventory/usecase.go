package inventory

import (
	"context"
	"time"

	"github.com/hometown-industries/warehouse-service/internal/inventory/dto"
	"github.com/hometown-industries/warehouse-service/internal/model"
)

// Locker serializes inventory mutations per product id.
type Locker interface {
	AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, value string) error
}

type UseCase interface {
	CreateInventory(ctx context.Context, input *dto.CreateInventoryInput) (*model.Inventory, error)
	EditInventory(ctx context.Context, input *dto.EditInventoryInput) (*model.Inventory, error)
	DeleteInventory(ctx context.Context, id string) error
	ListInventory(ctx context.Context, clientID string) ([]model.Inventory, error)

	// Deduct applies a sales-driven quantity deduction to one product and writes
	// the changelog entry. A missing product is reported, not an error.
	Deduct(ctx context.Context, input *dto.DeductionInput) (*dto.DeductionResult, error)

	// Receive confirms an inbound count: pending goes down, quantity goes up,
	// one changelog entry records both movements.
	Receive(ctx context.Context, input *dto.ReceiveInput) (*model.Inventory, error)

	ListChangelog(ctx context.Context, clientID string, limit, offset int) ([]model.ChangelogEntry, error)
}
