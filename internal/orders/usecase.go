package orders

import (
	"context"
	"time"

	"github.com/hometown-industries/warehouse-service/internal/shipstation"
)

// IdempotencyStore remembers which (shipment number, sku) items a webhook
// delivery has already processed. Marks claimed for a failed invocation are
// released with Unmark so the redelivery is not skipped.
type IdempotencyStore interface {
	MarkOnce(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unmark(ctx context.Context, keys ...string) error
}

// PlatformClient is the slice of the shipping platform the pipelines consume.
type PlatformClient interface {
	ListStores(ctx context.Context) ([]shipstation.Store, error)
	FetchOrders(ctx context.Context, resourceURL string) (*shipstation.OrderBatch, error)
	FetchShipments(ctx context.Context, resourceURL string) (*shipstation.ShipmentBatch, error)
}

type UseCase interface {
	// IngestOrders runs the order-fulfillment reconciliation for a new-order
	// webhook: fetch the batch behind resourceURL, resolve stores and clients,
	// deduct inventory per SKU mapping, and record one outbound shipment row
	// per line item.
	IngestOrders(ctx context.Context, resourceURL string) error

	// ReconcileTracking handles a ship-notify webhook: attach carrier, tracking
	// and cost to the pending rows of each order and flip them to Shipped.
	ReconcileTracking(ctx context.Context, resourceURL string) error
}
