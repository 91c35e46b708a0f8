package shipment

import (
	"context"
	"time"

	"github.com/hometown-industries/warehouse-service/internal/model"
)

// TrackingUpdate is what a ship-notify event attaches to the pending rows of an
// order: carrier (service code), tracking number, cost, and the Shipped status.
type TrackingUpdate struct {
	Carrier        string
	TrackingNumber string
	CostOfShipment float64
}

type OutboundRepository interface {
	Create(ctx context.Context, s *model.OutboundShipment) error
	// BulkInsert writes every row of a webhook invocation in one statement.
	BulkInsert(ctx context.Context, rows []model.OutboundShipment) error
	GetByID(ctx context.Context, id string) (*model.OutboundShipment, error)
	FindByNumberAndStatus(ctx context.Context, shipmentNumber, status string) ([]model.OutboundShipment, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]model.OutboundShipment, error)
	Update(ctx context.Context, s *model.OutboundShipment) error
	Delete(ctx context.Context, id string) error

	// ApplyTracking updates all Pending rows sharing the shipment number and
	// flips them to Shipped. Returns the number of rows affected.
	ApplyTracking(ctx context.Context, shipmentNumber string, u TrackingUpdate) (int64, error)
	// SetTracking is the manual variant scoped by client id; status untouched.
	SetTracking(ctx context.Context, shipmentNumber, clientID, carrier, trackingNumber string) error
}

type InboundRepository interface {
	Create(ctx context.Context, s *model.InboundShipment) error
	GetByID(ctx context.Context, id string) (*model.InboundShipment, error)
	FindAll(ctx context.Context, clientID string) ([]model.InboundShipment, error)
	Update(ctx context.Context, s *model.InboundShipment) error
	Delete(ctx context.Context, id string) error

	// ConfirmCount sets the counted quantity and flips status to Received.
	ConfirmCount(ctx context.Context, id string, countedQuantity int64) (*model.InboundShipment, error)
}
