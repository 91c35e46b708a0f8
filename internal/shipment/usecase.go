package shipment

import (
	"context"
	"time"

	"github.com/hometown-industries/warehouse-service/internal/model"
	"github.com/hometown-industries/warehouse-service/internal/shipment/dto"
)

type UseCase interface {
	CreateOutbound(ctx context.Context, input *dto.CreateOutboundInput) (*model.OutboundShipment, error)
	EditOutbound(ctx context.Context, input *dto.EditOutboundInput) (*model.OutboundShipment, error)
	DeleteOutbound(ctx context.Context, id string) error
	FetchOutboundByDateRange(ctx context.Context, start, end time.Time) ([]model.OutboundShipment, error)
	UpdateTrackingManual(ctx context.Context, input *dto.ManualTrackingInput) error
	RecordOutbound(ctx context.Context, rows []model.OutboundShipment) error
	FindPendingByNumber(ctx context.Context, shipmentNumber string) ([]model.OutboundShipment, error)
	ApplyTracking(ctx context.Context, shipmentNumber string, u TrackingUpdate) (int64, error)

	CreateInbound(ctx context.Context, input *dto.CreateInboundInput) (*model.InboundShipment, error)
	EditInbound(ctx context.Context, input *dto.EditInboundInput) (*model.InboundShipment, error)
	DeleteInbound(ctx context.Context, id string) error
	ListInbound(ctx context.Context, clientID string) ([]model.InboundShipment, error)

	// ConfirmCount flips the inbound shipment to Received and moves the counted
	// units from inventory pending to on-hand, with a changelog entry.
	ConfirmCount(ctx context.Context, input *dto.ConfirmCountInput) (*model.InboundShipment, error)
}
