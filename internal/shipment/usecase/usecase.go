package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hometown-industries/warehouse-service/internal/inventory"
	invdto "github.com/hometown-industries/warehouse-service/internal/inventory/dto"
	"github.com/hometown-industries/warehouse-service/internal/model"
	"github.com/hometown-industries/warehouse-service/internal/shipment"
	"github.com/hometown-industries/warehouse-service/internal/shipment/dto"
	"github.com/hometown-industries/warehouse-service/pkg/logger"
	"go.uber.org/zap"
)

type shipmentUseCase struct {
	outbound  shipment.OutboundRepository
	inbound   shipment.InboundRepository
	inventory inventory.UseCase
	logger    logger.Logger
}

func NewShipmentUseCase(outbound shipment.OutboundRepository, inbound shipment.InboundRepository, inv inventory.UseCase, log logger.Logger) shipment.UseCase {
	return &shipmentUseCase{
		outbound:  outbound,
		inbound:   inbound,
		inventory: inv,
		logger:    log,
	}
}

func (uc *shipmentUseCase) CreateOutbound(ctx context.Context, input *dto.CreateOutboundInput) (*model.OutboundShipment, error) {
	status := input.Status
	if status == "" {
		status = model.StatusPending
	}
	s := &model.OutboundShipment{
		ID:                     uuid.New().String(),
		CreatedAt:              time.Now(),
		ClientID:               input.ClientID,
		ShipmentNumber:         input.ShipmentNumber,
		Carrier:                optional(input.Carrier),
		TrackingNumber:         optional(input.TrackingNumber),
		PONumber:               optional(input.PONumber),
		Destination:            optional(input.Destination),
		RequiresAmazonLabeling: optional(input.RequiresAmazonLabeling),
		ShipmentType:           model.ShipmentTypeOutbound,
		Status:                 status,
		DateOfLastChange:       optional(input.DateOfLastChange),
		Asin:                   optional(input.Asin),
		ProductTitle:           optional(input.ProductTitle),
		SKU:                    optional(input.SKU),
		ProductImageURL:        optional(input.ProductImageURL),
		Quantity:               input.Quantity,
		BuyerName:              optional(input.BuyerName),
		BuyerEmail:             optional(input.BuyerEmail),
		RecipientName:          optional(input.RecipientName),
		RecipientCompany:       optional(input.RecipientCompany),
		RecipientAddressLine1:  optional(input.RecipientAddressLine1),
		RecipientCity:          optional(input.RecipientCity),
		RecipientState:         optional(input.RecipientState),
		RecipientPostalCode:    optional(input.RecipientPostalCode),
		RecipientCountry:       optional(input.RecipientCountry),
		LotNumber:              optional(input.LotNumber),
		CostOfShipment:         input.CostOfShipment,
		Notes:                  optional(input.Notes),
	}
	if err := uc.outbound.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *shipmentUseCase) EditOutbound(ctx context.Context, input *dto.EditOutboundInput) (*model.OutboundShipment, error) {
	s, err := uc.outbound.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("outbound shipment %s not found", input.ID)
	}

	s.ClientID = input.ClientID
	s.ShipmentNumber = input.ShipmentNumber
	s.Carrier = optional(input.Carrier)
	s.TrackingNumber = optional(input.TrackingNumber)
	s.PONumber = optional(input.PONumber)
	s.Destination = optional(input.Destination)
	s.RequiresAmazonLabeling = optional(input.RequiresAmazonLabeling)
	if input.Status != "" {
		s.Status = input.Status
	}
	s.DateOfLastChange = optional(input.DateOfLastChange)
	s.Asin = optional(input.Asin)
	s.ProductTitle = optional(input.ProductTitle)
	s.SKU = optional(input.SKU)
	s.ProductImageURL = optional(input.ProductImageURL)
	s.Quantity = input.Quantity
	s.BuyerName = optional(input.BuyerName)
	s.BuyerEmail = optional(input.BuyerEmail)
	s.RecipientName = optional(input.RecipientName)
	s.RecipientCompany = optional(input.RecipientCompany)
	s.RecipientAddressLine1 = optional(input.RecipientAddressLine1)
	s.RecipientCity = optional(input.RecipientCity)
	s.RecipientState = optional(input.RecipientState)
	s.RecipientPostalCode = optional(input.RecipientPostalCode)
	s.RecipientCountry = optional(input.RecipientCountry)
	s.LotNumber = optional(input.LotNumber)
	s.CostOfShipment = input.CostOfShipment
	s.Notes = optional(input.Notes)

	if err := uc.outbound.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *shipmentUseCase) DeleteOutbound(ctx context.Context, id string) error {
	return uc.outbound.Delete(ctx, id)
}

// FetchOutboundByDateRange returns shipments created within [start, end]. The
// end date is extended to the start of the following day so the whole last day
// is included.
func (uc *shipmentUseCase) FetchOutboundByDateRange(ctx context.Context, start, end time.Time) ([]model.OutboundShipment, error) {
	nextDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return uc.outbound.FindByDateRange(ctx, start, nextDay)
}

func (uc *shipmentUseCase) UpdateTrackingManual(ctx context.Context, input *dto.ManualTrackingInput) error {
	return uc.outbound.SetTracking(ctx, input.ShipmentNumber, input.ClientID, input.Carrier, input.TrackingNumber)
}

func (uc *shipmentUseCase) RecordOutbound(ctx context.Context, rows []model.OutboundShipment) error {
	return uc.outbound.BulkInsert(ctx, rows)
}

func (uc *shipmentUseCase) FindPendingByNumber(ctx context.Context, shipmentNumber string) ([]model.OutboundShipment, error) {
	return uc.outbound.FindByNumberAndStatus(ctx, shipmentNumber, model.StatusPending)
}

func (uc *shipmentUseCase) ApplyTracking(ctx context.Context, shipmentNumber string, u shipment.TrackingUpdate) (int64, error) {
	return uc.outbound.ApplyTracking(ctx, shipmentNumber, u)
}

func (uc *shipmentUseCase) CreateInbound(ctx context.Context, input *dto.CreateInboundInput) (*model.InboundShipment, error) {
	status := input.Status
	if status == "" {
		status = model.StatusPending
	}
	s := &model.InboundShipment{
		ID:                  uuid.New().String(),
		CreatedAt:           time.Now(),
		ClientID:            input.ClientID,
		ShipmentNumber:      input.ShipmentNumber,
		BOLNumber:           optional(input.BOLNumber),
		Carrier:             optional(input.Carrier),
		TrackingNumber:      optional(input.TrackingNumber),
		Destination:         optional(input.Destination),
		ShipmentType:        model.ShipmentTypeInbound,
		Status:              status,
		DateOfLastChange:    optional(input.DateOfLastChange),
		Asin:                optional(input.Asin),
		ProductTitle:        optional(input.ProductTitle),
		SKU:                 optional(input.SKU),
		ProductImageURL:     optional(input.ProductImageURL),
		Quantity:            input.Quantity,
		CountedQuantity:     input.CountedQuantity,
		WarehouseAddress:    optional(input.WarehouseAddress),
		WarehouseCity:       optional(input.WarehouseCity),
		WarehouseState:      optional(input.WarehouseState),
		WarehousePostalCode: optional(input.WarehousePostalCode),
	}
	if err := uc.inbound.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *shipmentUseCase) EditInbound(ctx context.Context, input *dto.EditInboundInput) (*model.InboundShipment, error) {
	s, err := uc.inbound.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("inbound shipment %s not found", input.ID)
	}

	s.ClientID = input.ClientID
	s.ShipmentNumber = input.ShipmentNumber
	s.BOLNumber = optional(input.BOLNumber)
	s.Carrier = optional(input.Carrier)
	s.TrackingNumber = optional(input.TrackingNumber)
	s.Destination = optional(input.Destination)
	if input.Status != "" {
		s.Status = input.Status
	}
	s.DateOfLastChange = optional(input.DateOfLastChange)
	s.Asin = optional(input.Asin)
	s.ProductTitle = optional(input.ProductTitle)
	s.SKU = optional(input.SKU)
	s.ProductImageURL = optional(input.ProductImageURL)
	s.Quantity = input.Quantity
	s.CountedQuantity = input.CountedQuantity
	s.WarehouseAddress = optional(input.WarehouseAddress)
	s.WarehouseCity = optional(input.WarehouseCity)
	s.WarehouseState = optional(input.WarehouseState)
	s.WarehousePostalCode = optional(input.WarehousePostalCode)

	if err := uc.inbound.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *shipmentUseCase) DeleteInbound(ctx context.Context, id string) error {
	return uc.inbound.Delete(ctx, id)
}

func (uc *shipmentUseCase) ListInbound(ctx context.Context, clientID string) ([]model.InboundShipment, error) {
	return uc.inbound.FindAll(ctx, clientID)
}

func (uc *shipmentUseCase) ConfirmCount(ctx context.Context, input *dto.ConfirmCountInput) (*model.InboundShipment, error) {
	s, err := uc.inbound.ConfirmCount(ctx, input.ID, input.CountedQuantity)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("inbound shipment %s not found", input.ID)
	}

	if s.SKU == nil || *s.SKU == "" {
		uc.logger.Warn("inbound shipment has no sku, inventory not updated",
			zap.String("shipment_id", s.ID),
			zap.String("shipment_number", s.ShipmentNumber),
		)
		return s, nil
	}

	// Inventory failure does not undo the Received flip; the changelog and
	// logs are the operator's trail for reconciling by hand.
	_, err = uc.inventory.Receive(ctx, &invdto.ReceiveInput{
		ClientID:        s.ClientID,
		SKU:             *s.SKU,
		ShipmentNumber:  s.ShipmentNumber,
		CountedQuantity: input.CountedQuantity,
	})
	if err != nil {
		uc.logger.Error("failed to move received count into inventory",
			zap.String("shipment_id", s.ID),
			zap.String("sku", *s.SKU),
			zap.Error(err),
		)
	}
	return s, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
