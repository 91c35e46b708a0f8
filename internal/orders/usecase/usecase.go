package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hometown-industries/warehouse-service/config"
	"github.com/hometown-industries/warehouse-service/internal/inventory"
	invdto "github.com/hometown-industries/warehouse-service/internal/inventory/dto"
	"github.com/hometown-industries/warehouse-service/internal/mailer"
	"github.com/hometown-industries/warehouse-service/internal/model"
	"github.com/hometown-industries/warehouse-service/internal/orders"
	"github.com/hometown-industries/warehouse-service/internal/shipment"
	"github.com/hometown-industries/warehouse-service/internal/shipstation"
	"github.com/hometown-industries/warehouse-service/internal/skumapping"
	skudto "github.com/hometown-industries/warehouse-service/internal/skumapping/dto"
	"github.com/hometown-industries/warehouse-service/pkg/logger"
	"go.uber.org/zap"
)

// idempotencyTTL bounds how long a processed (shipment number, sku) pair is
// remembered. Webhook redeliveries land well inside this window.
const idempotencyTTL = 72 * time.Hour

type orderUseCase struct {
	platform  orders.PlatformClient
	mappings  skumapping.UseCase
	inventory inventory.UseCase
	shipments shipment.UseCase
	mail      mailer.Mailer
	cache     orders.IdempotencyStore
	routing   config.RoutingConfig
	logger    logger.Logger
}

func NewOrderUseCase(
	platform orders.PlatformClient,
	mappings skumapping.UseCase,
	inv inventory.UseCase,
	shipments shipment.UseCase,
	mail mailer.Mailer,
	cache orders.IdempotencyStore,
	routing config.RoutingConfig,
	log logger.Logger,
) orders.UseCase {
	return &orderUseCase{
		platform:  platform,
		mappings:  mappings,
		inventory: inv,
		shipments: shipments,
		mail:      mail,
		cache:     cache,
		routing:   routing,
		logger:    log,
	}
}

// storeDirectory is a per-invocation snapshot of the platform's store list.
// One fetch per webhook, never cached across invocations.
type storeDirectory map[string]string

func (uc *orderUseCase) loadStoreDirectory(ctx context.Context) storeDirectory {
	dir := storeDirectory{}
	stores, err := uc.platform.ListStores(ctx)
	if err != nil {
		// Orders can still be processed off the payload's source field.
		uc.logger.Error("failed to fetch store directory", zap.Error(err))
		return dir
	}
	for _, s := range stores {
		dir[fmt.Sprintf("%d", s.StoreID)] = s.StoreName
	}
	return dir
}

// resolveStoreName maps the order's store id through the directory, falling
// back to the payload's own source field when the id is absent or unknown.
func (dir storeDirectory) resolveStoreName(order shipstation.Order) string {
	if id := order.AdvancedOptions.StoreID.String(); id != "" {
		if name, ok := dir[id]; ok {
			return name
		}
	}
	return order.AdvancedOptions.Source
}

func (uc *orderUseCase) IngestOrders(ctx context.Context, resourceURL string) error {
	batch, err := uc.platform.FetchOrders(ctx, resourceURL)
	if err != nil {
		return fmt.Errorf("failed to fetch order data: %w", err)
	}

	dir := uc.loadStoreDirectory(ctx)

	var (
		rows    []model.OutboundShipment
		claimed []string
	)
	for _, order := range batch.Orders {
		storeName := dir.resolveStoreName(order)

		if uc.routing.IsExcludedStore(storeName) {
			uc.logger.Info("skipping order from excluded store",
				zap.String("order_number", order.OrderNumber),
				zap.String("store", storeName),
			)
			continue
		}

		clientID := uc.routing.ClientFor(storeName)
		if clientID == config.ClientNotFound {
			uc.logger.Warn("no client configured for store",
				zap.String("store", storeName),
				zap.String("order_number", order.OrderNumber),
			)
		}

		for _, item := range order.Items {
			process, mark := uc.markItemOnce(ctx, order.OrderNumber, item.SKU)
			if !process {
				uc.logger.Info("duplicate webhook delivery, skipping item",
					zap.String("order_number", order.OrderNumber),
					zap.String("sku", item.SKU),
				)
				continue
			}
			if mark != "" {
				claimed = append(claimed, mark)
			}
			uc.processItem(ctx, clientID, storeName, order, item)
			rows = append(rows, buildShipmentRow(clientID, storeName, order, item))
		}
	}

	if err := uc.shipments.RecordOutbound(ctx, rows); err != nil {
		// The marks this invocation claimed must not outlive a failed insert:
		// the sender retries on our 5xx and a live mark would skip every item,
		// silently dropping the shipment rows.
		uc.releaseMarks(ctx, claimed)
		return fmt.Errorf("failed to insert shipment rows: %w", err)
	}
	return nil
}

// markItemOnce claims the (shipment number, sku) idempotency key. It returns
// whether the item should be processed and, when a key was actually claimed,
// the key so it can be released if the invocation fails later. When redis is
// unreachable the item is processed anyway: availability over dedup.
func (uc *orderUseCase) markItemOnce(ctx context.Context, orderNumber, sku string) (process bool, claimedKey string) {
	if uc.cache == nil {
		return true, ""
	}
	key := fmt.Sprintf("webhook:order:%s:%s", orderNumber, sku)
	first, err := uc.cache.MarkOnce(ctx, key, idempotencyTTL)
	if err != nil {
		uc.logger.Error("idempotency check failed, processing item anyway",
			zap.String("order_number", orderNumber),
			zap.String("sku", sku),
			zap.Error(err),
		)
		return true, ""
	}
	if !first {
		return false, ""
	}
	return true, key
}

func (uc *orderUseCase) releaseMarks(ctx context.Context, keys []string) {
	if uc.cache == nil || len(keys) == 0 {
		return
	}
	if err := uc.cache.Unmark(ctx, keys...); err != nil {
		uc.logger.Error("failed to release idempotency marks after insert failure",
			zap.Int("keys", len(keys)),
			zap.Error(err),
		)
	}
}

// processItem resolves the SKU mapping and applies the inventory deductions.
// Every failure in here is logged and swallowed: the shipment row is built and
// the rest of the batch keeps going regardless.
func (uc *orderUseCase) processItem(ctx context.Context, clientID, storeName string, order shipstation.Order, item shipstation.OrderItem) {
	qty := item.Quantity
	if qty <= 0 {
		qty = 1
	}

	imageURL := ""
	if item.ImageURL != nil {
		imageURL = *item.ImageURL
	}

	resolution, err := uc.mappings.Resolve(ctx, &skudto.ResolveInput{
		SKU:             item.SKU,
		ClientID:        clientID,
		OrderedQuantity: qty,
		ShipmentNumber:  order.OrderNumber,
		StoreName:       storeName,
		ProductName:     item.Name,
		ProductImageURL: imageURL,
	})
	if err != nil {
		uc.logger.Error("sku mapping lookup failed, skipping deduction",
			zap.String("sku", item.SKU),
			zap.String("order_number", order.OrderNumber),
			zap.Error(err),
		)
		return
	}
	if !resolution.Mapped {
		return
	}

	// Each mapping row is deducted independently; one failing does not stop
	// the others.
	for _, d := range resolution.Deductions {
		_, err := uc.inventory.Deduct(ctx, &invdto.DeductionInput{
			ProductID:      d.ProductID,
			Quantity:       d.Quantity,
			ClientID:       clientID,
			ShipmentNumber: order.OrderNumber,
			Source:         storeName,
			SKU:            item.SKU,
		})
		if err != nil {
			uc.logger.Error("inventory deduction failed",
				zap.String("product_id", d.ProductID),
				zap.String("sku", item.SKU),
				zap.String("order_number", order.OrderNumber),
				zap.Error(err),
			)
		}
	}
}

// buildShipmentRow makes the outbound row for one line item. Rows are built
// whether or not the SKU was mapped: unmapped SKUs still need to ship.
func buildShipmentRow(clientID, storeName string, order shipstation.Order, item shipstation.OrderItem) model.OutboundShipment {
	qty := item.Quantity
	if qty <= 0 {
		qty = 1
	}

	row := model.OutboundShipment{
		ID:               uuid.New().String(),
		CreatedAt:        time.Now(),
		ClientID:         clientID,
		ShipmentNumber:   order.OrderNumber,
		Carrier:          order.CarrierCode,
		TrackingNumber:   order.TrackingNumber,
		PONumber:         &order.OrderNumber,
		Destination:      optional(storeName),
		ShipmentType:     model.ShipmentTypeOutbound,
		Status:           model.StatusPending,
		DateOfLastChange: optional(order.OrderDate),
		ProductTitle:     optional(item.Name),
		SKU:              optional(item.SKU),
		ProductImageURL:  item.ImageURL,
		Quantity:         qty,
		BuyerEmail:       order.CustomerEmail,
		CostOfShipment:   order.ShippingAmount,
		Notes:            order.CustomerNotes,
	}

	if ship := order.ShipTo; ship != nil {
		row.BuyerName = optional(ship.Name)
		row.RecipientName = optional(ship.Name)
		row.RecipientCompany = optional(ship.Company)
		row.RecipientAddressLine1 = optional(ship.Street1)
		row.RecipientCity = optional(ship.City)
		row.RecipientState = optional(ship.State)
		row.RecipientPostalCode = optional(ship.PostalCode)
		row.RecipientCountry = optional(ship.Country)
	}
	return row
}

func (uc *orderUseCase) ReconcileTracking(ctx context.Context, resourceURL string) error {
	batch, err := uc.platform.FetchShipments(ctx, resourceURL)
	if err != nil {
		return fmt.Errorf("failed to fetch shipment data: %w", err)
	}

	for _, sh := range batch.Shipments {
		pending, err := uc.shipments.FindPendingByNumber(ctx, sh.OrderNumber)
		if err != nil {
			uc.logger.Error("failed to look up pending shipments",
				zap.String("order_number", sh.OrderNumber),
				zap.Error(err),
			)
			continue
		}
		if len(pending) == 0 {
			uc.logger.Warn("no pending shipment rows for ship-notify event",
				zap.String("order_number", sh.OrderNumber),
			)
			continue
		}

		clientID := pending[0].ClientID

		// serviceCode is the human-meaningful carrier label on these events.
		carrier := sh.ServiceCode
		if carrier == "" {
			carrier = sh.CarrierCode
		}

		updated, err := uc.shipments.ApplyTracking(ctx, sh.OrderNumber, shipment.TrackingUpdate{
			Carrier:        carrier,
			TrackingNumber: sh.TrackingNumber,
			CostOfShipment: sh.ShipmentCost,
		})
		if err != nil {
			uc.logger.Error("failed to apply tracking update",
				zap.String("order_number", sh.OrderNumber),
				zap.Error(err),
			)
			continue
		}

		uc.logger.Info("tracking applied to outbound shipments",
			zap.String("order_number", sh.OrderNumber),
			zap.Int64("rows", updated),
			zap.String("carrier", carrier),
			zap.String("tracking_number", sh.TrackingNumber),
		)

		uc.notifyTracking(ctx, clientID, sh, carrier)
	}
	return nil
}

func (uc *orderUseCase) notifyTracking(ctx context.Context, clientID string, sh shipstation.Shipment, carrier string) {
	if uc.mail == nil || clientID == "" || clientID == config.ClientNotFound {
		return
	}

	recipientName := ""
	if sh.ShipTo != nil {
		recipientName = sh.ShipTo.Name
	}

	to := []string{clientID}
	if uc.routing.OpsEmail != "" && uc.routing.OpsEmail != clientID {
		to = append(to, uc.routing.OpsEmail)
	}

	msg := mailer.Message{
		To:      to,
		Subject: fmt.Sprintf("Tracking has been updated for Shipment Number: %s", sh.OrderNumber),
		HTML: fmt.Sprintf(
			`<p>Tracking has been updated for Shipment Number: <strong>%s</strong></p>
			<ul>
				<li><strong>Carrier:</strong> %s</li>
				<li><strong>Tracking Number:</strong> %s</li>
				<li><strong>Customer Name:</strong> %s</li>
			</ul>`,
			sh.OrderNumber, carrier, sh.TrackingNumber, recipientName),
	}
	if err := uc.mail.Send(ctx, msg); err != nil {
		uc.logger.Error("failed to send tracking notification",
			zap.String("order_number", sh.OrderNumber),
			zap.Error(err),
		)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
