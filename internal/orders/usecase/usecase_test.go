package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hometown-industries/warehouse-service/config"
	invdto "github.com/hometown-industries/warehouse-service/internal/inventory/dto"
	"github.com/hometown-industries/warehouse-service/internal/mailer"
	"github.com/hometown-industries/warehouse-service/internal/model"
	"github.com/hometown-industries/warehouse-service/internal/shipment"
	shipdto "github.com/hometown-industries/warehouse-service/internal/shipment/dto"
	"github.com/hometown-industries/warehouse-service/internal/shipstation"
	skudto "github.com/hometown-industries/warehouse-service/internal/skumapping/dto"
	"github.com/hometown-industries/warehouse-service/pkg/logger"
)

type fakePlatform struct {
	stores    []shipstation.Store
	storesErr error
	orders    *shipstation.OrderBatch
	ordersErr error
	shipments *shipstation.ShipmentBatch
}

func (f *fakePlatform) ListStores(ctx context.Context) ([]shipstation.Store, error) {
	return f.stores, f.storesErr
}

func (f *fakePlatform) FetchOrders(ctx context.Context, resourceURL string) (*shipstation.OrderBatch, error) {
	return f.orders, f.ordersErr
}

func (f *fakePlatform) FetchShipments(ctx context.Context, resourceURL string) (*shipstation.ShipmentBatch, error) {
	return f.shipments, nil
}

type fakeMappings struct {
	resolutions map[string]*skudto.Resolution
	resolved    []skudto.ResolveInput
}

func (f *fakeMappings) Resolve(ctx context.Context, input *skudto.ResolveInput) (*skudto.Resolution, error) {
	f.resolved = append(f.resolved, *input)
	if r, ok := f.resolutions[input.SKU]; ok {
		return r, nil
	}
	return &skudto.Resolution{Mapped: false}, nil
}

func (f *fakeMappings) CreateMapping(ctx context.Context, input *skudto.CreateMappingInput) (*model.SKUMapping, error) {
	return nil, nil
}
func (f *fakeMappings) DeleteMapping(ctx context.Context, id string) error { return nil }
func (f *fakeMappings) ListMappings(ctx context.Context, clientID string) ([]model.SKUMapping, error) {
	return nil, nil
}
func (f *fakeMappings) ListUnmapped(ctx context.Context, clientID string) ([]model.UnmappedSKU, error) {
	return nil, nil
}
func (f *fakeMappings) DeleteUnmappedBySKU(ctx context.Context, sku string) error { return nil }
func (f *fakeMappings) DeleteUnmappedByID(ctx context.Context, id string) error   { return nil }

type fakeInventory struct {
	deductions []invdto.DeductionInput
	deductErr  error
}

func (f *fakeInventory) Deduct(ctx context.Context, input *invdto.DeductionInput) (*invdto.DeductionResult, error) {
	f.deductions = append(f.deductions, *input)
	if f.deductErr != nil {
		return nil, f.deductErr
	}
	return &invdto.DeductionResult{Found: true}, nil
}

func (f *fakeInventory) CreateInventory(ctx context.Context, input *invdto.CreateInventoryInput) (*model.Inventory, error) {
	return nil, nil
}
func (f *fakeInventory) EditInventory(ctx context.Context, input *invdto.EditInventoryInput) (*model.Inventory, error) {
	return nil, nil
}
func (f *fakeInventory) DeleteInventory(ctx context.Context, id string) error { return nil }
func (f *fakeInventory) ListInventory(ctx context.Context, clientID string) ([]model.Inventory, error) {
	return nil, nil
}
func (f *fakeInventory) Receive(ctx context.Context, input *invdto.ReceiveInput) (*model.Inventory, error) {
	return nil, nil
}
func (f *fakeInventory) ListChangelog(ctx context.Context, clientID string, limit, offset int) ([]model.ChangelogEntry, error) {
	return nil, nil
}

type fakeShipments struct {
	recorded  []model.OutboundShipment
	recordErr error
	pending   map[string][]model.OutboundShipment
	tracked   map[string]shipment.TrackingUpdate
}

func (f *fakeShipments) RecordOutbound(ctx context.Context, rows []model.OutboundShipment) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.recorded = append(f.recorded, rows...)
	return nil
}

func (f *fakeShipments) FindPendingByNumber(ctx context.Context, shipmentNumber string) ([]model.OutboundShipment, error) {
	return f.pending[shipmentNumber], nil
}

func (f *fakeShipments) ApplyTracking(ctx context.Context, shipmentNumber string, u shipment.TrackingUpdate) (int64, error) {
	if f.tracked == nil {
		f.tracked = map[string]shipment.TrackingUpdate{}
	}
	f.tracked[shipmentNumber] = u
	return int64(len(f.pending[shipmentNumber])), nil
}

func (f *fakeShipments) CreateOutbound(ctx context.Context, input *shipdto.CreateOutboundInput) (*model.OutboundShipment, error) {
	return nil, nil
}
func (f *fakeShipments) EditOutbound(ctx context.Context, input *shipdto.EditOutboundInput) (*model.OutboundShipment, error) {
	return nil, nil
}
func (f *fakeShipments) DeleteOutbound(ctx context.Context, id string) error { return nil }
func (f *fakeShipments) FetchOutboundByDateRange(ctx context.Context, start, end time.Time) ([]model.OutboundShipment, error) {
	return nil, nil
}
func (f *fakeShipments) UpdateTrackingManual(ctx context.Context, input *shipdto.ManualTrackingInput) error {
	return nil
}
func (f *fakeShipments) CreateInbound(ctx context.Context, input *shipdto.CreateInboundInput) (*model.InboundShipment, error) {
	return nil, nil
}
func (f *fakeShipments) EditInbound(ctx context.Context, input *shipdto.EditInboundInput) (*model.InboundShipment, error) {
	return nil, nil
}
func (f *fakeShipments) DeleteInbound(ctx context.Context, id string) error { return nil }
func (f *fakeShipments) ListInbound(ctx context.Context, clientID string) ([]model.InboundShipment, error) {
	return nil, nil
}
func (f *fakeShipments) ConfirmCount(ctx context.Context, input *shipdto.ConfirmCountInput) (*model.InboundShipment, error) {
	return nil, nil
}

type fakeIdempotency struct {
	marked   map[string]bool
	markErr  error
	unmarked []string
}

func (f *fakeIdempotency) MarkOnce(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if f.markErr != nil {
		return false, f.markErr
	}
	if f.marked == nil {
		f.marked = map[string]bool{}
	}
	if f.marked[key] {
		return false, nil
	}
	f.marked[key] = true
	return true, nil
}

func (f *fakeIdempotency) Unmark(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.marked, key)
	}
	f.unmarked = append(f.unmarked, keys...)
	return nil
}

type fakeMailer struct {
	sent []mailer.Message
}

func (f *fakeMailer) Send(ctx context.Context, msg mailer.Message) error {
	f.sent = append(f.sent, msg)
	return nil
}

func strptr(s string) *string { return &s }

func order(number, storeID, source string, items ...shipstation.OrderItem) shipstation.Order {
	return shipstation.Order{
		OrderNumber: number,
		OrderDate:   "2026-08-14T09:30:00",
		ShipTo: &shipstation.Address{
			Name:       "Jordan Avery",
			Street1:    "400 Commerce Dr",
			City:       "Dayton",
			State:      "OH",
			PostalCode: "45402",
			Country:    "US",
		},
		Items: items,
		AdvancedOptions: shipstation.AdvancedOptions{
			StoreID: json.Number(storeID),
			Source:  source,
		},
	}
}

func newTestUseCase(platform *fakePlatform, mappings *fakeMappings, inv *fakeInventory, ship *fakeShipments, mail *fakeMailer) *orderUseCase {
	routing := config.RoutingConfig{
		Clients: map[string]string{
			"Hometown Amazon":  "orders@hometownamazon.com",
			"Hometown Walmart": "orders@hometownwalmart.com",
		},
		ExcludedStores: []string{"Manual Orders"},
		OpsEmail:       "ops@hometown-industries.com",
	}
	uc := NewOrderUseCase(platform, mappings, inv, ship, mail, nil, routing, logger.NewNop())
	return uc.(*orderUseCase)
}

func TestIngestOrdersMappedSKU(t *testing.T) {
	platform := &fakePlatform{
		stores: []shipstation.Store{{StoreID: 5252266, StoreName: "Hometown Amazon"}},
		orders: &shipstation.OrderBatch{Orders: []shipstation.Order{
			order("ORD-1", "5252266", "amazon",
				shipstation.OrderItem{SKU: "AMZ-CANDLE-3PK", Name: "Candle 3 Pack", Quantity: 2},
			),
		}},
	}
	mappings := &fakeMappings{resolutions: map[string]*skudto.Resolution{
		"AMZ-CANDLE-3PK": {
			Mapped:     true,
			Deductions: []skudto.ProductDeduction{{ProductID: "prod-1", Quantity: 6}},
			Total:      6,
		},
	}}
	inv := &fakeInventory{}
	ship := &fakeShipments{}

	uc := newTestUseCase(platform, mappings, inv, ship, &fakeMailer{})
	if err := uc.IngestOrders(context.Background(), "https://api.example.com/orders/1"); err != nil {
		t.Fatalf("IngestOrders: %v", err)
	}

	if len(inv.deductions) != 1 {
		t.Fatalf("expected 1 deduction, got %d", len(inv.deductions))
	}
	d := inv.deductions[0]
	if d.ProductID != "prod-1" || d.Quantity != 6 {
		t.Errorf("deduction = %+v, want product prod-1 qty 6", d)
	}
	if d.ClientID != "orders@hometownamazon.com" {
		t.Errorf("deduction client = %q", d.ClientID)
	}
	if d.Source != "Hometown Amazon" {
		t.Errorf("deduction source = %q", d.Source)
	}

	if len(ship.recorded) != 1 {
		t.Fatalf("expected 1 shipment row, got %d", len(ship.recorded))
	}
	row := ship.recorded[0]
	if row.ShipmentNumber != "ORD-1" || row.Status != model.StatusPending {
		t.Errorf("row = number %q status %q", row.ShipmentNumber, row.Status)
	}
	if row.Quantity != 2 {
		t.Errorf("row quantity = %d, want ordered quantity 2", row.Quantity)
	}
	if row.RecipientCity == nil || *row.RecipientCity != "Dayton" {
		t.Errorf("recipient city not carried onto row")
	}
}

func TestIngestOrdersUnmappedSKUStillShips(t *testing.T) {
	platform := &fakePlatform{
		stores: []shipstation.Store{{StoreID: 5252266, StoreName: "Hometown Amazon"}},
		orders: &shipstation.OrderBatch{Orders: []shipstation.Order{
			order("ORD-2", "5252266", "amazon",
				shipstation.OrderItem{SKU: "MYSTERY-SKU", Name: "Mystery Item", Quantity: 1},
			),
		}},
	}
	mappings := &fakeMappings{}
	inv := &fakeInventory{}
	ship := &fakeShipments{}

	uc := newTestUseCase(platform, mappings, inv, ship, &fakeMailer{})
	if err := uc.IngestOrders(context.Background(), "url"); err != nil {
		t.Fatalf("IngestOrders: %v", err)
	}

	if len(inv.deductions) != 0 {
		t.Errorf("unmapped sku must not deduct inventory, got %d deductions", len(inv.deductions))
	}
	if len(ship.recorded) != 1 {
		t.Fatalf("unmapped sku must still produce a shipment row, got %d", len(ship.recorded))
	}
	if len(mappings.resolved) != 1 || mappings.resolved[0].SKU != "MYSTERY-SKU" {
		t.Errorf("resolver not consulted for the sku")
	}
}

func TestIngestOrdersExcludedStoreSkipped(t *testing.T) {
	platform := &fakePlatform{
		stores: []shipstation.Store{{StoreID: 99, StoreName: "Manual Orders"}},
		orders: &shipstation.OrderBatch{Orders: []shipstation.Order{
			order("ORD-3", "99", "manual",
				shipstation.OrderItem{SKU: "ANY", Name: "Any", Quantity: 1},
			),
		}},
	}
	mappings := &fakeMappings{}
	ship := &fakeShipments{}

	uc := newTestUseCase(platform, mappings, &fakeInventory{}, ship, &fakeMailer{})
	if err := uc.IngestOrders(context.Background(), "url"); err != nil {
		t.Fatalf("IngestOrders: %v", err)
	}

	if len(ship.recorded) != 0 {
		t.Errorf("excluded store produced %d shipment rows", len(ship.recorded))
	}
	if len(mappings.resolved) != 0 {
		t.Errorf("excluded store consulted the sku resolver")
	}
}

func TestIngestOrdersUnknownStoreFallsBackToSource(t *testing.T) {
	// Directory fetch fails entirely; routing still works off the payload's
	// source field when it matches a configured store name.
	platform := &fakePlatform{
		storesErr: errors.New("boom"),
		orders: &shipstation.OrderBatch{Orders: []shipstation.Order{
			order("ORD-4", "12345", "Hometown Walmart",
				shipstation.OrderItem{SKU: "WM-1", Name: "Widget", Quantity: 1},
			),
		}},
	}
	ship := &fakeShipments{}

	uc := newTestUseCase(platform, &fakeMappings{}, &fakeInventory{}, ship, &fakeMailer{})
	if err := uc.IngestOrders(context.Background(), "url"); err != nil {
		t.Fatalf("IngestOrders: %v", err)
	}

	if len(ship.recorded) != 1 {
		t.Fatalf("expected 1 row, got %d", len(ship.recorded))
	}
	if ship.recorded[0].ClientID != "orders@hometownwalmart.com" {
		t.Errorf("client = %q, want routing via source fallback", ship.recorded[0].ClientID)
	}
}

func TestIngestOrdersUnroutedStoreKeepsSentinel(t *testing.T) {
	platform := &fakePlatform{
		stores: []shipstation.Store{{StoreID: 777, StoreName: "Pop-up Store"}},
		orders: &shipstation.OrderBatch{Orders: []shipstation.Order{
			order("ORD-5", "777", "popup",
				shipstation.OrderItem{SKU: "POP-1", Name: "Popper", Quantity: 3},
			),
		}},
	}
	ship := &fakeShipments{}

	uc := newTestUseCase(platform, &fakeMappings{}, &fakeInventory{}, ship, &fakeMailer{})
	if err := uc.IngestOrders(context.Background(), "url"); err != nil {
		t.Fatalf("IngestOrders: %v", err)
	}

	if len(ship.recorded) != 1 {
		t.Fatalf("expected 1 row, got %d", len(ship.recorded))
	}
	if ship.recorded[0].ClientID != config.ClientNotFound {
		t.Errorf("client = %q, want sentinel", ship.recorded[0].ClientID)
	}
}

func TestIngestOrdersZeroQuantityDefaultsToOne(t *testing.T) {
	platform := &fakePlatform{
		stores: []shipstation.Store{{StoreID: 5252266, StoreName: "Hometown Amazon"}},
		orders: &shipstation.OrderBatch{Orders: []shipstation.Order{
			order("ORD-6", "5252266", "amazon",
				shipstation.OrderItem{SKU: "AMZ-1", Name: "Item", Quantity: 0},
			),
		}},
	}
	mappings := &fakeMappings{}
	ship := &fakeShipments{}

	uc := newTestUseCase(platform, mappings, &fakeInventory{}, ship, &fakeMailer{})
	if err := uc.IngestOrders(context.Background(), "url"); err != nil {
		t.Fatalf("IngestOrders: %v", err)
	}

	if ship.recorded[0].Quantity != 1 {
		t.Errorf("quantity = %d, want 1", ship.recorded[0].Quantity)
	}
	if mappings.resolved[0].OrderedQuantity != 1 {
		t.Errorf("resolver quantity = %d, want 1", mappings.resolved[0].OrderedQuantity)
	}
}

func TestIngestOrdersDeductionFailureStillShips(t *testing.T) {
	platform := &fakePlatform{
		stores: []shipstation.Store{{StoreID: 5252266, StoreName: "Hometown Amazon"}},
		orders: &shipstation.OrderBatch{Orders: []shipstation.Order{
			order("ORD-7", "5252266", "amazon",
				shipstation.OrderItem{SKU: "AMZ-1", Name: "Item", Quantity: 1},
			),
		}},
	}
	mappings := &fakeMappings{resolutions: map[string]*skudto.Resolution{
		"AMZ-1": {Mapped: true, Deductions: []skudto.ProductDeduction{{ProductID: "prod-1", Quantity: 1}}},
	}}
	inv := &fakeInventory{deductErr: errors.New("db down")}
	ship := &fakeShipments{}

	uc := newTestUseCase(platform, mappings, inv, ship, &fakeMailer{})
	if err := uc.IngestOrders(context.Background(), "url"); err != nil {
		t.Fatalf("deduction failure must not fail the batch: %v", err)
	}
	if len(ship.recorded) != 1 {
		t.Errorf("expected the shipment row regardless of deduction failure")
	}
}

func TestReconcileTrackingUpdatesPendingRows(t *testing.T) {
	platform := &fakePlatform{
		shipments: &shipstation.ShipmentBatch{Shipments: []shipstation.Shipment{{
			OrderNumber:    "ORD-1",
			TrackingNumber: "1Z999",
			CarrierCode:    "ups",
			ServiceCode:    "UPS Ground",
			ShipmentCost:   8.45,
			ShipTo:         &shipstation.Address{Name: "Jordan Avery"},
		}}},
	}
	ship := &fakeShipments{
		pending: map[string][]model.OutboundShipment{
			"ORD-1": {
				{ClientID: "orders@hometownamazon.com", ShipmentNumber: "ORD-1", SKU: strptr("A")},
				{ClientID: "orders@hometownamazon.com", ShipmentNumber: "ORD-1", SKU: strptr("B")},
			},
		},
	}
	mail := &fakeMailer{}

	uc := newTestUseCase(platform, &fakeMappings{}, &fakeInventory{}, ship, mail)
	if err := uc.ReconcileTracking(context.Background(), "url"); err != nil {
		t.Fatalf("ReconcileTracking: %v", err)
	}

	u, ok := ship.tracked["ORD-1"]
	if !ok {
		t.Fatalf("tracking never applied")
	}
	if u.Carrier != "UPS Ground" {
		t.Errorf("carrier = %q, want the service code", u.Carrier)
	}
	if u.TrackingNumber != "1Z999" || u.CostOfShipment != 8.45 {
		t.Errorf("update = %+v", u)
	}

	if len(mail.sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(mail.sent))
	}
	if mail.sent[0].To[0] != "orders@hometownamazon.com" {
		t.Errorf("notification to %v", mail.sent[0].To)
	}
}

func TestReconcileTrackingUnknownOrderIsLoggedNotFatal(t *testing.T) {
	platform := &fakePlatform{
		shipments: &shipstation.ShipmentBatch{Shipments: []shipstation.Shipment{{
			OrderNumber:    "GHOST-1",
			TrackingNumber: "1Z000",
			CarrierCode:    "ups",
		}}},
	}
	ship := &fakeShipments{}
	mail := &fakeMailer{}

	uc := newTestUseCase(platform, &fakeMappings{}, &fakeInventory{}, ship, mail)
	if err := uc.ReconcileTracking(context.Background(), "url"); err != nil {
		t.Fatalf("unknown order must not fail the batch: %v", err)
	}
	if len(ship.tracked) != 0 {
		t.Errorf("tracking applied to unknown order")
	}
	if len(mail.sent) != 0 {
		t.Errorf("notification sent for unknown order")
	}
}

func TestIngestOrdersDuplicateDeliveryIsIdempotent(t *testing.T) {
	platform := &fakePlatform{
		stores: []shipstation.Store{{StoreID: 5252266, StoreName: "Hometown Amazon"}},
		orders: &shipstation.OrderBatch{Orders: []shipstation.Order{
			order("ORD-41", "5252266", "amazon",
				shipstation.OrderItem{SKU: "AMZ-CANDLE-3PK", Name: "Candle 3 Pack", Quantity: 1},
			),
		}},
	}
	mappings := &fakeMappings{resolutions: map[string]*skudto.Resolution{
		"AMZ-CANDLE-3PK": {
			Mapped:     true,
			Deductions: []skudto.ProductDeduction{{ProductID: "prod-1", Quantity: 3}},
			Total:      3,
		},
	}}
	inv := &fakeInventory{}
	ship := &fakeShipments{}
	idem := &fakeIdempotency{}

	uc := newTestUseCase(platform, mappings, inv, ship, &fakeMailer{})
	uc.cache = idem

	if err := uc.IngestOrders(context.Background(), "https://api.example.com/orders/41"); err != nil {
		t.Fatalf("first delivery: %v", err)
	}
	if err := uc.IngestOrders(context.Background(), "https://api.example.com/orders/41"); err != nil {
		t.Fatalf("redelivery: %v", err)
	}

	if len(inv.deductions) != 1 {
		t.Errorf("expected 1 deduction across both deliveries, got %d", len(inv.deductions))
	}
	if len(ship.recorded) != 1 {
		t.Errorf("expected 1 shipment row across both deliveries, got %d", len(ship.recorded))
	}
	if len(idem.unmarked) != 0 {
		t.Errorf("marks were released on the success path: %v", idem.unmarked)
	}
}

func TestIngestOrdersInsertFailureReleasesMarks(t *testing.T) {
	platform := &fakePlatform{
		stores: []shipstation.Store{{StoreID: 5252266, StoreName: "Hometown Amazon"}},
		orders: &shipstation.OrderBatch{Orders: []shipstation.Order{
			order("ORD-42", "5252266", "amazon",
				shipstation.OrderItem{SKU: "AMZ-CANDLE-3PK", Name: "Candle 3 Pack", Quantity: 1},
			),
		}},
	}
	inv := &fakeInventory{}
	ship := &fakeShipments{recordErr: errors.New("connection reset")}
	idem := &fakeIdempotency{}

	uc := newTestUseCase(platform, &fakeMappings{}, inv, ship, &fakeMailer{})
	uc.cache = idem

	if err := uc.IngestOrders(context.Background(), "https://api.example.com/orders/42"); err == nil {
		t.Fatal("expected the failed insert to surface as an error")
	}
	if len(idem.unmarked) != 1 {
		t.Fatalf("expected 1 released mark after the failed insert, got %v", idem.unmarked)
	}

	// The sender retries on our 5xx. With the mark released the redelivery
	// must rebuild and record the row rather than skipping it.
	ship.recordErr = nil
	if err := uc.IngestOrders(context.Background(), "https://api.example.com/orders/42"); err != nil {
		t.Fatalf("retry after failed insert: %v", err)
	}
	if len(ship.recorded) != 1 {
		t.Fatalf("retry recorded %d rows, want 1", len(ship.recorded))
	}
	if ship.recorded[0].ShipmentNumber != "ORD-42" {
		t.Errorf("recorded shipment number = %q", ship.recorded[0].ShipmentNumber)
	}
}

func TestIngestOrdersMarkErrorStillProcesses(t *testing.T) {
	platform := &fakePlatform{
		stores: []shipstation.Store{{StoreID: 5252266, StoreName: "Hometown Amazon"}},
		orders: &shipstation.OrderBatch{Orders: []shipstation.Order{
			order("ORD-43", "5252266", "amazon",
				shipstation.OrderItem{SKU: "AMZ-CANDLE-3PK", Name: "Candle 3 Pack", Quantity: 1},
			),
		}},
	}
	ship := &fakeShipments{}
	idem := &fakeIdempotency{markErr: errors.New("redis unreachable")}

	uc := newTestUseCase(platform, &fakeMappings{}, &fakeInventory{}, ship, &fakeMailer{})
	uc.cache = idem

	if err := uc.IngestOrders(context.Background(), "https://api.example.com/orders/43"); err != nil {
		t.Fatalf("IngestOrders: %v", err)
	}
	if len(ship.recorded) != 1 {
		t.Fatalf("expected the item to be processed despite the mark failure, got %d rows", len(ship.recorded))
	}
}
