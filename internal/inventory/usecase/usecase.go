package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hometown-industries/warehouse-service/internal/inventory"
	"github.com/hometown-industries/warehouse-service/internal/inventory/dto"
	"github.com/hometown-industries/warehouse-service/internal/mailer"
	"github.com/hometown-industries/warehouse-service/internal/model"
	"github.com/hometown-industries/warehouse-service/pkg/logger"
	"go.uber.org/zap"
)

type inventoryUseCase struct {
	repo     inventory.Repository
	cache    inventory.Locker
	mail     mailer.Mailer
	opsEmail string
	logger   logger.Logger
}

func NewInventoryUseCase(repo inventory.Repository, cache inventory.Locker, mail mailer.Mailer, opsEmail string, log logger.Logger) inventory.UseCase {
	return &inventoryUseCase{
		repo:     repo,
		cache:    cache,
		mail:     mail,
		opsEmail: opsEmail,
		logger:   log,
	}
}

func (uc *inventoryUseCase) CreateInventory(ctx context.Context, input *dto.CreateInventoryInput) (*model.Inventory, error) {
	now := time.Now()
	inv := &model.Inventory{
		ID:              uuid.New().String(),
		ClientID:        input.ClientID,
		Name:            input.Name,
		Asin:            optional(input.Asin),
		ProductTitle:    optional(input.ProductTitle),
		SKU:             optional(input.SKU),
		ProductImageURL: optional(input.ProductImageURL),
		Pending:         input.Pending,
		Quantity:        input.Quantity,
		LotNumber:       optional(input.LotNumber),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if input.ExpirationDate != "" {
		t, err := time.Parse("2006-01-02", input.ExpirationDate)
		if err != nil {
			return nil, fmt.Errorf("invalid expiration date %q: %w", input.ExpirationDate, err)
		}
		inv.ProductExpiration = &t
	}

	if err := uc.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (uc *inventoryUseCase) EditInventory(ctx context.Context, input *dto.EditInventoryInput) (*model.Inventory, error) {
	inv, err := uc.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("inventory %s not found", input.ID)
	}

	inv.Name = input.Name
	inv.Asin = optional(input.Asin)
	inv.ProductTitle = optional(input.ProductTitle)
	inv.SKU = optional(input.SKU)
	inv.ProductImageURL = optional(input.ProductImageURL)
	inv.Pending = input.Pending
	inv.Quantity = input.Quantity
	inv.LotNumber = optional(input.LotNumber)
	inv.UpdatedAt = time.Now()
	if input.ExpirationDate != "" {
		t, err := time.Parse("2006-01-02", input.ExpirationDate)
		if err != nil {
			return nil, fmt.Errorf("invalid expiration date %q: %w", input.ExpirationDate, err)
		}
		inv.ProductExpiration = &t
	} else {
		inv.ProductExpiration = nil
	}

	if err := uc.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (uc *inventoryUseCase) DeleteInventory(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *inventoryUseCase) ListInventory(ctx context.Context, clientID string) ([]model.Inventory, error) {
	return uc.repo.FindAll(ctx, clientID)
}

// lockProduct serializes mutations per product id so concurrent webhook
// deliveries cannot interleave read-modify-write on the same row.
func (uc *inventoryUseCase) lockProduct(ctx context.Context, productID string) (release func(), ok bool) {
	if uc.cache == nil {
		return func() {}, true
	}
	key := "lock:inventory:" + productID
	value := uuid.New().String()
	for i := 0; i < 5; i++ {
		acquired, err := uc.cache.AcquireLock(ctx, key, value, 5*time.Second)
		if err != nil {
			uc.logger.Error("failed to acquire inventory lock", zap.String("product_id", productID), zap.Error(err))
			// Redis being down should not stop fulfilment; fall through unlocked.
			return func() {}, true
		}
		if acquired {
			return func() { _ = uc.cache.ReleaseLock(context.Background(), key, value) }, true
		}
		time.Sleep(100 * time.Millisecond)
	}
	return nil, false
}

func (uc *inventoryUseCase) Deduct(ctx context.Context, input *dto.DeductionInput) (*dto.DeductionResult, error) {
	release, ok := uc.lockProduct(ctx, input.ProductID)
	if !ok {
		return nil, fmt.Errorf("could not lock inventory %s for deduction", input.ProductID)
	}
	defer release()

	inv, err := uc.repo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		// Dangling mapping. Skip this product, keep the batch moving.
		uc.logger.Warn("inventory row not found for mapped product, skipping deduction",
			zap.String("product_id", input.ProductID),
			zap.String("sku", input.SKU),
			zap.String("shipment_number", input.ShipmentNumber),
		)
		return &dto.DeductionResult{Found: false}, nil
	}

	previous := inv.Quantity
	newQuantity := previous - input.Quantity
	clamped := false
	if newQuantity < 0 {
		newQuantity = 0
		clamped = true
	}

	now := time.Now()
	inv.Quantity = newQuantity
	inv.UpdatedAt = now

	entry := &model.ChangelogEntry{
		ID:               uuid.New().String(),
		ClientID:         inv.ClientID,
		ShipmentNumber:   optional(input.ShipmentNumber),
		ChangeSource:     input.Source,
		Asin:             inv.Asin,
		ProductTitle:     inv.ProductTitle,
		SKU:              inv.SKU,
		PreviousQuantity: previous,
		NewQuantity:      newQuantity,
		PreviousPending:  0,
		NewPending:       0,
		CreatedAt:        now,
	}
	if clamped {
		shortfall := input.Quantity - previous
		notes := fmt.Sprintf("oversold: deduction of %d exceeded on-hand %d by %d", input.Quantity, previous, shortfall)
		entry.Notes = &notes
	}

	if err := uc.repo.ApplyChangeWithLog(ctx, inv, entry); err != nil {
		return nil, err
	}

	if clamped {
		uc.logger.Warn("inventory deduction clamped at zero",
			zap.String("product_id", input.ProductID),
			zap.String("sku", input.SKU),
			zap.String("shipment_number", input.ShipmentNumber),
			zap.Int64("requested", input.Quantity),
			zap.Int64("on_hand", previous),
		)
		uc.alertOversold(ctx, inv, input, previous)
	}

	return &dto.DeductionResult{Found: true, NewQuantity: newQuantity, Clamped: clamped}, nil
}

func (uc *inventoryUseCase) alertOversold(ctx context.Context, inv *model.Inventory, input *dto.DeductionInput, onHand int64) {
	if uc.mail == nil || uc.opsEmail == "" {
		return
	}
	msg := mailer.Message{
		To:      []string{uc.opsEmail},
		Subject: fmt.Sprintf("Oversold SKU %s on shipment %s", input.SKU, input.ShipmentNumber),
		HTML: fmt.Sprintf(
			`<p>Order <strong>%s</strong> from <strong>%s</strong> required <strong>%d</strong> units of %s but only <strong>%d</strong> were on hand. Inventory was set to 0.</p>`,
			input.ShipmentNumber, input.Source, input.Quantity, inv.Name, onHand),
	}
	if err := uc.mail.Send(ctx, msg); err != nil {
		uc.logger.Error("failed to send oversold alert", zap.Error(err))
	}
}

func (uc *inventoryUseCase) Receive(ctx context.Context, input *dto.ReceiveInput) (*model.Inventory, error) {
	inv, err := uc.repo.GetByClientAndSKU(ctx, input.ClientID, input.SKU)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		uc.logger.Warn("no inventory row for received shipment, skipping count confirmation",
			zap.String("client_id", input.ClientID),
			zap.String("sku", input.SKU),
			zap.String("shipment_number", input.ShipmentNumber),
		)
		return nil, nil
	}

	release, ok := uc.lockProduct(ctx, inv.ID)
	if !ok {
		return nil, fmt.Errorf("could not lock inventory %s for receiving", inv.ID)
	}
	defer release()

	// Re-read under the lock.
	inv, err = uc.repo.GetByID(ctx, inv.ID)
	if err != nil || inv == nil {
		return nil, err
	}

	prevQuantity := inv.Quantity
	prevPending := inv.Pending

	inv.Quantity += input.CountedQuantity
	inv.Pending -= input.CountedQuantity
	if inv.Pending < 0 {
		inv.Pending = 0
	}
	now := time.Now()
	inv.UpdatedAt = now

	entry := &model.ChangelogEntry{
		ID:               uuid.New().String(),
		ClientID:         inv.ClientID,
		ShipmentNumber:   optional(input.ShipmentNumber),
		ChangeSource:     model.ChangeSourcePortal,
		Asin:             inv.Asin,
		ProductTitle:     inv.ProductTitle,
		SKU:              inv.SKU,
		PreviousQuantity: prevQuantity,
		NewQuantity:      inv.Quantity,
		PreviousPending:  prevPending,
		NewPending:       inv.Pending,
		CreatedAt:        now,
	}

	if err := uc.repo.ApplyChangeWithLog(ctx, inv, entry); err != nil {
		return nil, err
	}
	return inv, nil
}

func (uc *inventoryUseCase) ListChangelog(ctx context.Context, clientID string, limit, offset int) ([]model.ChangelogEntry, error) {
	return uc.repo.ListChangelog(ctx, clientID, limit, offset)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
