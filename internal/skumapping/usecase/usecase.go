package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hometown-industries/warehouse-service/internal/mailer"
	"github.com/hometown-industries/warehouse-service/internal/model"
	"github.com/hometown-industries/warehouse-service/internal/skumapping"
	"github.com/hometown-industries/warehouse-service/internal/skumapping/dto"
	"github.com/hometown-industries/warehouse-service/pkg/logger"
	"go.uber.org/zap"
)

type skuMappingUseCase struct {
	repo     skumapping.Repository
	mail     mailer.Mailer
	opsEmail string
	logger   logger.Logger
}

func NewSKUMappingUseCase(repo skumapping.Repository, mail mailer.Mailer, opsEmail string, log logger.Logger) skumapping.UseCase {
	return &skuMappingUseCase{
		repo:     repo,
		mail:     mail,
		opsEmail: opsEmail,
		logger:   log,
	}
}

func (uc *skuMappingUseCase) CreateMapping(ctx context.Context, input *dto.CreateMappingInput) (*model.SKUMapping, error) {
	m := &model.SKUMapping{
		ID:               uuid.New().String(),
		ClientID:         input.ClientID,
		ProductID:        input.ProductID,
		SKU:              input.SKU,
		Name:             input.Name,
		ProductImageURL:  input.ProductImageURL,
		QuantityToDeduct: input.QuantityToDeduct,
		CreatedAt:        time.Now(),
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (uc *skuMappingUseCase) DeleteMapping(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *skuMappingUseCase) ListMappings(ctx context.Context, clientID string) ([]model.SKUMapping, error) {
	return uc.repo.FindAll(ctx, clientID)
}

func (uc *skuMappingUseCase) Resolve(ctx context.Context, input *dto.ResolveInput) (*dto.Resolution, error) {
	rows, err := uc.repo.FindBySKU(ctx, input.SKU)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		uc.recordUnmapped(ctx, input)
		return &dto.Resolution{Mapped: false}, nil
	}

	res := &dto.Resolution{Mapped: true}
	for _, row := range rows {
		qty := row.QuantityToDeduct * input.OrderedQuantity
		res.Deductions = append(res.Deductions, dto.ProductDeduction{
			ProductID: row.ProductID,
			Quantity:  qty,
		})
		res.Total += qty
	}
	return res, nil
}

// recordUnmapped inserts one occurrence row and alerts operators. Failures
// here are logged only; a mapping miss must never block the pipeline.
func (uc *skuMappingUseCase) recordUnmapped(ctx context.Context, input *dto.ResolveInput) {
	u := &model.UnmappedSKU{
		ID:             uuid.New().String(),
		SKU:            input.SKU,
		ClientID:       input.ClientID,
		Quantity:       input.OrderedQuantity,
		ShipmentNumber: input.ShipmentNumber,
		OrderSource:    input.StoreName,
		CreatedAt:      time.Now(),
	}
	if input.ProductName != "" {
		name := input.ProductName
		u.ProductName = &name
	}
	if input.ProductImageURL != "" {
		img := input.ProductImageURL
		u.ProductImageURL = &img
	}

	if err := uc.repo.CreateUnmapped(ctx, u); err != nil {
		uc.logger.Error("failed to record unmapped sku",
			zap.String("sku", input.SKU),
			zap.String("shipment_number", input.ShipmentNumber),
			zap.Error(err),
		)
	} else {
		uc.logger.Warn("unmapped sku recorded",
			zap.String("sku", input.SKU),
			zap.String("store", input.StoreName),
			zap.String("shipment_number", input.ShipmentNumber),
		)
	}

	uc.alertUnmapped(ctx, input)
}

func (uc *skuMappingUseCase) alertUnmapped(ctx context.Context, input *dto.ResolveInput) {
	if uc.mail == nil || uc.opsEmail == "" {
		return
	}
	msg := mailer.Message{
		To:      []string{uc.opsEmail},
		Subject: fmt.Sprintf("Unmapped SKU %s on shipment %s", input.SKU, input.ShipmentNumber),
		HTML: fmt.Sprintf(
			`<p>An order came in with a SKU that has no inventory mapping. No inventory was deducted.</p>
			<ul>
				<li><strong>SKU:</strong> %s</li>
				<li><strong>Product:</strong> %s</li>
				<li><strong>Quantity:</strong> %d</li>
				<li><strong>Shipment Number:</strong> %s</li>
				<li><strong>Store:</strong> %s</li>
			</ul>
			<p>Please add a SKU mapping so future orders deduct inventory.</p>`,
			input.SKU, input.ProductName, input.OrderedQuantity, input.ShipmentNumber, input.StoreName),
	}
	if err := uc.mail.Send(ctx, msg); err != nil {
		uc.logger.Error("failed to send unmapped sku alert", zap.String("sku", input.SKU), zap.Error(err))
	}
}

func (uc *skuMappingUseCase) ListUnmapped(ctx context.Context, clientID string) ([]model.UnmappedSKU, error) {
	return uc.repo.ListUnmapped(ctx, clientID)
}

func (uc *skuMappingUseCase) DeleteUnmappedBySKU(ctx context.Context, sku string) error {
	return uc.repo.DeleteUnmappedBySKU(ctx, sku)
}

func (uc *skuMappingUseCase) DeleteUnmappedByID(ctx context.Context, id string) error {
	return uc.repo.DeleteUnmappedByID(ctx, id)
}
