package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hometown-industries/warehouse-service/internal/model"
	"github.com/hometown-industries/warehouse-service/internal/user"
	"github.com/hometown-industries/warehouse-service/internal/user/dto"
	"github.com/hometown-industries/warehouse-service/pkg/logger"
)

type userUC struct {
	repo   user.Repository
	logger logger.Logger
}

func NewUserUseCase(repo user.Repository, log logger.Logger) user.UseCase {
	return &userUC{repo: repo, logger: log}
}

func (uc *userUC) CreateUser(ctx context.Context, input *dto.CreateUserInput) (*model.User, error) {
	u := &model.User{
		ID:                         uuid.NewString(),
		Username:                   input.Username,
		CompanyName:                input.CompanyName,
		IsAdmin:                    input.IsAdmin,
		IsClient:                   input.IsClient,
		HasLotNumbers:              input.HasLotNumbers,
		PerOrderFee:                input.PerOrderFee,
		PerOrderUnitFee:            input.PerOrderUnitFee,
		PerUnitFBAPackPrep:         input.PerUnitFBAPackPrep,
		PerUnitWFSPackPrep:         input.PerUnitWFSPackPrep,
		B2BFreightPercentageMarkup: input.B2BFreightPercentageMarkup,
		CreatedAt:                  time.Now().UTC(),
	}
	if input.StripeCustomerID != "" {
		u.StripeCustomerID = &input.StripeCustomerID
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (uc *userUC) EditUser(ctx context.Context, input *dto.EditUserInput) (*model.User, error) {
	u, err := uc.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}

	u.Username = input.Username
	u.CompanyName = input.CompanyName
	u.IsAdmin = input.IsAdmin
	u.IsClient = input.IsClient
	u.HasLotNumbers = input.HasLotNumbers
	u.PerOrderFee = input.PerOrderFee
	u.PerOrderUnitFee = input.PerOrderUnitFee
	u.PerUnitFBAPackPrep = input.PerUnitFBAPackPrep
	u.PerUnitWFSPackPrep = input.PerUnitWFSPackPrep
	u.B2BFreightPercentageMarkup = input.B2BFreightPercentageMarkup
	if input.StripeCustomerID != "" {
		u.StripeCustomerID = &input.StripeCustomerID
	}

	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (uc *userUC) DeleteUser(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *userUC) ListUsers(ctx context.Context) ([]model.User, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *userUC) ListClients(ctx context.Context) ([]model.User, error) {
	return uc.repo.FindClients(ctx)
}

func (uc *userUC) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return uc.repo.GetByUsername(ctx, username)
}
