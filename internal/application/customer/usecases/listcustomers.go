package usecases

import (
	"context"
	"fmt"

	"gestao/internal/application/customer/dto"
	"gestao/internal/domain/customer"
	"gestao/internal/shared/logger"
)

type ListCustomersUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewListCustomersUseCase(customerRepo customer.Repository, logger logger.Interface) *ListCustomersUseCase {
	return &ListCustomersUseCase{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *ListCustomersUseCase) Execute(ctx context.Context) ([]dto.CustomerDTO, error) {
	customers, err := uc.customerRepo.FindAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list customers", "error", err)
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return dto.NewCustomerDTOs(customers), nil
}
