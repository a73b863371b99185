package handlers

import (
	"github.com/gin-gonic/gin"

	"gestao/internal/application/customer/usecases"
	"gestao/internal/shared/logger"
	"gestao/internal/shared/utils"
)

type CustomerHandler struct {
	listCustomersUC *usecases.ListCustomersUseCase
	logger          logger.Interface
}

func NewCustomerHandler(listCustomersUC *usecases.ListCustomersUseCase) *CustomerHandler {
	return &CustomerHandler{
		listCustomersUC: listCustomersUC,
		logger:          logger.NewLogger(),
	}
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.listCustomersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, customers)
}
