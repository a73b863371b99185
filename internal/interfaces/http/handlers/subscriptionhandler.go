package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	subdto "gestao/internal/application/subscription/dto"
	"gestao/internal/application/subscription/usecases"
	"gestao/internal/shared/biztime"
	apperrors "gestao/internal/shared/errors"
	"gestao/internal/shared/logger"
	"gestao/internal/shared/utils"
)

type SubscriptionHandler struct {
	createSubscriptionUC        *usecases.CreateSubscriptionUseCase
	listSubscriptionsByTypeUC   *usecases.ListSubscriptionsByTypeUseCase
	listCustomerSubscriptionsUC *usecases.ListCustomerSubscriptionsUseCase
	listPlanSubscriptionsUC     *usecases.ListPlanSubscriptionsUseCase
	registerPaymentUC           *usecases.RegisterPaymentUseCase
	now                         func() time.Time
	logger                      logger.Interface
}

func NewSubscriptionHandler(
	createSubscriptionUC *usecases.CreateSubscriptionUseCase,
	listSubscriptionsByTypeUC *usecases.ListSubscriptionsByTypeUseCase,
	listCustomerSubscriptionsUC *usecases.ListCustomerSubscriptionsUseCase,
	listPlanSubscriptionsUC *usecases.ListPlanSubscriptionsUseCase,
	registerPaymentUC *usecases.RegisterPaymentUseCase,
	now func() time.Time,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		createSubscriptionUC:        createSubscriptionUC,
		listSubscriptionsByTypeUC:   listSubscriptionsByTypeUC,
		listCustomerSubscriptionsUC: listCustomerSubscriptionsUC,
		listPlanSubscriptionsUC:     listPlanSubscriptionsUC,
		registerPaymentUC:           registerPaymentUC,
		now:                         now,
		logger:                      logger.NewLogger(),
	}
}

type CreateSubscriptionRequest struct {
	CustomerCode uint    `json:"customerCode" binding:"required"`
	PlanCode     uint    `json:"planCode" binding:"required"`
	FinalCost    float64 `json:"finalCost" binding:"required"`
	Description  string  `json:"description" binding:"required"`
}

type RegisterPaymentRequest struct {
	SubscriptionCode uint    `json:"subscriptionCode" binding:"required"`
	Amount           float64 `json:"amount" binding:"required"`
	// PaymentDate is optional, RFC 3339; the server clock is used when absent.
	PaymentDate string `json:"paymentDate"`
}

type RegisterPaymentResponse struct {
	PaymentCode      uint    `json:"paymentCode"`
	SubscriptionCode uint    `json:"subscriptionCode"`
	AmountPaid       float64 `json:"amountPaid"`
	PaymentDate      string  `json:"paymentDate"`
	Status           string  `json:"status"`
}

func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create subscription", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body", err.Error()))
		return
	}

	sub, err := h.createSubscriptionUC.Execute(c.Request.Context(), usecases.CreateSubscriptionCommand{
		CustomerCode: req.CustomerCode,
		PlanCode:     req.PlanCode,
		FinalCost:    req.FinalCost,
		Description:  req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, subdto.NewSubscriptionSummaryDTO(sub, h.now()))
}

func (h *SubscriptionHandler) ListSubscriptionsByType(c *gin.Context) {
	filter, err := subdto.ParseListFilter(c.Param("tipo"))
	if err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	subs, err := h.listSubscriptionsByTypeUC.Execute(c.Request.Context(), usecases.ListSubscriptionsByTypeCommand{
		Filter: filter,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, subs)
}

func (h *SubscriptionHandler) ListCustomerSubscriptions(c *gin.Context) {
	customerCode, err := utils.ParseUintParam(c, "codcli")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	subs, err := h.listCustomerSubscriptionsUC.Execute(c.Request.Context(), usecases.ListCustomerSubscriptionsCommand{
		CustomerCode: customerCode,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, subs)
}

func (h *SubscriptionHandler) ListPlanSubscriptions(c *gin.Context) {
	planCode, err := utils.ParseUintParam(c, "codplano")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	subs, err := h.listPlanSubscriptionsUC.Execute(c.Request.Context(), usecases.ListPlanSubscriptionsCommand{
		PlanCode: planCode,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, subs)
}

func (h *SubscriptionHandler) RegisterPayment(c *gin.Context) {
	var req RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register payment", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body", err.Error()))
		return
	}

	var paymentDate time.Time
	if req.PaymentDate != "" {
		parsed, err := biztime.ParseStored(req.PaymentDate)
		if err != nil {
			utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid payment date", err.Error()))
			return
		}
		paymentDate = parsed
	}

	result, err := h.registerPaymentUC.Execute(c.Request.Context(), usecases.RegisterPaymentCommand{
		SubscriptionCode: req.SubscriptionCode,
		Amount:           req.Amount,
		PaymentDate:      paymentDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, RegisterPaymentResponse{
		PaymentCode:      result.Payment.Code(),
		SubscriptionCode: result.Payment.SubscriptionCode(),
		AmountPaid:       result.Payment.AmountPaid(),
		PaymentDate:      biztime.FormatStored(result.Payment.PaymentDate()),
		Status:           string(result.Status),
	})
}
