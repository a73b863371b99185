package handlers

import (
	"github.com/gin-gonic/gin"

	plandto "gestao/internal/application/plan/dto"
	"gestao/internal/application/plan/usecases"
	apperrors "gestao/internal/shared/errors"
	"gestao/internal/shared/logger"
	"gestao/internal/shared/utils"
)

type PlanHandler struct {
	listPlansUC      *usecases.ListPlansUseCase
	updatePlanCostUC *usecases.UpdatePlanCostUseCase
	logger           logger.Interface
}

func NewPlanHandler(
	listPlansUC *usecases.ListPlansUseCase,
	updatePlanCostUC *usecases.UpdatePlanCostUseCase,
) *PlanHandler {
	return &PlanHandler{
		listPlansUC:      listPlansUC,
		updatePlanCostUC: updatePlanCostUC,
		logger:           logger.NewLogger(),
	}
}

type UpdatePlanCostRequest struct {
	MonthlyCost float64 `json:"monthlyCost" binding:"required"`
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	plans, err := h.listPlansUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, plans)
}

func (h *PlanHandler) UpdatePlanCost(c *gin.Context) {
	planCode, err := utils.ParseUintParam(c, "idPlano")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePlanCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for plan cost update", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body", err.Error()))
		return
	}

	updated, err := h.updatePlanCostUC.Execute(c.Request.Context(), usecases.UpdatePlanCostCommand{
		PlanCode: planCode,
		NewCost:  req.MonthlyCost,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, plandto.NewPlanDTO(updated))
}
