package handlers

import (
	"net/http"

	"github.com/fullarch/financing-api/internal/logger"
	"github.com/fullarch/financing-api/internal/services"
	"github.com/fullarch/financing-api/internal/types/api/params"
	"github.com/fullarch/financing-api/internal/types/api/requests"
	"github.com/fullarch/financing-api/internal/types/api/responses"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FinancingHandler handles plan creation and autopay scheduling
type FinancingHandler struct {
	financingService *services.FinancingService
}

// Use types from the centralized packages
type CreatePlanRequest = requests.CreatePlanRequest
type CreateInvoiceScheduleRequest = requests.CreateInvoiceScheduleRequest

type PlanResponse = responses.PlanResponse
type InvoiceScheduleResponse = responses.InvoiceScheduleResponse

// NewFinancingHandler creates a handler with its service dependency
func NewFinancingHandler(financingService *services.FinancingService) *FinancingHandler {
	return &FinancingHandler{
		financingService: financingService,
	}
}

// CreatePlan handles POST /api/create-plan. It validates that every field is
// present (nil fails, zero values pass), computes the plan split and returns
// the payment link for the down payment.
func (h *FinancingHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, ErrMissingRequiredFields, err)
		return
	}

	if req.Name == nil || req.Email == nil || req.TotalFee == nil || req.TermMonths == nil || req.DownPercent == nil {
		sendError(c, http.StatusBadRequest, ErrMissingRequiredFields, nil)
		return
	}

	logger.Info("Creating financing plan",
		zap.String("email", *req.Email),
		zap.Float64("total_fee", *req.TotalFee),
		zap.Int("term_months", *req.TermMonths),
		zap.Float64("down_percent", *req.DownPercent))

	plan, err := h.financingService.CreatePlan(c.Request.Context(), params.PlanCreateParams{
		Name:        *req.Name,
		Email:       *req.Email,
		TotalFee:    *req.TotalFee,
		TermMonths:  *req.TermMonths,
		DownPercent: *req.DownPercent,
	})
	if err != nil {
		sendServerError(c, err)
		return
	}

	plan.Message = "Plan created"
	sendSuccess(c, http.StatusOK, plan)
}

// CreateInvoiceSchedule handles POST /api/create-invoice-schedule. It creates
// the recurring monthly subscription that pays down the remaining balance.
func (h *FinancingHandler) CreateInvoiceSchedule(c *gin.Context) {
	var req CreateInvoiceScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, ErrMissingRequiredFields, err)
		return
	}

	if req.CustomerID == nil || req.Remaining == nil || req.TermMonths == nil {
		sendError(c, http.StatusBadRequest, ErrMissingRequiredFields, nil)
		return
	}

	logger.Info("Creating invoice schedule",
		zap.String("customer_id", *req.CustomerID),
		zap.Float64("remaining", *req.Remaining),
		zap.Int("term_months", *req.TermMonths))

	schedule, err := h.financingService.CreateAutopaySchedule(c.Request.Context(), params.AutopayCreateParams{
		CustomerID: *req.CustomerID,
		Remaining:  *req.Remaining,
		TermMonths: *req.TermMonths,
	})
	if err != nil {
		sendServerError(c, err)
		return
	}

	schedule.Message = "Autopay schedule created"
	sendSuccess(c, http.StatusOK, schedule)
}
