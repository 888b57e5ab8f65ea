package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studioledger/studioledger/internal/api/dto"
	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/logger"
	"github.com/studioledger/studioledger/internal/service"
	"github.com/studioledger/studioledger/internal/types"
)

type ExpenseHandler struct {
	service service.ExpenseService
	log     *logger.Logger
}

func NewExpenseHandler(service service.ExpenseService, log *logger.Logger) *ExpenseHandler {
	return &ExpenseHandler{service: service, log: log}
}

// @Summary Create a new expense
// @Description Create a standalone expense with an auto-assigned business number
// @Tags Expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense request"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 503 {object} ierr.ErrorResponse
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Generate an expense from an invoice
// @Description Generate an expense from an invoice, copying the invoice snapshot fields
// @Tags Expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseFromInvoiceRequest true "Generation request"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /expenses/from-invoice [post]
func (h *ExpenseHandler) CreateExpenseFromInvoice(c *gin.Context) {
	var req dto.CreateExpenseFromInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateFromInvoice(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Generate an expense from a planning
// @Description Generate an expense from a planning, copying the planning snapshot fields
// @Tags Expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseFromPlanningRequest true "Generation request"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /expenses/from-planning [post]
func (h *ExpenseHandler) CreateExpenseFromPlanning(c *gin.Context) {
	var req dto.CreateExpenseFromPlanningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateFromPlanning(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get an expense by ID
// @Tags Expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("expense ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get an expense by business number
// @Tags Expenses
// @Produce json
// @Param number path string true "Expense number"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /expenses/number/{number} [get]
func (h *ExpenseHandler) GetExpenseByNumber(c *gin.Context) {
	resp, err := h.service.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List expenses
// @Tags Expenses
// @Produce json
// @Param filter query types.DocumentFilter true "Filter"
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	var filter types.DocumentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update an expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param expense body dto.UpdateExpenseRequest true "Expense request"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id := c.Param("id")
	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete an expense
// @Tags Expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
