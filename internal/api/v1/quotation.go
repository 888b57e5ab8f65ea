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

type QuotationHandler struct {
	service service.QuotationService
	log     *logger.Logger
}

func NewQuotationHandler(service service.QuotationService, log *logger.Logger) *QuotationHandler {
	return &QuotationHandler{service: service, log: log}
}

// @Summary Create a new quotation
// @Description Create a quotation with an auto-assigned business number
// @Tags Quotations
// @Accept json
// @Produce json
// @Param quotation body dto.CreateQuotationRequest true "Quotation request"
// @Success 201 {object} dto.QuotationResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 503 {object} ierr.ErrorResponse
// @Router /quotations [post]
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var req dto.CreateQuotationRequest
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

// @Summary Get a quotation by ID
// @Tags Quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} dto.QuotationResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /quotations/{id} [get]
func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("quotation ID is required").
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

// @Summary Get a quotation by business number
// @Tags Quotations
// @Produce json
// @Param number path string true "Quotation number"
// @Success 200 {object} dto.QuotationResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /quotations/number/{number} [get]
func (h *QuotationHandler) GetQuotationByNumber(c *gin.Context) {
	resp, err := h.service.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List quotations
// @Tags Quotations
// @Produce json
// @Param filter query types.DocumentFilter true "Filter"
// @Success 200 {object} dto.ListQuotationsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /quotations [get]
func (h *QuotationHandler) ListQuotations(c *gin.Context) {
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

// @Summary Update a quotation
// @Tags Quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param quotation body dto.UpdateQuotationRequest true "Quotation request"
// @Success 200 {object} dto.QuotationResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /quotations/{id} [put]
func (h *QuotationHandler) UpdateQuotation(c *gin.Context) {
	id := c.Param("id")
	var req dto.UpdateQuotationRequest
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

// @Summary Duplicate a quotation
// @Description Copy a quotation into a fresh draft with its own number
// @Tags Quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 201 {object} dto.QuotationResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /quotations/{id}/duplicate [post]
func (h *QuotationHandler) DuplicateQuotation(c *gin.Context) {
	resp, err := h.service.Duplicate(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Mark a quotation accepted
// @Tags Quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} dto.QuotationResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /quotations/{id}/accept [post]
func (h *QuotationHandler) AcceptQuotation(c *gin.Context) {
	resp, err := h.service.MarkAccepted(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Mark a quotation rejected
// @Tags Quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {object} dto.QuotationResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /quotations/{id}/reject [post]
func (h *QuotationHandler) RejectQuotation(c *gin.Context) {
	resp, err := h.service.MarkRejected(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a quotation
// @Tags Quotations
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Router /quotations/{id} [delete]
func (h *QuotationHandler) DeleteQuotation(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
