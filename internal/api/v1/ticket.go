package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studioledger/studioledger/internal/api/dto"
	"github.com/studioledger/studioledger/internal/domain/ticket"
	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/logger"
	"github.com/studioledger/studioledger/internal/service"
)

type TicketHandler struct {
	service service.TicketService
	log     *logger.Logger
}

func NewTicketHandler(service service.TicketService, log *logger.Logger) *TicketHandler {
	return &TicketHandler{service: service, log: log}
}

// @Summary Create a new ticket
// @Description Create a paragon or erha ticket with an auto-assigned business number
// @Tags Tickets
// @Accept json
// @Produce json
// @Param ticket body dto.CreateTicketRequest true "Ticket request"
// @Success 201 {object} dto.TicketResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 503 {object} ierr.ErrorResponse
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req dto.CreateTicketRequest
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

// @Summary Get a ticket by ID
// @Tags Tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} dto.TicketResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("ticket ID is required").
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

// @Summary Get a ticket by business number
// @Tags Tickets
// @Produce json
// @Param number path string true "Ticket number"
// @Success 200 {object} dto.TicketResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /tickets/number/{number} [get]
func (h *TicketHandler) GetTicketByNumber(c *gin.Context) {
	resp, err := h.service.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List tickets
// @Tags Tickets
// @Produce json
// @Param filter query ticket.Filter true "Filter"
// @Success 200 {object} dto.ListTicketsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	var filter ticket.Filter
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

// @Summary Update a ticket
// @Tags Tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param ticket body dto.UpdateTicketRequest true "Ticket request"
// @Success 200 {object} dto.TicketResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /tickets/{id} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	id := c.Param("id")
	var req dto.UpdateTicketRequest
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

// @Summary Mark a ticket billed
// @Tags Tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} dto.TicketResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /tickets/{id}/bill [post]
func (h *TicketHandler) BillTicket(c *gin.Context) {
	resp, err := h.service.MarkBilled(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Mark a ticket settled
// @Tags Tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} dto.TicketResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /tickets/{id}/settle [post]
func (h *TicketHandler) SettleTicket(c *gin.Context) {
	resp, err := h.service.MarkSettled(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a ticket
// @Tags Tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Router /tickets/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
