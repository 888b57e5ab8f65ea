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

type PlanningHandler struct {
	service service.PlanningService
	log     *logger.Logger
}

func NewPlanningHandler(service service.PlanningService, log *logger.Logger) *PlanningHandler {
	return &PlanningHandler{service: service, log: log}
}

// @Summary Create a new planning
// @Description Create a shoot planning with an auto-assigned business number
// @Tags Plannings
// @Accept json
// @Produce json
// @Param planning body dto.CreatePlanningRequest true "Planning request"
// @Success 201 {object} dto.PlanningResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 503 {object} ierr.ErrorResponse
// @Router /plannings [post]
func (h *PlanningHandler) CreatePlanning(c *gin.Context) {
	var req dto.CreatePlanningRequest
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

// @Summary Get a planning by ID
// @Tags Plannings
// @Produce json
// @Param id path string true "Planning ID"
// @Success 200 {object} dto.PlanningResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /plannings/{id} [get]
func (h *PlanningHandler) GetPlanning(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("planning ID is required").
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

// @Summary Get a planning by business number
// @Tags Plannings
// @Produce json
// @Param number path string true "Planning number"
// @Success 200 {object} dto.PlanningResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /plannings/number/{number} [get]
func (h *PlanningHandler) GetPlanningByNumber(c *gin.Context) {
	resp, err := h.service.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List plannings
// @Tags Plannings
// @Produce json
// @Param filter query types.DocumentFilter true "Filter"
// @Success 200 {object} dto.ListPlanningsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /plannings [get]
func (h *PlanningHandler) ListPlannings(c *gin.Context) {
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

// @Summary Update a planning
// @Tags Plannings
// @Accept json
// @Produce json
// @Param id path string true "Planning ID"
// @Param planning body dto.UpdatePlanningRequest true "Planning request"
// @Success 200 {object} dto.PlanningResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /plannings/{id} [put]
func (h *PlanningHandler) UpdatePlanning(c *gin.Context) {
	id := c.Param("id")
	var req dto.UpdatePlanningRequest
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

// @Summary Delete a planning
// @Tags Plannings
// @Produce json
// @Param id path string true "Planning ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Router /plannings/{id} [delete]
func (h *PlanningHandler) DeletePlanning(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
