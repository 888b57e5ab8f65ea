package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/studioledger/studioledger/internal/api/dto"
	"github.com/studioledger/studioledger/internal/domain/tracker"
	ierr "github.com/studioledger/studioledger/internal/errors"
	"github.com/studioledger/studioledger/internal/logger"
	"github.com/studioledger/studioledger/internal/service"
	"github.com/studioledger/studioledger/internal/types"
)

// TrackerHandler exposes the read and user-field surface of the production
// tracker. There is no create endpoint: rows come into existence through
// document synchronization only.
type TrackerHandler struct {
	service service.TrackerService
	log     *logger.Logger
}

func NewTrackerHandler(service service.TrackerService, log *logger.Logger) *TrackerHandler {
	return &TrackerHandler{service: service, log: log}
}

// @Summary Get a tracker row by ID
// @Tags Trackers
// @Produce json
// @Param id path string true "Tracker ID"
// @Success 200 {object} dto.TrackerResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /trackers/{id} [get]
func (h *TrackerHandler) GetTracker(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("tracker ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	t, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, &dto.TrackerResponse{Tracker: t})
}

// @Summary List tracker rows
// @Tags Trackers
// @Produce json
// @Param filter query tracker.Filter true "Filter"
// @Success 200 {object} dto.ListTrackersResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /trackers [get]
func (h *TrackerHandler) ListTrackers(c *gin.Context) {
	var filter tracker.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	items, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}
	total, err := h.service.Count(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, &dto.ListTrackersResponse{
		Items: lo.Map(items, func(t *tracker.Tracker, _ int) *dto.TrackerResponse {
			return &dto.TrackerResponse{Tracker: t}
		}),
		Pagination: types.NewPaginationResponse(total, filter.GetLimit(), filter.GetOffset()),
	})
}

// @Summary Update the user fields of a tracker row
// @Description Patch the user-owned fields; derived fields are managed by document synchronization
// @Tags Trackers
// @Accept json
// @Produce json
// @Param id path string true "Tracker ID"
// @Param tracker body dto.UpdateTrackerUserFieldsRequest true "User fields patch"
// @Success 200 {object} dto.TrackerResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /trackers/{id} [put]
func (h *TrackerHandler) UpdateTrackerUserFields(c *gin.Context) {
	id := c.Param("id")
	var req dto.UpdateTrackerUserFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	t, err := h.service.UpdateUserFields(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, &dto.TrackerResponse{Tracker: t})
}

// @Summary Delete a tracker row
// @Description Trackers are only removed through this endpoint, never by deleting documents
// @Tags Trackers
// @Produce json
// @Param id path string true "Tracker ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Router /trackers/{id} [delete]
func (h *TrackerHandler) DeleteTracker(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
