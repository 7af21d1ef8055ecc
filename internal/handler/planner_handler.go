package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/g-guevara/ramos-api/internal/dto"
	"github.com/g-guevara/ramos-api/internal/models"
	"github.com/g-guevara/ramos-api/internal/service"
	appErrors "github.com/g-guevara/ramos-api/pkg/errors"
	"github.com/g-guevara/ramos-api/pkg/response"
)

type plannerService interface {
	Preview(ctx context.Context, req dto.PreviewRequest) (*dto.PreviewResponse, error)
	Recommend(ctx context.Context, req dto.RecommendRequest) (*dto.RecommendResponse, error)
	Combinations(ctx context.Context, req dto.CombinationsRequest) (*dto.CombinationsResponse, error)
}

type exportService interface {
	Render(events []models.ScheduleEvent, format, title string) (*service.ExportResult, error)
}

// PlannerHandler exposes the scheduling engine over HTTP.
type PlannerHandler struct {
	planner plannerService
	export  exportService
}

// NewPlannerHandler builds a new handler.
func NewPlannerHandler(planner plannerService, export exportService) *PlannerHandler {
	return &PlannerHandler{planner: planner, export: export}
}

// Preview godoc
// @Summary Preview a manual section selection
// @Tags Planner
// @Accept json
// @Produce json
// @Param payload body dto.PreviewRequest true "Preview payload"
// @Success 200 {object} response.Envelope
// @Router /planner/preview [post]
func (h *PlannerHandler) Preview(c *gin.Context) {
	var req dto.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid preview payload"))
		return
	}
	resp, err := h.planner.Preview(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}

// Recommend godoc
// @Summary Recommend a low-conflict selection
// @Tags Planner
// @Accept json
// @Produce json
// @Param payload body dto.RecommendRequest true "Recommend payload"
// @Success 200 {object} response.Envelope
// @Router /planner/recommend [post]
func (h *PlannerHandler) Recommend(c *gin.Context) {
	var req dto.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid recommend payload"))
		return
	}
	resp, err := h.planner.Recommend(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}

// Combinations godoc
// @Summary Enumerate conflict-free combinations
// @Tags Planner
// @Accept json
// @Produce json
// @Param payload body dto.CombinationsRequest true "Combinations payload"
// @Success 200 {object} response.Envelope
// @Router /planner/combinations [post]
func (h *PlannerHandler) Combinations(c *gin.Context) {
	var req dto.CombinationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid combinations payload"))
		return
	}
	resp, err := h.planner.Combinations(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}

// Export godoc
// @Summary Export a selection's schedule as CSV or PDF
// @Tags Planner
// @Accept json
// @Produce text/csv
// @Produce application/pdf
// @Param payload body dto.ExportRequest true "Export payload"
// @Success 200 {file} file
// @Router /planner/export [post]
func (h *PlannerHandler) Export(c *gin.Context) {
	var req dto.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid export payload"))
		return
	}
	preview, err := h.planner.Preview(c.Request.Context(), dto.PreviewRequest{
		CatalogRef: req.CatalogRef,
		Selection:  req.Selection,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.export.Render(preview.Events, req.ExportFormat, req.Title)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
