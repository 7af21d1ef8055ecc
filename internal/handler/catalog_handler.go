package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/g-guevara/ramos-api/internal/dto"
	"github.com/g-guevara/ramos-api/internal/models"
	appErrors "github.com/g-guevara/ramos-api/pkg/errors"
	"github.com/g-guevara/ramos-api/pkg/response"
)

type catalogService interface {
	Import(ctx context.Context, req dto.ImportCatalogRequest) (*dto.CatalogDetail, error)
	List(ctx context.Context) ([]models.Catalog, error)
	Get(ctx context.Context, id string) (*dto.CatalogDetail, error)
	Delete(ctx context.Context, id string) error
}

// CatalogHandler exposes catalog import and lookup endpoints.
type CatalogHandler struct {
	service catalogService
}

// NewCatalogHandler builds a new handler.
func NewCatalogHandler(service catalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// Import godoc
// @Summary Import a course catalog
// @Tags Catalogs
// @Accept json
// @Produce json
// @Param payload body dto.ImportCatalogRequest true "Catalog payload"
// @Success 201 {object} response.Envelope
// @Router /catalogs [post]
func (h *CatalogHandler) Import(c *gin.Context) {
	var req dto.ImportCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid catalog payload"))
		return
	}
	detail, err := h.service.Import(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, detail)
}

// List godoc
// @Summary List stored catalogs
// @Tags Catalogs
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /catalogs [get]
func (h *CatalogHandler) List(c *gin.Context) {
	catalogs, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, catalogs, nil)
}

// Get godoc
// @Summary Get a catalog with its parsed sections
// @Tags Catalogs
// @Produce json
// @Param id path string true "Catalog id"
// @Success 200 {object} response.Envelope
// @Router /catalogs/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	detail, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}

// Delete godoc
// @Summary Delete a catalog
// @Tags Catalogs
// @Param id path string true "Catalog id"
// @Success 204
// @Router /catalogs/{id} [delete]
func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
