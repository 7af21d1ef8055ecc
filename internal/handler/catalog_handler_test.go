package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-guevara/ramos-api/internal/dto"
	"github.com/g-guevara/ramos-api/internal/models"
	appErrors "github.com/g-guevara/ramos-api/pkg/errors"
)

type catalogServiceMock struct {
	importResp *dto.CatalogDetail
	importErr  error
	listResp   []models.Catalog
	getResp    *dto.CatalogDetail
	getErr     error
	deleteErr  error
}

func (m *catalogServiceMock) Import(ctx context.Context, req dto.ImportCatalogRequest) (*dto.CatalogDetail, error) {
	if m.importErr != nil {
		return nil, m.importErr
	}
	return m.importResp, nil
}

func (m *catalogServiceMock) List(ctx context.Context) ([]models.Catalog, error) {
	return m.listResp, nil
}

func (m *catalogServiceMock) Get(ctx context.Context, id string) (*dto.CatalogDetail, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.getResp, nil
}

func (m *catalogServiceMock) Delete(ctx context.Context, id string) error {
	return m.deleteErr
}

func TestCatalogHandlerImport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewCatalogHandler(&catalogServiceMock{
		importResp: &dto.CatalogDetail{Catalog: models.Catalog{ID: "cat-1", Name: "2024-1"}},
	})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(dto.ImportCatalogRequest{
		Name:   "2024-1",
		Format: "compact",
		Data:   `"A1","Course A","1","Prof","L3","Lunes","11:45-12:55"`,
	})
	req, _ := http.NewRequest(http.MethodPost, "/catalogs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Import(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "cat-1")
}

func TestCatalogHandlerImportInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewCatalogHandler(&catalogServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/catalogs", bytes.NewReader([]byte(`invalid`)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Import(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandlerImportRejectsBadFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewCatalogHandler(&catalogServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := []byte(`{"name":"x","format":"weird","data":"y"}`)
	req, _ := http.NewRequest(http.MethodPost, "/catalogs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Import(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewCatalogHandler(&catalogServiceMock{
		getErr: appErrors.Clone(appErrors.ErrNotFound, "catalog not found"),
	})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/catalogs/missing", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Get(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewCatalogHandler(&catalogServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodDelete, "/catalogs/cat-1", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "cat-1"}}

	handler.Delete(c)
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusNoContent, w.Code)
}
