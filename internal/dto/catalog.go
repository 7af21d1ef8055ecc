package dto

import "github.com/g-guevara/ramos-api/internal/models"

// ImportCatalogRequest carries raw catalog text for parsing and storage.
type ImportCatalogRequest struct {
	Name   string `json:"name" binding:"required" validate:"required"`
	Format string `json:"format" binding:"required,oneof=compact explicit" validate:"required,oneof=compact explicit"`
	Data   string `json:"data" binding:"required" validate:"required"`
}

// CatalogDetail is a stored catalog together with its parsed sections.
type CatalogDetail struct {
	Catalog  models.Catalog         `json:"catalog"`
	Sections []models.CourseSection `json:"sections"`
}
