package dto

import "github.com/g-guevara/ramos-api/internal/models"

// CatalogRef points a planner call at its course catalog: either a stored
// catalog by id, or inline raw text plus format for one-off requests. Exactly
// one of the two must be provided.
type CatalogRef struct {
	CatalogID string `json:"catalogId,omitempty"`
	Format    string `json:"format,omitempty" binding:"omitempty,oneof=compact explicit"`
	Data      string `json:"data,omitempty"`
}

// PreviewRequest expands a manual section selection into annotated events.
type PreviewRequest struct {
	CatalogRef
	Selection []models.SectionKey `json:"selection" binding:"required,min=1,dive"`
}

// PreviewResponse is the renderable weekly schedule for a selection.
type PreviewResponse struct {
	Events        []models.ScheduleEvent `json:"events"`
	ConflictCount int                    `json:"conflictCount"`
}

// RecommendRequest asks for a low-conflict one-section-per-course selection.
// Seed makes the randomized search reproducible when set.
type RecommendRequest struct {
	CatalogRef
	Seed *int64 `json:"seed,omitempty"`
}

// RecommendResponse carries the chosen selection and its annotated events.
type RecommendResponse struct {
	Selection     []models.CourseSection `json:"selection"`
	Events        []models.ScheduleEvent `json:"events"`
	ConflictCount int                    `json:"conflictCount"`
}

// CombinationsRequest asks for every conflict-free combination, with the
// given sections pinned into each one.
type CombinationsRequest struct {
	CatalogRef
	Fixed []models.SectionKey `json:"fixed,omitempty" binding:"omitempty,dive"`
}

// CombinationsResponse lists conflict-free combinations in search order.
// Truncated reports that the enumeration hit its hard cap.
type CombinationsResponse struct {
	Combinations [][]models.CourseSection `json:"combinations"`
	Count        int                      `json:"count"`
	Truncated    bool                     `json:"truncated"`
}

// ExportRequest renders a selection's schedule as a downloadable document.
type ExportRequest struct {
	CatalogRef
	Selection    []models.SectionKey `json:"selection" binding:"required,min=1,dive"`
	ExportFormat string              `json:"exportFormat" binding:"required,oneof=csv pdf"`
	Title        string              `json:"title,omitempty"`
}
