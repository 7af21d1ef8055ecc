package models

import "time"

// Catalog is one imported course-section listing. The raw text is kept so
// planner calls can re-parse it; parsed sections are never stored separately.
type Catalog struct {
	ID           string         `db:"id" json:"id"`
	Name         string         `db:"name" json:"name"`
	Format       ScheduleFormat `db:"format" json:"format"`
	Data         string         `db:"data" json:"-"`
	SectionCount int            `db:"section_count" json:"sectionCount"`
	CreatedAt    time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updatedAt"`
}
