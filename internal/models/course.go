package models

// ScheduleFormat selects how a section's schedule descriptor is interpreted.
type ScheduleFormat string

const (
	// FormatCompact uses day-letter + module tokens such as "M4A-M5-V3".
	FormatCompact ScheduleFormat = "compact"
	// FormatExplicit uses parallel day-name and time-range lists.
	FormatExplicit ScheduleFormat = "explicit"
)

// Valid reports whether the format is one of the supported variants.
func (f ScheduleFormat) Valid() bool {
	return f == FormatCompact || f == FormatExplicit
}

// CourseSection is one offered section of one course. Sections of the same
// course share a Code; (Code, Section) identifies a section within a catalog.
type CourseSection struct {
	Code      string         `json:"code"`
	Name      string         `json:"name"`
	Section   string         `json:"section"`
	Professor string         `json:"professor"`
	Schedule  string         `json:"schedule"`
	Days      string         `json:"days"`
	Times     string         `json:"times"`
	Format    ScheduleFormat `json:"format"`
}

// SectionKey identifies a section inside a catalog.
type SectionKey struct {
	Code    string `json:"code" binding:"required"`
	Section string `json:"section" binding:"required"`
}

// Key returns the section's identity key.
func (s CourseSection) Key() SectionKey {
	return SectionKey{Code: s.Code, Section: s.Section}
}
