package models

// ScheduleEvent is one concrete weekly occurrence of a section on the time
// grid. Events are disposable projections: they are regenerated from scratch
// on every selection change and none persist between calls. HasConflict is a
// computed flag, not part of identity.
type ScheduleEvent struct {
	CourseCode  string `json:"courseCode"`
	CourseName  string `json:"courseName"`
	Section     string `json:"section"`
	Professor   string `json:"professor"`
	Day         string `json:"day"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	HasConflict bool   `json:"hasConflict"`
}
