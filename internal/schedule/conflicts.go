package schedule

import "github.com/g-guevara/ramos-api/internal/models"

// DetectConflicts returns a copy of the events with HasConflict set on every
// event involved in at least one same-day time overlap. The input slice is
// left untouched; callers must treat the returned slice as authoritative.
// Marking is strictly pairwise: no transitive reasoning beyond the overlap
// pairs themselves.
func DetectConflicts(events []models.ScheduleEvent) []models.ScheduleEvent {
	marked := make([]models.ScheduleEvent, len(events))
	copy(marked, events)

	for i := 0; i < len(marked); i++ {
		for j := i + 1; j < len(marked); j++ {
			if marked[i].Day == marked[j].Day && overlaps(marked[i], marked[j]) {
				marked[i].HasConflict = true
				marked[j].HasConflict = true
			}
		}
	}
	return marked
}

// CountConflicts returns the number of events flagged as conflicting.
func CountConflicts(events []models.ScheduleEvent) int {
	count := 0
	for _, event := range events {
		if event.HasConflict {
			count++
		}
	}
	return count
}

// overlaps reports whether two events share clock time. Intervals are half
// open: an event ending exactly when another starts does not overlap.
func overlaps(a, b models.ScheduleEvent) bool {
	start1, err := TimeToMinutes(a.StartTime)
	if err != nil {
		return false
	}
	end1, err := TimeToMinutes(a.EndTime)
	if err != nil {
		return false
	}
	start2, err := TimeToMinutes(b.StartTime)
	if err != nil {
		return false
	}
	end2, err := TimeToMinutes(b.EndTime)
	if err != nil {
		return false
	}
	return start1 < end2 && start2 < end1
}
