package schedule

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/g-guevara/ramos-api/internal/models"
)

// Generate expands each section into its weekly events on the time grid.
// Malformed tokens and time ranges are skipped; a bad entry never aborts the
// remaining sections. Output order follows input order, then per-section
// expansion order.
func Generate(sections []models.CourseSection, logger *zap.Logger) []models.ScheduleEvent {
	if logger == nil {
		logger = zap.NewNop()
	}

	var events []models.ScheduleEvent
	for _, section := range sections {
		switch section.Format {
		case models.FormatExplicit:
			events = append(events, expandExplicit(section, logger)...)
		default:
			events = append(events, expandCompact(section, logger)...)
		}
	}
	return events
}

// expandCompact resolves day-letter + module tokens ("M4A") through the fixed
// module timetable. Tokens with an unknown day letter or module are skipped.
func expandCompact(section models.CourseSection, logger *zap.Logger) []models.ScheduleEvent {
	var events []models.ScheduleEvent
	for _, token := range strings.Split(section.Schedule, "-") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		day, dayOK := dayLetters[token[:1]]
		slot, moduleOK := moduleTimes[token[1:]]
		if !dayOK || !moduleOK {
			logger.Debug("schedule token skipped",
				zap.String("token", token),
				zap.String("code", section.Code),
				zap.String("section", section.Section))
			continue
		}
		events = append(events, newEvent(section, day, slot.Start, slot.End))
	}
	return events
}

// expandExplicit pairs the day and time lists index by index. Unequal lengths
// are a data error: unmatched tail entries are dropped and the mismatch is
// logged once per section.
func expandExplicit(section models.CourseSection, logger *zap.Logger) []models.ScheduleEvent {
	days := splitList(section.Days)
	times := splitList(section.Times)
	if len(days) != len(times) {
		logger.Warn("day/time list length mismatch, unmatched entries dropped",
			zap.String("code", section.Code),
			zap.String("section", section.Section),
			zap.Int("days", len(days)),
			zap.Int("times", len(times)))
	}
	n := len(days)
	if len(times) < n {
		n = len(times)
	}

	var events []models.ScheduleEvent
	for i := 0; i < n; i++ {
		start, end, err := splitRange(times[i])
		if err != nil {
			logger.Debug("time range skipped",
				zap.String("range", times[i]),
				zap.String("code", section.Code),
				zap.Error(err))
			continue
		}
		events = append(events, newEvent(section, NormalizeDay(days[i]), start, end))
	}
	return events
}

// splitRange splits "HH:MM-HH:MM" and snaps both halves to the grid.
func splitRange(timeRange string) (string, string, error) {
	parts := strings.SplitN(timeRange, "-", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("time range %q: missing '-' separator", timeRange)
	}
	start, err := RoundToGrid(strings.TrimSpace(parts[0]))
	if err != nil {
		return "", "", err
	}
	end, err := RoundToGrid(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", "", err
	}
	return start, end, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		out = append(out, strings.TrimSpace(part))
	}
	return out
}

func newEvent(section models.CourseSection, day, start, end string) models.ScheduleEvent {
	return models.ScheduleEvent{
		CourseCode: section.Code,
		CourseName: section.Name,
		Section:    section.Section,
		Professor:  section.Professor,
		Day:        day,
		StartTime:  start,
		EndTime:    end,
	}
}
