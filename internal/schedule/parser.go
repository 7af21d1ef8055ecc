package schedule

import (
	"strings"

	"go.uber.org/zap"

	"github.com/g-guevara/ramos-api/internal/models"
)

// minFields is the number of columns a catalog line must produce:
// code, name, section, professor, schedule, days, times.
const minFields = 7

// Parse turns delimited catalog text into course sections. One section per
// line, fields optionally double quoted, extra trailing fields ignored. Lines
// with fewer than seven fields are dropped and parsing continues; the parser
// never fails outright — it returns whatever valid lines it found. Every
// produced section is tagged with the given schedule format.
func Parse(text string, format models.ScheduleFormat, logger *zap.Logger) []models.CourseSection {
	if logger == nil {
		logger = zap.NewNop()
	}

	var sections []models.CourseSection
	for i, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitLine(line)
		if len(fields) < minFields {
			logger.Debug("catalog line dropped",
				zap.Int("line", i+1),
				zap.Int("fields", len(fields)))
			continue
		}
		sections = append(sections, models.CourseSection{
			Code:      fields[0],
			Name:      fields[1],
			Section:   fields[2],
			Professor: fields[3],
			Schedule:  fields[4],
			Days:      fields[5],
			Times:     fields[6],
			Format:    format,
		})
	}
	return sections
}

// splitLine tokenizes one comma-separated line. A double quote toggles the
// in-quotes state; a comma is a separator only outside quotes. Quote
// characters are delimiters, never field content. Fields are trimmed.
func splitLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}
