package schedule

import (
	"math"
	"math/rand"
	"time"

	"github.com/g-guevara/ramos-api/internal/models"
)

// DefaultMaxAttempts bounds the recommender's random draws.
const DefaultMaxAttempts = 100

// Recommend picks one section per distinct course code, drawing up to
// maxAttempts random selections and keeping the one with the fewest
// conflicting events. Ties keep the earliest candidate; a conflict-free draw
// stops the search. Best effort: with residual conflicts the best draw is
// still returned. Empty input yields an empty result.
//
// The rng is injected so callers can seed reproducible runs; a nil rng falls
// back to a time-seeded source.
func Recommend(sections []models.CourseSection, rng *rand.Rand, maxAttempts int) []models.CourseSection {
	if len(sections) == 0 {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	codes, byCode := groupByCode(sections)

	var best []models.CourseSection
	minConflicts := math.MaxInt

	for attempt := 0; attempt < maxAttempts; attempt++ {
		draw := make([]models.CourseSection, 0, len(codes))
		for _, code := range codes {
			options := byCode[code]
			draw = append(draw, options[rng.Intn(len(options))])
		}

		conflicts := CountConflicts(DetectConflicts(Generate(draw, nil)))
		if conflicts < minConflicts {
			minConflicts = conflicts
			best = draw
			if conflicts == 0 {
				break
			}
		}
	}
	return best
}

// groupByCode buckets sections by course code, preserving first-seen code
// order and catalog order within each code.
func groupByCode(sections []models.CourseSection) ([]string, map[string][]models.CourseSection) {
	byCode := make(map[string][]models.CourseSection)
	var codes []string
	for _, section := range sections {
		if _, seen := byCode[section.Code]; !seen {
			codes = append(codes, section.Code)
		}
		byCode[section.Code] = append(byCode[section.Code], section)
	}
	return codes, byCode
}
