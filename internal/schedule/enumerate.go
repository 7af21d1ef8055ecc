package schedule

import "github.com/g-guevara/ramos-api/internal/models"

// DefaultMaxCombinations caps the enumerator's result count.
const DefaultMaxCombinations = 1000

// EnumerateAll returns every conflict-free combination choosing exactly one
// section per course code. Fixed sections are union'd into every combination
// and their codes excluded from the search dimension. The depth-first search
// visits codes in first-seen catalog order and sections in catalog order, and
// is abandoned outright once maxCombinations results have been collected.
// Empty input, or no zero-conflict assignment, yields an empty result —
// callers disambiguate the two by checking input emptiness first.
func EnumerateAll(sections, fixed []models.CourseSection, maxCombinations int) [][]models.CourseSection {
	if len(sections) == 0 {
		return nil
	}
	if maxCombinations <= 0 {
		maxCombinations = DefaultMaxCombinations
	}

	fixedCodes := make(map[string]bool, len(fixed))
	for _, section := range fixed {
		fixedCodes[section.Code] = true
	}

	codes, byCode := groupByCode(sections)
	var open []string
	for _, code := range codes {
		if !fixedCodes[code] {
			open = append(open, code)
		}
	}

	var results [][]models.CourseSection
	var walk func(index int, chosen []models.CourseSection)
	walk = func(index int, chosen []models.CourseSection) {
		if len(results) >= maxCombinations {
			return
		}
		if index == len(open) {
			combination := make([]models.CourseSection, 0, len(fixed)+len(chosen))
			combination = append(combination, fixed...)
			combination = append(combination, chosen...)
			if CountConflicts(DetectConflicts(Generate(combination, nil))) == 0 {
				results = append(results, combination)
			}
			return
		}
		for _, section := range byCode[open[index]] {
			walk(index+1, append(chosen, section))
			if len(results) >= maxCombinations {
				return
			}
		}
	}
	walk(0, nil)
	return results
}
