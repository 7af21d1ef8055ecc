package schedule

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-guevara/ramos-api/internal/models"
)

func TestEnumerateAllTwoByTwo(t *testing.T) {
	// (A1-1, B1-1) and (A1-2, B1-2) are conflict free; the cross pairings
	// collide on Monday module 3.
	catalog := []models.CourseSection{
		compactSection("A1", "1", "M3"),
		compactSection("A1", "2", "L3"),
		compactSection("B1", "1", "L3"),
		compactSection("B1", "2", "V3"),
	}

	combos := EnumerateAll(catalog, nil, 0)
	require.Len(t, combos, 2)

	assert.Equal(t, "1", combos[0][0].Section)
	assert.Equal(t, "1", combos[0][1].Section)
	assert.Equal(t, "2", combos[1][0].Section)
	assert.Equal(t, "2", combos[1][1].Section)
}

func TestEnumerateAllEmptyInput(t *testing.T) {
	assert.Empty(t, EnumerateAll(nil, nil, 0))
}

func TestEnumerateAllNoSolution(t *testing.T) {
	catalog := []models.CourseSection{
		compactSection("A1", "1", "L3"),
		compactSection("B1", "1", "L3"),
	}
	assert.Empty(t, EnumerateAll(catalog, nil, 0))
}

func TestEnumerateAllHonoursFixedSections(t *testing.T) {
	catalog := []models.CourseSection{
		compactSection("A1", "1", "M3"),
		compactSection("A1", "2", "L3"),
		compactSection("B1", "1", "L3"),
		compactSection("B1", "2", "V3"),
	}
	fixed := []models.CourseSection{compactSection("A1", "2", "L3")}

	combos := EnumerateAll(catalog, fixed, 0)
	require.Len(t, combos, 1)
	require.Len(t, combos[0], 2)
	assert.Equal(t, "A1", combos[0][0].Code)
	assert.Equal(t, "2", combos[0][0].Section)
	assert.Equal(t, "B1", combos[0][1].Code)
	assert.Equal(t, "2", combos[0][1].Section)
}

func TestEnumerateAllDFSOrder(t *testing.T) {
	// No conflicts anywhere: order must follow catalog order per code.
	catalog := []models.CourseSection{
		compactSection("A1", "1", "L2"),
		compactSection("A1", "2", "M2"),
		compactSection("B1", "1", "J2"),
		compactSection("B1", "2", "V2"),
	}

	combos := EnumerateAll(catalog, nil, 0)
	require.Len(t, combos, 4)
	assert.Equal(t, []string{"1", "1"}, sectionIDs(combos[0]))
	assert.Equal(t, []string{"1", "2"}, sectionIDs(combos[1]))
	assert.Equal(t, []string{"2", "1"}, sectionIDs(combos[2]))
	assert.Equal(t, []string{"2", "2"}, sectionIDs(combos[3]))
}

func TestEnumerateAllCap(t *testing.T) {
	// A schedule-less section expands to no events, so every combination is
	// conflict free: 1200 sections of one course mean 1200 valid combinations.
	var catalog []models.CourseSection
	for i := 0; i < 1200; i++ {
		catalog = append(catalog, compactSection("A1", fmt.Sprintf("%d", i+1), ""))
	}

	combos := EnumerateAll(catalog, nil, 0)
	assert.Len(t, combos, DefaultMaxCombinations)
}

func TestEnumerateAllCustomCap(t *testing.T) {
	catalog := []models.CourseSection{
		compactSection("A1", "1", "L2"),
		compactSection("A1", "2", "M2"),
		compactSection("B1", "1", "J2"),
		compactSection("B1", "2", "V2"),
	}

	combos := EnumerateAll(catalog, nil, 3)
	assert.Len(t, combos, 3)
}

func sectionIDs(combo []models.CourseSection) []string {
	ids := make([]string, 0, len(combo))
	for _, section := range combo {
		ids = append(ids, section.Section)
	}
	return ids
}
