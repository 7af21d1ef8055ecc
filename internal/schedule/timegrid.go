// Package schedule implements the planning engine: catalog parsing, time-grid
// normalization, event expansion, conflict detection, and the search for
// conflict-free section combinations. Everything here is synchronous and pure
// apart from diagnostic logging; callers own all state.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Days lists the canonical weekday names in grid column order.
var Days = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

// GridTimes lists the time labels the rendering grid can position, in row
// order. Every event start/end produced by this package is one of these.
var GridTimes = []string{
	"08:00", "08:30", "09:00", "09:30", "10:00", "10:30",
	"11:00", "11:30", "12:00", "12:30", "13:00", "13:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
	"17:00", "17:30", "18:00", "18:30", "19:00", "19:30",
	"20:00", "20:30", "21:00", "21:30",
}

type moduleSlot struct {
	Start string
	End   string
}

// moduleTimes is the institutional module timetable for compact schedule
// tokens. Fixed process-wide lookup, never mutated.
var moduleTimes = map[string]moduleSlot{
	"1A": {Start: "08:30", End: "09:40"},
	"1B": {Start: "08:45", End: "09:55"},
	"2":  {Start: "10:15", End: "11:25"},
	"3":  {Start: "11:45", End: "12:55"},
	"4A": {Start: "13:15", End: "14:25"},
	"4B": {Start: "14:00", End: "15:10"},
	"5":  {Start: "15:30", End: "16:40"},
	"6":  {Start: "17:00", End: "18:10"},
	"7":  {Start: "18:30", End: "19:40"},
	"8":  {Start: "20:00", End: "21:10"},
}

// dayLetters maps the compact notation's day letter to its canonical name.
var dayLetters = map[string]string{
	"L": "Lunes",
	"M": "Martes",
	"W": "Miércoles",
	"J": "Jueves",
	"V": "Viernes",
	"S": "Sábado",
}

// dayNames maps lowercase, accent-variant spellings to the canonical form.
var dayNames = map[string]string{
	"lunes":     "Lunes",
	"martes":    "Martes",
	"miércoles": "Miércoles",
	"miercoles": "Miércoles",
	"jueves":    "Jueves",
	"viernes":   "Viernes",
	"sábado":    "Sábado",
	"sabado":    "Sábado",
	"domingo":   "Domingo",
}

// TimeToMinutes parses an "HH:MM" clock time into minutes since midnight.
func TimeToMinutes(t string) (int, error) {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("parse time %q: missing ':' separator", t)
	}
	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("parse time %q: %w", t, err)
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("parse time %q: %w", t, err)
	}
	return hours*60 + minutes, nil
}

// MinutesToTime renders minutes since midnight as zero-padded "HH:MM".
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// RoundToGrid snaps a clock time to the nearest 30-minute grid mark. Ties
// round to the higher boundary.
func RoundToGrid(t string) (string, error) {
	m, err := TimeToMinutes(t)
	if err != nil {
		return "", err
	}
	return MinutesToTime((m + 15) / 30 * 30), nil
}

// NormalizeDay maps case-insensitive, accent-variant Spanish day names to
// their canonical accented form. Unrecognized names pass through unchanged.
func NormalizeDay(day string) string {
	if canonical, ok := dayNames[strings.ToLower(day)]; ok {
		return canonical
	}
	return day
}
