package domain

import (
	"time"

	trackerdomain "ptrack/internal/modules/tracker/domain"
)

// ProgramTotals is one program's lifetime aggregate as read from the
// activity index.
type ProgramTotals struct {
	ProgramID   string
	ProgramName string
	Color       string
	Sessions    int
	Completed   int
	Answered    int
	Correct     int
}

// Accuracy is the lifetime correct/answered percentage.
func (t ProgramTotals) Accuracy() int {
	return trackerdomain.Percent(t.Correct, t.Answered)
}

// Streak counts consecutive active days ending at today. A day without
// activity yet today does not break a run that reaches yesterday.
func Streak(activeDates []string, today time.Time) int {
	set := make(map[string]bool, len(activeDates))
	for _, d := range activeDates {
		set[d] = true
	}
	day := today
	if !set[trackerdomain.DateOf(day)] {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for set[trackerdomain.DateOf(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
