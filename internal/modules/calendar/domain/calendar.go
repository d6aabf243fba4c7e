package domain

import (
	"time"

	trackerdomain "ptrack/internal/modules/tracker/domain"
)

var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Day is one calendar cell. HasData is filled from the activity index,
// not derived here.
type Day struct {
	Date     string
	Number   int
	Label    string
	Today    bool
	Selected bool
	HasData  bool
}

// Week builds the Monday-first seven-day strip containing today.
func Week(today time.Time, selected string) []Day {
	monday := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))
	out := make([]Day, 0, 7)
	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		date := trackerdomain.DateOf(d)
		out = append(out, Day{
			Date:     date,
			Number:   d.Day(),
			Label:    weekdayLabels[i],
			Today:    date == trackerdomain.DateOf(today),
			Selected: date == selected,
		})
	}
	return out
}

// Month is a full month grid plus its display label.
type Month struct {
	Year  int
	Month time.Month
	Label string
	Days  []Day
}

func MonthOf(year int, month time.Month, today time.Time, selected string) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	m := Month{
		Year:  first.Year(),
		Month: first.Month(),
		Label: first.Format("January 2006"),
		Days:  make([]Day, 0, last.Day()),
	}
	todayDate := trackerdomain.DateOf(today)
	for i := 1; i <= last.Day(); i++ {
		d := time.Date(first.Year(), first.Month(), i, 0, 0, 0, 0, time.UTC)
		date := trackerdomain.DateOf(d)
		m.Days = append(m.Days, Day{
			Date:     date,
			Number:   i,
			Today:    date == todayDate,
			Selected: date == selected,
		})
	}
	return m
}

// Bounds returns the month's first and last dates, for range queries
// against the activity index.
func (m Month) Bounds() (string, string) {
	if len(m.Days) == 0 {
		return "", ""
	}
	return m.Days[0].Date, m.Days[len(m.Days)-1].Date
}

// PrevMonth and NextMonth step navigation, rolling over year boundaries.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return t.Year(), t.Month()
}

func NextMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return t.Year(), t.Month()
}
