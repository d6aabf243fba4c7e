package service

import (
	"context"
	"time"

	"ptrack/internal/modules/calendar/domain"
	calendarout "ptrack/internal/modules/calendar/port/out"
	trackerdomain "ptrack/internal/modules/tracker/domain"
	"ptrack/internal/platform/clock"
)

type CalendarService struct {
	clock   clock.Clock
	gateway calendarout.DocumentGateway
	index   calendarout.ActivityIndex
}

func NewCalendarService(clock clock.Clock, gateway calendarout.DocumentGateway, index calendarout.ActivityIndex) *CalendarService {
	return &CalendarService{clock: clock, gateway: gateway, index: index}
}

func (s *CalendarService) Week(ctx context.Context, selected string) ([]domain.Day, error) {
	days := domain.Week(s.clock.Now(), selected)
	if err := s.markActivity(ctx, days); err != nil {
		return nil, err
	}
	return days, nil
}

// Month builds the grid for the given year/month; zero values resolve to
// the current month.
func (s *CalendarService) Month(ctx context.Context, year int, month time.Month, selected string) (domain.Month, error) {
	now := s.clock.Now()
	if year == 0 || month == 0 {
		year, month = now.Year(), now.Month()
	}
	grid := domain.MonthOf(year, month, now, selected)
	if err := s.markActivity(ctx, grid.Days); err != nil {
		return domain.Month{}, err
	}
	return grid, nil
}

// Day returns the sessions logged on the given date straight from the
// document, not the index; the day drill-down shows live data.
func (s *CalendarService) Day(ctx context.Context, date string) ([]trackerdomain.Entry, error) {
	doc, err := s.gateway.Document(ctx)
	if err != nil {
		return nil, err
	}
	return trackerdomain.SessionsOnDate(doc, date), nil
}

func (s *CalendarService) markActivity(ctx context.Context, days []domain.Day) error {
	if len(days) == 0 {
		return nil
	}
	active, err := s.index.DaysWithActivity(ctx, days[0].Date, days[len(days)-1].Date)
	if err != nil {
		return err
	}
	for i := range days {
		days[i].HasData = active[days[i].Date]
	}
	return nil
}
