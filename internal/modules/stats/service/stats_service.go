package service

import (
	"context"

	"ptrack/internal/modules/stats/domain"
	statsout "ptrack/internal/modules/stats/port/out"
	"ptrack/internal/platform/clock"
)

type StatsService struct {
	clock clock.Clock
	index statsout.StatsIndex
}

func NewStatsService(clock clock.Clock, index statsout.StatsIndex) *StatsService {
	return &StatsService{clock: clock, index: index}
}

func (s *StatsService) Overview(ctx context.Context) ([]domain.ProgramTotals, int, error) {
	totals, err := s.index.ProgramTotals(ctx)
	if err != nil {
		return nil, 0, err
	}
	dates, err := s.index.ActiveDates(ctx)
	if err != nil {
		return nil, 0, err
	}
	return totals, domain.Streak(dates, s.clock.Now()), nil
}
