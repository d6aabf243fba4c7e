package out

import (
	"context"

	"ptrack/internal/modules/stats/domain"
)

// StatsIndex aggregates over the projected activity table.
type StatsIndex interface {
	ProgramTotals(ctx context.Context) ([]domain.ProgramTotals, error)
	ActiveDates(ctx context.Context) ([]string, error)
}
