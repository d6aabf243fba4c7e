package in

import (
	"context"

	"ptrack/internal/modules/calendar/dto"
)

type Usecase interface {
	Week(ctx context.Context, input dto.WeekInput) ([]dto.DayOutput, error)
	// Month with a zero year/month resolves to the current month.
	Month(ctx context.Context, input dto.MonthInput) (dto.MonthOutput, error)
	Day(ctx context.Context, date string) ([]dto.DaySessionOutput, error)
}
