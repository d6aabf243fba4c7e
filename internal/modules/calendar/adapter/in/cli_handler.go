package in

import (
	"context"

	calendardto "ptrack/internal/modules/calendar/dto"
	calendarin "ptrack/internal/modules/calendar/port/in"
)

type CLIHandler struct {
	usecase calendarin.Usecase
}

func NewCLIHandler(usecase calendarin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Week(ctx context.Context, selected string) ([]calendardto.DayOutput, error) {
	return h.usecase.Week(ctx, calendardto.WeekInput{Selected: selected})
}

func (h CLIHandler) Month(ctx context.Context, year, month int, selected string) (calendardto.MonthOutput, error) {
	return h.usecase.Month(ctx, calendardto.MonthInput{Year: year, Month: month, Selected: selected})
}

func (h CLIHandler) Day(ctx context.Context, date string) ([]calendardto.DaySessionOutput, error) {
	return h.usecase.Day(ctx, date)
}
