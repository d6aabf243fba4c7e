package usecase

import (
	"context"
	"time"

	"ptrack/internal/modules/calendar/domain"
	"ptrack/internal/modules/calendar/dto"
	calendarin "ptrack/internal/modules/calendar/port/in"
	"ptrack/internal/modules/calendar/service"
)

type Interactor struct {
	svc *service.CalendarService
}

func NewInteractor(svc *service.CalendarService) calendarin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Week(ctx context.Context, input dto.WeekInput) ([]dto.DayOutput, error) {
	days, err := i.svc.Week(ctx, input.Selected)
	if err != nil {
		return nil, err
	}
	return mapDays(days), nil
}

func (i *Interactor) Month(ctx context.Context, input dto.MonthInput) (dto.MonthOutput, error) {
	grid, err := i.svc.Month(ctx, input.Year, time.Month(input.Month), input.Selected)
	if err != nil {
		return dto.MonthOutput{}, err
	}
	return dto.MonthOutput{
		Year:  grid.Year,
		Month: int(grid.Month),
		Label: grid.Label,
		Days:  mapDays(grid.Days),
	}, nil
}

func (i *Interactor) Day(ctx context.Context, date string) ([]dto.DaySessionOutput, error) {
	entries, err := i.svc.Day(ctx, date)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DaySessionOutput, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.DaySessionOutput{
			ProgramID:   e.Program.ID,
			ProgramName: e.Program.Name,
			Color:       e.Program.Color,
			SessionID:   e.Session.ID,
			Correct:     e.Session.Correct,
			Answered:    e.Session.Answered,
			Total:       e.Session.Total,
			Percent:     e.Session.Percent(),
			Completed:   e.Session.Complete(),
		})
	}
	return out, nil
}

func mapDays(days []domain.Day) []dto.DayOutput {
	out := make([]dto.DayOutput, 0, len(days))
	for _, d := range days {
		out = append(out, dto.DayOutput{
			Date:     d.Date,
			Number:   d.Number,
			Label:    d.Label,
			Today:    d.Today,
			Selected: d.Selected,
			HasData:  d.HasData,
		})
	}
	return out
}
