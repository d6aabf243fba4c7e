package usecase

import (
	"context"

	"ptrack/internal/modules/stats/dto"
	statsin "ptrack/internal/modules/stats/port/in"
	"ptrack/internal/modules/stats/service"
	trackerdomain "ptrack/internal/modules/tracker/domain"
)

type Interactor struct {
	svc *service.StatsService
}

func NewInteractor(svc *service.StatsService) statsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Overview(ctx context.Context) (dto.OverviewOutput, error) {
	totals, streak, err := i.svc.Overview(ctx)
	if err != nil {
		return dto.OverviewOutput{}, err
	}
	out := dto.OverviewOutput{
		Programs:      make([]dto.ProgramStatsOutput, 0, len(totals)),
		CurrentStreak: streak,
	}
	for _, t := range totals {
		out.Programs = append(out.Programs, dto.ProgramStatsOutput{
			ProgramID:   t.ProgramID,
			ProgramName: t.ProgramName,
			Color:       t.Color,
			Sessions:    t.Sessions,
			Completed:   t.Completed,
			Answered:    t.Answered,
			Correct:     t.Correct,
			Accuracy:    t.Accuracy(),
		})
		out.TotalSessions += t.Sessions
		out.TotalCompleted += t.Completed
		out.TotalAnswered += t.Answered
		out.TotalCorrect += t.Correct
	}
	out.Accuracy = trackerdomain.Percent(out.TotalCorrect, out.TotalAnswered)
	return out, nil
}
