package usecase_test

import (
	"context"
	"testing"
	"time"

	"ptrack/internal/modules/stats/domain"
	"ptrack/internal/modules/stats/service"
	"ptrack/internal/modules/stats/usecase"
)

type fakeClock struct {
	now time.Time
}

func (f fakeClock) Now() time.Time { return f.now }

type fakeIndex struct {
	totals []domain.ProgramTotals
	dates  []string
}

func (f fakeIndex) ProgramTotals(context.Context) ([]domain.ProgramTotals, error) {
	return f.totals, nil
}

func (f fakeIndex) ActiveDates(context.Context) ([]string, error) {
	return f.dates, nil
}

func TestOverviewAggregatesAcrossPrograms(t *testing.T) {
	t.Parallel()
	index := fakeIndex{
		totals: []domain.ProgramTotals{
			{ProgramID: "p1", ProgramName: "Math", Sessions: 3, Completed: 2, Answered: 15, Correct: 9},
			{ProgramID: "p2", ProgramName: "Physics", Sessions: 1, Completed: 1, Answered: 4, Correct: 4},
		},
		dates: []string{"2026-03-10", "2026-03-11"},
	}
	uc := usecase.NewInteractor(service.NewStatsService(fakeClock{now: time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)}, index))

	overview, err := uc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.TotalSessions != 4 || overview.TotalCompleted != 3 {
		t.Fatalf("unexpected totals: %+v", overview)
	}
	if overview.TotalAnswered != 19 || overview.TotalCorrect != 13 {
		t.Fatalf("unexpected answer totals: %+v", overview)
	}
	if overview.Accuracy != 68 {
		t.Fatalf("expected overall accuracy 68, got %d", overview.Accuracy)
	}
	if overview.CurrentStreak != 2 {
		t.Fatalf("expected streak 2, got %d", overview.CurrentStreak)
	}
	if overview.Programs[0].Accuracy != 60 || overview.Programs[1].Accuracy != 100 {
		t.Fatalf("per-program accuracy wrong: %+v", overview.Programs)
	}
}
