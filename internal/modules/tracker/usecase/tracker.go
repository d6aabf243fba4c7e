package usecase

import (
	"context"

	"ptrack/internal/modules/tracker/domain"
	"ptrack/internal/modules/tracker/dto"
	trackerin "ptrack/internal/modules/tracker/port/in"
	"ptrack/internal/modules/tracker/service"
)

type Interactor struct {
	svc *service.ProgramService
}

func NewInteractor(svc *service.ProgramService) trackerin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) CreateProgram(ctx context.Context, input dto.CreateProgramInput) (dto.ProgramOutput, error) {
	program, err := i.svc.CreateProgram(ctx, input.Name, input.TotalQuestions)
	if err != nil {
		return dto.ProgramOutput{}, err
	}
	return dto.ProgramOutput{
		ID:             program.ID,
		Name:           program.Name,
		TotalQuestions: program.TotalQuestions,
		Color:          program.Color,
		CreatedAt:      program.CreatedAt,
	}, nil
}

func (i *Interactor) ListPrograms(ctx context.Context) ([]dto.CardOutput, error) {
	cards, err := i.svc.Cards(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CardOutput, 0, len(cards))
	for _, card := range cards {
		out = append(out, dto.CardOutput{
			ID:             card.Program.ID,
			Name:           card.Program.Name,
			TotalQuestions: card.Program.TotalQuestions,
			Color:          card.Program.Color,
			Correct:        card.Correct,
			Percent:        card.Percent,
			Label:          string(card.Label),
			Done:           card.Done,
			Open:           card.Open,
		})
	}
	return out, nil
}

func (i *Interactor) GetProgram(ctx context.Context, id string) (dto.ProgramDetailOutput, error) {
	program, err := i.svc.GetProgram(ctx, id)
	if err != nil {
		return dto.ProgramDetailOutput{}, err
	}
	sessions := make([]dto.SessionOutput, 0, len(program.Sessions))
	for _, s := range program.Sessions {
		sessions = append(sessions, dto.SessionOutput{
			ID:          s.ID,
			Date:        s.Date,
			StartedAt:   s.StartedAt,
			CompletedAt: s.CompletedAt,
			Correct:     s.Correct,
			Answered:    s.Answered,
			Total:       s.Total,
			Percent:     s.Percent(),
		})
	}
	return dto.ProgramDetailOutput{
		ID:             program.ID,
		Name:           program.Name,
		TotalQuestions: program.TotalQuestions,
		Color:          program.Color,
		CreatedAt:      program.CreatedAt,
		Sessions:       sessions,
	}, nil
}

func (i *Interactor) DeletePrograms(ctx context.Context, input dto.DeleteProgramsInput) (dto.DeleteProgramsOutput, error) {
	removed, err := i.svc.DeletePrograms(ctx, input.IDs)
	if err != nil {
		return dto.DeleteProgramsOutput{}, err
	}
	return dto.DeleteProgramsOutput{Removed: removed}, nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	return i.svc.Reindex(ctx)
}

func (i *Interactor) Document(ctx context.Context) (domain.Document, error) {
	return i.svc.Document(ctx)
}

func (i *Interactor) Replace(ctx context.Context, doc domain.Document) error {
	return i.svc.Replace(ctx, doc)
}
