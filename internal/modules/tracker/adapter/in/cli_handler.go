package in

import (
	"context"

	"ptrack/internal/modules/tracker/dto"
	trackerin "ptrack/internal/modules/tracker/port/in"
)

type CLIHandler struct {
	usecase trackerin.Usecase
}

func NewCLIHandler(usecase trackerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) CreateProgram(ctx context.Context, name string, totalQuestions int) (dto.ProgramOutput, error) {
	return h.usecase.CreateProgram(ctx, dto.CreateProgramInput{Name: name, TotalQuestions: totalQuestions})
}

func (h CLIHandler) ListPrograms(ctx context.Context) ([]dto.CardOutput, error) {
	return h.usecase.ListPrograms(ctx)
}

func (h CLIHandler) GetProgram(ctx context.Context, id string) (dto.ProgramDetailOutput, error) {
	return h.usecase.GetProgram(ctx, id)
}

func (h CLIHandler) DeletePrograms(ctx context.Context, ids []string) (dto.DeleteProgramsOutput, error) {
	return h.usecase.DeletePrograms(ctx, dto.DeleteProgramsInput{IDs: ids})
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
