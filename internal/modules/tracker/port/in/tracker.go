package in

import (
	"context"

	"ptrack/internal/modules/tracker/domain"
	"ptrack/internal/modules/tracker/dto"
)

type Usecase interface {
	CreateProgram(ctx context.Context, input dto.CreateProgramInput) (dto.ProgramOutput, error)
	ListPrograms(ctx context.Context) ([]dto.CardOutput, error)
	GetProgram(ctx context.Context, id string) (dto.ProgramDetailOutput, error)
	DeletePrograms(ctx context.Context, input dto.DeleteProgramsInput) (dto.DeleteProgramsOutput, error)
	Reindex(ctx context.Context) error

	// Document-level access for sibling modules that mutate sessions or
	// aggregate across programs. Replace persists and reprojects.
	Document(ctx context.Context) (domain.Document, error)
	Replace(ctx context.Context, doc domain.Document) error
}
