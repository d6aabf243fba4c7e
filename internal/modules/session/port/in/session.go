package in

import (
	"context"

	"ptrack/internal/modules/session/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	Answer(ctx context.Context, input dto.AnswerInput) (dto.AnswerOutput, error)
	Save(ctx context.Context) (dto.SaveOutput, error)
	Cancel(ctx context.Context) (dto.CancelOutput, error)
	Complete(ctx context.Context) (dto.CompleteOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
}
