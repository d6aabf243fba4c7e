package in

import (
	"context"

	sessiondto "ptrack/internal/modules/session/dto"
	sessionin "ptrack/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, programID string) (sessiondto.StartOutput, error) {
	return h.usecase.Start(ctx, sessiondto.StartInput{ProgramID: programID})
}

func (h CLIHandler) Answer(ctx context.Context, correct bool) (sessiondto.AnswerOutput, error) {
	return h.usecase.Answer(ctx, sessiondto.AnswerInput{Correct: correct})
}

func (h CLIHandler) Save(ctx context.Context) (sessiondto.SaveOutput, error) {
	return h.usecase.Save(ctx)
}

func (h CLIHandler) Cancel(ctx context.Context) (sessiondto.CancelOutput, error) {
	return h.usecase.Cancel(ctx)
}

func (h CLIHandler) Complete(ctx context.Context) (sessiondto.CompleteOutput, error) {
	return h.usecase.Complete(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (sessiondto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}
