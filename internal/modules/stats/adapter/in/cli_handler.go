package in

import (
	"context"

	statsdto "ptrack/internal/modules/stats/dto"
	statsin "ptrack/internal/modules/stats/port/in"
)

type CLIHandler struct {
	usecase statsin.Usecase
}

func NewCLIHandler(usecase statsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Overview(ctx context.Context) (statsdto.OverviewOutput, error) {
	return h.usecase.Overview(ctx)
}
