package in

import (
	"context"

	"ptrack/internal/modules/report/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.PluginInfo, error)
	Doctor(ctx context.Context) ([]dto.DoctorResult, error)
	ListCommands(ctx context.Context, pluginName string) ([]dto.CommandInfo, error)
	Execute(ctx context.Context, input dto.ExecuteInput) (dto.ExecuteOutput, error)
	Report(ctx context.Context, input dto.ExecuteInput) (dto.ExecuteOutput, error)
	PrepareTTY(ctx context.Context, input dto.TTYPrepareInput) (dto.TTYPrepareOutput, error)
}
