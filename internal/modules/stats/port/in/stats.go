package in

import (
	"context"

	"ptrack/internal/modules/stats/dto"
)

type Usecase interface {
	Overview(ctx context.Context) (dto.OverviewOutput, error)
}
