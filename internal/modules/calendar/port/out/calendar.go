package out

import (
	"context"

	trackerdomain "ptrack/internal/modules/tracker/domain"
)

// ActivityIndex answers date-range activity queries from the projected
// SQLite read model.
type ActivityIndex interface {
	DaysWithActivity(ctx context.Context, from, to string) (map[string]bool, error)
}

type DocumentGateway interface {
	Document(ctx context.Context) (trackerdomain.Document, error)
}
