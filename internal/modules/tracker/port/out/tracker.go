package out

import (
	"context"

	"ptrack/internal/modules/tracker/domain"
)

// DocumentStore owns the single persisted document. Load fails soft:
// an absent or unreadable store yields a fresh empty document, never an
// error the caller has to branch on.
type DocumentStore interface {
	Load(ctx context.Context) (domain.Document, error)
	Save(ctx context.Context, doc domain.Document) error
}

// ActivityProjector maintains the rebuildable session index the calendar
// and stats read models query.
type ActivityProjector interface {
	Rebuild(ctx context.Context, doc domain.Document) error
}
