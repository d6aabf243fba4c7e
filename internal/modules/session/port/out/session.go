package out

import (
	"context"

	"ptrack/internal/modules/session/domain"
	trackerdomain "ptrack/internal/modules/tracker/domain"
)

// DocumentGateway gives the session lifecycle access to the tracked
// document without owning its persistence.
type DocumentGateway interface {
	Document(ctx context.Context) (trackerdomain.Document, error)
	Replace(ctx context.Context, doc trackerdomain.Document) error
}

type ActiveSessionStore interface {
	SaveActive(ctx context.Context, session domain.ActiveSession) error
	LoadActive(ctx context.Context) (domain.ActiveSession, error)
	ClearActive(ctx context.Context) error
}
