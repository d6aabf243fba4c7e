package out

import (
	"context"

	sessionout "ptrack/internal/modules/session/port/out"
	trackerdomain "ptrack/internal/modules/tracker/domain"
	trackerin "ptrack/internal/modules/tracker/port/in"
)

type TrackerDocumentAdapter struct {
	tracker trackerin.Usecase
}

func NewTrackerDocumentAdapter(tracker trackerin.Usecase) sessionout.DocumentGateway {
	return &TrackerDocumentAdapter{tracker: tracker}
}

func (a *TrackerDocumentAdapter) Document(ctx context.Context) (trackerdomain.Document, error) {
	return a.tracker.Document(ctx)
}

func (a *TrackerDocumentAdapter) Replace(ctx context.Context, doc trackerdomain.Document) error {
	return a.tracker.Replace(ctx, doc)
}
