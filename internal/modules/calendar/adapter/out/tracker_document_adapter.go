package out

import (
	"context"

	calendarout "ptrack/internal/modules/calendar/port/out"
	trackerdomain "ptrack/internal/modules/tracker/domain"
	trackerin "ptrack/internal/modules/tracker/port/in"
)

type TrackerDocumentAdapter struct {
	tracker trackerin.Usecase
}

func NewTrackerDocumentAdapter(tracker trackerin.Usecase) calendarout.DocumentGateway {
	return &TrackerDocumentAdapter{tracker: tracker}
}

func (a *TrackerDocumentAdapter) Document(ctx context.Context) (trackerdomain.Document, error) {
	return a.tracker.Document(ctx)
}
