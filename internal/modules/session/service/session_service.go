package service

import (
	trackerdomain "ptrack/internal/modules/tracker/domain"
	"ptrack/internal/platform/clock"
	"ptrack/internal/platform/id"
)

// SessionService applies the answer lifecycle to a program's session
// sequence. It mutates documents in place; persistence stays with the
// caller.
type SessionService struct {
	clock clock.Clock
	idGen id.Generator
}

func NewSessionService(clock clock.Clock, idGen id.Generator) *SessionService {
	return &SessionService{clock: clock, idGen: idGen}
}

// Start resumes today's open session when one exists, otherwise appends
// a fresh one. The second return reports whether an existing session was
// resumed.
func (s *SessionService) Start(p *trackerdomain.Program) (*trackerdomain.Session, bool) {
	day := trackerdomain.DateOf(s.clock.Now())
	if open := trackerdomain.OpenSession(p, day); open != nil {
		return open, true
	}
	return p.StartSession(s.idGen.New(), day, s.clock.Now()), false
}

func (s *SessionService) Answer(sess *trackerdomain.Session, correct bool) {
	sess.RecordAnswer(correct, s.clock.Now())
}

func (s *SessionService) Complete(sess *trackerdomain.Session) {
	sess.MarkComplete(s.clock.Now())
}
