package domain

import "time"

// StartSession appends a fresh open session for the given day and returns
// a pointer to it. Total snapshots the program's current question count so
// the session's denominator is fixed at creation. Callers are expected to
// check OpenSession first; this constructor does not.
func (p *Program) StartSession(id, day string, now time.Time) *Session {
	p.Sessions = append(p.Sessions, Session{
		ID:        id,
		Date:      day,
		StartedAt: now,
		Correct:   0,
		Answered:  0,
		Total:     p.TotalQuestions,
	})
	return &p.Sessions[len(p.Sessions)-1]
}

// RecordAnswer applies one answer event. Once the question quota is
// exhausted the call is a silent no-op; the answer that exhausts it also
// completes the session inline, there is no separate completion step.
func (s *Session) RecordAnswer(isCorrect bool, now time.Time) {
	if s.Answered >= s.Total {
		return
	}
	s.Answered++
	if isCorrect {
		s.Correct++
	}
	if s.Answered >= s.Total {
		s.MarkComplete(now)
	}
}

// MarkComplete sets the completion timestamp exactly once. Idempotent.
func (s *Session) MarkComplete(now time.Time) {
	if s.CompletedAt != nil {
		return
	}
	t := now
	s.CompletedAt = &t
}

// AbandonSession removes an open session from the program entirely, as
// when a user cancels without saving. Completed sessions are not
// abandonable; the call reports whether anything was removed.
func (p *Program) AbandonSession(sessionID string) bool {
	for i := range p.Sessions {
		if p.Sessions[i].ID != sessionID {
			continue
		}
		if p.Sessions[i].Complete() {
			return false
		}
		p.Sessions = append(p.Sessions[:i], p.Sessions[i+1:]...)
		return true
	}
	return false
}

// Session returns a pointer to the identified session, if present.
func (p *Program) Session(id string) (*Session, bool) {
	for i := range p.Sessions {
		if p.Sessions[i].ID == id {
			return &p.Sessions[i], true
		}
	}
	return nil, false
}
