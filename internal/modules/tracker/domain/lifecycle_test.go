package domain_test

import (
	"testing"
	"time"

	"ptrack/internal/modules/tracker/domain"
)

var now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newProgram(total int) domain.Program {
	return domain.Program{
		ID:             "prog-1",
		Name:           "Math",
		TotalQuestions: total,
		Color:          "#6366f1",
		CreatedAt:      now,
	}
}

func TestRecordAnswerKeepsCountsOrdered(t *testing.T) {
	t.Parallel()
	p := newProgram(5)
	s := p.StartSession("sess-1", "2026-03-10", now)
	answers := []bool{true, true, false, true, false}
	for _, ok := range answers {
		s.RecordAnswer(ok, now)
		if s.Correct > s.Answered || s.Answered > s.Total || s.Correct < 0 {
			t.Fatalf("count invariant broken: correct=%d answered=%d total=%d", s.Correct, s.Answered, s.Total)
		}
	}
	if s.Answered != 5 || s.Correct != 3 {
		t.Fatalf("expected 3/5, got %d/%d", s.Correct, s.Answered)
	}
	if !s.Complete() {
		t.Fatalf("session should have auto-completed")
	}
	if s.Percent() != 60 {
		t.Fatalf("expected 60%%, got %d%%", s.Percent())
	}
}

func TestRecordAnswerNoopOnceExhausted(t *testing.T) {
	t.Parallel()
	p := newProgram(2)
	s := p.StartSession("sess-1", "2026-03-10", now)
	s.RecordAnswer(true, now)
	s.RecordAnswer(false, now)
	completedAt := s.CompletedAt
	if completedAt == nil {
		t.Fatalf("expected auto-completion at quota")
	}
	for i := 0; i < 4; i++ {
		s.RecordAnswer(true, now.Add(time.Hour))
	}
	if s.Answered != 2 || s.Correct != 1 {
		t.Fatalf("over-answering changed counts: correct=%d answered=%d", s.Correct, s.Answered)
	}
	if s.CompletedAt != completedAt {
		t.Fatalf("over-answering changed completion timestamp")
	}
}

func TestAutoCompletionFiresExactlyAtQuota(t *testing.T) {
	t.Parallel()
	p := newProgram(3)
	s := p.StartSession("sess-1", "2026-03-10", now)
	s.RecordAnswer(true, now)
	s.RecordAnswer(true, now)
	if s.Complete() {
		t.Fatalf("completed before quota")
	}
	s.RecordAnswer(false, now)
	if !s.Complete() {
		t.Fatalf("the answer reaching the quota must complete the session")
	}
}

func TestMarkCompleteIdempotent(t *testing.T) {
	t.Parallel()
	p := newProgram(5)
	s := p.StartSession("sess-1", "2026-03-10", now)
	s.MarkComplete(now)
	first := s.CompletedAt
	s.MarkComplete(now.Add(time.Hour))
	if s.CompletedAt != first {
		t.Fatalf("second MarkComplete must not move the timestamp")
	}
}

func TestAbandonSessionRemovesOnlyOpen(t *testing.T) {
	t.Parallel()
	p := newProgram(2)
	open := p.StartSession("sess-open", "2026-03-10", now)
	_ = open
	done := p.StartSession("sess-done", "2026-03-10", now)
	done.MarkComplete(now)

	if !p.AbandonSession("sess-open") {
		t.Fatalf("open session should be abandonable")
	}
	if len(p.Sessions) != 1 {
		t.Fatalf("expected one session left, got %d", len(p.Sessions))
	}
	if p.AbandonSession("sess-done") {
		t.Fatalf("completed session must not be abandonable")
	}
	if p.AbandonSession("missing") {
		t.Fatalf("unknown session id should be a no-op")
	}
}

func TestRemovePrograms(t *testing.T) {
	t.Parallel()
	doc := domain.Document{Programs: []domain.Program{
		{ID: "a", Name: "A", TotalQuestions: 1},
		{ID: "b", Name: "B", TotalQuestions: 1},
		{ID: "c", Name: "C", TotalQuestions: 1},
	}}
	removed := doc.RemovePrograms([]string{"a", "c", "ghost"})
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if len(doc.Programs) != 1 || doc.Programs[0].ID != "b" {
		t.Fatalf("unexpected survivors: %+v", doc.Programs)
	}
}

func TestProgramValidate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		program   domain.Program
		shouldErr bool
	}{
		{name: "valid", program: domain.Program{ID: "p", Name: "Math", TotalQuestions: 5}, shouldErr: false},
		{name: "blank name", program: domain.Program{ID: "p", Name: "  ", TotalQuestions: 5}, shouldErr: true},
		{name: "zero questions", program: domain.Program{ID: "p", Name: "Math", TotalQuestions: 0}, shouldErr: true},
		{name: "missing id", program: domain.Program{Name: "Math", TotalQuestions: 5}, shouldErr: true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.program.Validate()
			if tc.shouldErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.shouldErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
