package domain_test

import (
	"testing"
	"time"

	"ptrack/internal/modules/tracker/domain"
)

const today = "2026-03-10"

func completed(t time.Time) *time.Time { return &t }

func TestButtonLabelPrecedence(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name     string
		sessions []domain.Session
		want     domain.Label
	}{
		{name: "no sessions", want: domain.LabelStart},
		{
			name:     "open session wins",
			sessions: []domain.Session{{ID: "1", Date: today, CompletedAt: completed(now), Total: 5}, {ID: "2", Date: today, Total: 5}},
			want:     domain.LabelContinue,
		},
		{
			name:     "completed today without open",
			sessions: []domain.Session{{ID: "1", Date: today, CompletedAt: completed(now), Total: 5}},
			want:     domain.LabelDoAgain,
		},
		{
			name:     "only another day",
			sessions: []domain.Session{{ID: "1", Date: "2026-03-09", CompletedAt: completed(now), Total: 5}},
			want:     domain.LabelStart,
		},
		{
			name:     "yesterday left open",
			sessions: []domain.Session{{ID: "1", Date: "2026-03-09", Total: 5}},
			want:     domain.LabelStart,
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := newProgram(5)
			p.Sessions = tc.sessions
			if got := domain.ButtonLabel(&p, today); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestOpenSessionReturnsFirstInOrder(t *testing.T) {
	t.Parallel()
	p := newProgram(5)
	p.Sessions = []domain.Session{
		{ID: "first", Date: today, Total: 5},
		{ID: "second", Date: today, Total: 5},
	}
	s := domain.OpenSession(&p, today)
	if s == nil || s.ID != "first" {
		t.Fatalf("expected first open session in sequence order")
	}
}

func TestLatestSessionOnScansNewestFirst(t *testing.T) {
	t.Parallel()
	p := newProgram(5)
	p.Sessions = []domain.Session{
		{ID: "old", Date: today, CompletedAt: completed(now), Total: 5},
		{ID: "new", Date: today, CompletedAt: completed(now), Total: 5},
	}
	s := domain.LatestSessionOn(&p, today)
	if s == nil || s.ID != "new" {
		t.Fatalf("expected newest session for the day")
	}
}

func TestDisplaySessionPrefersOpen(t *testing.T) {
	t.Parallel()
	p := newProgram(5)
	p.Sessions = []domain.Session{
		{ID: "done", Date: today, CompletedAt: completed(now), Correct: 5, Answered: 5, Total: 5},
		{ID: "live", Date: today, Correct: 1, Answered: 2, Total: 5},
	}
	s := domain.DisplaySession(&p, today)
	if s == nil || s.ID != "live" {
		t.Fatalf("expected the open session's live numbers")
	}
}

func TestBuildCardWithoutSessionsShowsZero(t *testing.T) {
	t.Parallel()
	card := domain.BuildCard(newProgram(5), today)
	if card.Percent != 0 || card.Correct != 0 {
		t.Fatalf("expected zeroed card, got %+v", card)
	}
	if card.Label != domain.LabelStart || card.Done {
		t.Fatalf("expected fresh Start card, got %+v", card)
	}
}

func TestPercentUsesSessionSnapshot(t *testing.T) {
	t.Parallel()
	s := domain.Session{Correct: 3, Answered: 5, Total: 5}
	if s.Percent() != 60 {
		t.Fatalf("expected 60%%, got %d%%", s.Percent())
	}
	if domain.Percent(1, 0) != 0 {
		t.Fatalf("zero denominator must yield 0")
	}
	if domain.Percent(1, 3) != 33 {
		t.Fatalf("expected round-half 33%%, got %d%%", domain.Percent(1, 3))
	}
	if domain.Percent(2, 3) != 67 {
		t.Fatalf("expected round-half 67%%, got %d%%", domain.Percent(2, 3))
	}
}

func TestHasActivityAndSessionsOnDate(t *testing.T) {
	t.Parallel()
	doc := domain.Document{Programs: []domain.Program{
		{ID: "a", Name: "A", TotalQuestions: 5, Sessions: []domain.Session{
			{ID: "s1", Date: "2024-01-05", Correct: 2, Answered: 5, Total: 5, CompletedAt: completed(now)},
		}},
		{ID: "b", Name: "B", TotalQuestions: 3},
	}}
	if !domain.HasActivity(doc, "2024-01-05") {
		t.Fatalf("expected activity on 2024-01-05")
	}
	if domain.HasActivity(doc, "2024-01-06") {
		t.Fatalf("expected no activity on 2024-01-06")
	}
	entries := domain.SessionsOnDate(doc, "2024-01-05")
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0].Program.ID != "a" || entries[0].Session.ID != "s1" {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}
	if entries[0].Session.Percent() != 40 {
		t.Fatalf("expected 40%%, got %d%%", entries[0].Session.Percent())
	}
}
