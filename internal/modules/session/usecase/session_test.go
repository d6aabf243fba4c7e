package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	sessionout "ptrack/internal/modules/session/adapter/out"
	sessiondto "ptrack/internal/modules/session/dto"
	sessionin "ptrack/internal/modules/session/port/in"
	"ptrack/internal/modules/session/service"
	"ptrack/internal/modules/session/usecase"
	trackerdomain "ptrack/internal/modules/tracker/domain"
	apperrors "ptrack/internal/platform/errors"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type seqID struct {
	n int
}

func (s *seqID) New() string {
	s.n++
	return fmt.Sprintf("sess-%d", s.n)
}

// memGateway keeps the document in memory and counts replaces so tests
// can assert on persistence traffic.
type memGateway struct {
	doc      trackerdomain.Document
	replaces int
}

func (g *memGateway) Document(context.Context) (trackerdomain.Document, error) {
	return g.doc, nil
}

func (g *memGateway) Replace(_ context.Context, doc trackerdomain.Document) error {
	g.doc = doc
	g.replaces++
	return nil
}

func newFixture(t *testing.T, programs ...trackerdomain.Program) (sessionin.Usecase, *memGateway) {
	t.Helper()
	clk := &fakeClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	gateway := &memGateway{doc: trackerdomain.Document{Programs: programs}}
	svc := service.NewSessionService(clk, &seqID{})
	uc := usecase.NewInteractor(svc, gateway, sessionout.NewFileActiveSessionStore(t.TempDir()))
	return uc, gateway
}

func mathProgram(total int) trackerdomain.Program {
	return trackerdomain.Program{
		ID:             "p-math",
		Name:           "Math",
		TotalQuestions: total,
		Color:          "#6366f1",
		CreatedAt:      time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestAnswerLifecycleAutoCompletesAtQuota(t *testing.T) {
	t.Parallel()
	uc, gateway := newFixture(t, mathProgram(5))

	start, err := uc.Start(context.Background(), sessiondto.StartInput{ProgramID: "p-math"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if start.Resumed || start.Total != 5 {
		t.Fatalf("expected fresh session with total 5, got %+v", start)
	}

	answers := []bool{true, true, false, true, false}
	var last sessiondto.AnswerOutput
	for n, correct := range answers {
		last, err = uc.Answer(context.Background(), sessiondto.AnswerInput{Correct: correct})
		if err != nil {
			t.Fatalf("answer %d: %v", n+1, err)
		}
	}
	if !last.Completed {
		t.Fatalf("fifth answer must complete the session, got %+v", last)
	}
	if last.Correct != 3 || last.Answered != 5 || last.Percent != 60 {
		t.Fatalf("expected 3/5 at 60%%, got %+v", last)
	}

	// Auto-completion releases the pointer.
	if _, err := uc.Answer(context.Background(), sessiondto.AnswerInput{Correct: true}); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession after completion, got %v", err)
	}

	sess := gateway.doc.Programs[0].Sessions[0]
	if !sess.Complete() || sess.Correct != 3 {
		t.Fatalf("persisted session not completed as expected: %+v", sess)
	}
}

func TestStartResumesOpenSession(t *testing.T) {
	t.Parallel()
	uc, _ := newFixture(t, mathProgram(5))

	start, err := uc.Start(context.Background(), sessiondto.StartInput{ProgramID: "p-math"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := uc.Answer(context.Background(), sessiondto.AnswerInput{Correct: true}); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if _, err := uc.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}

	again, err := uc.Start(context.Background(), sessiondto.StartInput{ProgramID: "p-math"})
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if !again.Resumed || again.SessionID != start.SessionID {
		t.Fatalf("expected resume of %s, got %+v", start.SessionID, again)
	}
	if again.Correct != 1 || again.Answered != 1 {
		t.Fatalf("resumed counts must survive, got %+v", again)
	}
}

func TestStartRefusedWhileAnotherProgramIsActive(t *testing.T) {
	t.Parallel()
	other := mathProgram(5)
	other.ID = "p-phys"
	other.Name = "Physics"
	uc, _ := newFixture(t, mathProgram(5), other)

	if _, err := uc.Start(context.Background(), sessiondto.StartInput{ProgramID: "p-math"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := uc.Start(context.Background(), sessiondto.StartInput{ProgramID: "p-phys"}); !errors.Is(err, apperrors.ErrActiveSessionExists) {
		t.Fatalf("expected ErrActiveSessionExists, got %v", err)
	}
}

func TestCancelRemovesTheOpenSession(t *testing.T) {
	t.Parallel()
	uc, gateway := newFixture(t, mathProgram(5))

	if _, err := uc.Start(context.Background(), sessiondto.StartInput{ProgramID: "p-math"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := uc.Answer(context.Background(), sessiondto.AnswerInput{Correct: true}); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if _, err := uc.Cancel(context.Background()); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if n := len(gateway.doc.Programs[0].Sessions); n != 0 {
		t.Fatalf("cancel must remove the session entirely, %d left", n)
	}
	if _, err := uc.Status(context.Background()); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession after cancel, got %v", err)
	}
}

func TestSaveKeepsSessionOpenAndClearsPointer(t *testing.T) {
	t.Parallel()
	uc, gateway := newFixture(t, mathProgram(5))

	if _, err := uc.Start(context.Background(), sessiondto.StartInput{ProgramID: "p-math"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := uc.Answer(context.Background(), sessiondto.AnswerInput{Correct: false}); err != nil {
		t.Fatalf("answer: %v", err)
	}
	saved, err := uc.Save(context.Background())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.Completed || saved.Answered != 1 {
		t.Fatalf("save must not complete the session, got %+v", saved)
	}

	sess := gateway.doc.Programs[0].Sessions[0]
	if sess.Complete() {
		t.Fatalf("saved session must stay open: %+v", sess)
	}
	if _, err := uc.Status(context.Background()); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("expected cleared pointer after save, got %v", err)
	}
}

func TestCompleteIsExplicitAndFinal(t *testing.T) {
	t.Parallel()
	uc, gateway := newFixture(t, mathProgram(5))

	if _, err := uc.Start(context.Background(), sessiondto.StartInput{ProgramID: "p-math"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := uc.Answer(context.Background(), sessiondto.AnswerInput{Correct: true}); err != nil {
		t.Fatalf("answer: %v", err)
	}
	out, err := uc.Complete(context.Background())
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out.Correct != 1 || out.Percent != 20 {
		t.Fatalf("expected 1/5 at 20%%, got %+v", out)
	}

	sess := gateway.doc.Programs[0].Sessions[0]
	if !sess.Complete() {
		t.Fatalf("session must be completed: %+v", sess)
	}
	if _, err := uc.Cancel(context.Background()); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession after complete, got %v", err)
	}
}

func TestStalePointerIsClearedNotFatal(t *testing.T) {
	t.Parallel()
	uc, gateway := newFixture(t, mathProgram(5))

	if _, err := uc.Start(context.Background(), sessiondto.StartInput{ProgramID: "p-math"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	gateway.doc.RemovePrograms([]string{"p-math"})

	if _, err := uc.Status(context.Background()); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession for stale pointer, got %v", err)
	}
	// A start on a fresh program now succeeds; the stale pointer is gone.
	gateway.doc.Programs = append(gateway.doc.Programs, mathProgram(5))
	if _, err := uc.Start(context.Background(), sessiondto.StartInput{ProgramID: "p-math"}); err != nil {
		t.Fatalf("start after stale pointer: %v", err)
	}
}

func TestStartUnknownProgram(t *testing.T) {
	t.Parallel()
	uc, _ := newFixture(t)
	if _, err := uc.Start(context.Background(), sessiondto.StartInput{ProgramID: "nope"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
