package usecase

import (
	"context"
	"errors"
	"fmt"

	"ptrack/internal/modules/session/domain"
	sessiondto "ptrack/internal/modules/session/dto"
	sessionin "ptrack/internal/modules/session/port/in"
	sessionout "ptrack/internal/modules/session/port/out"
	"ptrack/internal/modules/session/service"
	trackerdomain "ptrack/internal/modules/tracker/domain"
	apperrors "ptrack/internal/platform/errors"
)

type Interactor struct {
	svc         *service.SessionService
	gateway     sessionout.DocumentGateway
	activeStore sessionout.ActiveSessionStore
}

func NewInteractor(svc *service.SessionService, gateway sessionout.DocumentGateway, activeStore sessionout.ActiveSessionStore) sessionin.Usecase {
	return &Interactor{svc: svc, gateway: gateway, activeStore: activeStore}
}

func (i *Interactor) Start(ctx context.Context, input sessiondto.StartInput) (sessiondto.StartOutput, error) {
	if input.ProgramID == "" {
		return sessiondto.StartOutput{}, fmt.Errorf("%w: program id is required", apperrors.ErrInvalidInput)
	}

	active, err := i.activeStore.LoadActive(ctx)
	switch {
	case err == nil && active.ProgramID != input.ProgramID:
		return sessiondto.StartOutput{}, apperrors.ErrActiveSessionExists
	case err != nil && !errors.Is(err, apperrors.ErrNoActiveSession):
		return sessiondto.StartOutput{}, err
	}

	doc, err := i.gateway.Document(ctx)
	if err != nil {
		return sessiondto.StartOutput{}, err
	}
	program, ok := doc.Program(input.ProgramID)
	if !ok {
		return sessiondto.StartOutput{}, fmt.Errorf("%w: program %s", apperrors.ErrNotFound, input.ProgramID)
	}

	sess, resumed := i.svc.Start(program)
	if !resumed {
		if err := i.gateway.Replace(ctx, doc); err != nil {
			return sessiondto.StartOutput{}, err
		}
	}
	pointer := domain.ActiveSession{
		SessionID:   sess.ID,
		ProgramID:   program.ID,
		ProgramName: program.Name,
		StartedAt:   sess.StartedAt,
	}
	if err := i.activeStore.SaveActive(ctx, pointer); err != nil {
		return sessiondto.StartOutput{}, err
	}
	return sessiondto.StartOutput{
		SessionID:   sess.ID,
		ProgramID:   program.ID,
		ProgramName: program.Name,
		StartedAt:   sess.StartedAt,
		Resumed:     resumed,
		Correct:     sess.Correct,
		Answered:    sess.Answered,
		Total:       sess.Total,
	}, nil
}

func (i *Interactor) Answer(ctx context.Context, input sessiondto.AnswerInput) (sessiondto.AnswerOutput, error) {
	_, sess, doc, err := i.resolve(ctx)
	if err != nil {
		return sessiondto.AnswerOutput{}, err
	}
	if sess.Complete() {
		return sessiondto.AnswerOutput{}, apperrors.ErrSessionComplete
	}

	i.svc.Answer(sess, input.Correct)
	if err := i.gateway.Replace(ctx, doc); err != nil {
		return sessiondto.AnswerOutput{}, err
	}
	if sess.Complete() {
		if err := i.activeStore.ClearActive(ctx); err != nil {
			return sessiondto.AnswerOutput{}, err
		}
	}
	return sessiondto.AnswerOutput{
		SessionID: sess.ID,
		Correct:   sess.Correct,
		Answered:  sess.Answered,
		Total:     sess.Total,
		Percent:   sess.Percent(),
		Completed: sess.Complete(),
	}, nil
}

func (i *Interactor) Save(ctx context.Context) (sessiondto.SaveOutput, error) {
	_, sess, doc, err := i.resolve(ctx)
	if err != nil {
		return sessiondto.SaveOutput{}, err
	}
	if err := i.gateway.Replace(ctx, doc); err != nil {
		return sessiondto.SaveOutput{}, err
	}
	if err := i.activeStore.ClearActive(ctx); err != nil {
		return sessiondto.SaveOutput{}, err
	}
	return sessiondto.SaveOutput{
		SessionID: sess.ID,
		Correct:   sess.Correct,
		Answered:  sess.Answered,
		Total:     sess.Total,
		Percent:   sess.Percent(),
		Completed: sess.Complete(),
	}, nil
}

func (i *Interactor) Cancel(ctx context.Context) (sessiondto.CancelOutput, error) {
	program, sess, doc, err := i.resolve(ctx)
	if err != nil {
		return sessiondto.CancelOutput{}, err
	}
	if sess.Complete() {
		return sessiondto.CancelOutput{}, apperrors.ErrSessionComplete
	}
	program.AbandonSession(sess.ID)
	if err := i.gateway.Replace(ctx, doc); err != nil {
		return sessiondto.CancelOutput{}, err
	}
	if err := i.activeStore.ClearActive(ctx); err != nil {
		return sessiondto.CancelOutput{}, err
	}
	return sessiondto.CancelOutput{SessionID: sess.ID, ProgramID: program.ID}, nil
}

func (i *Interactor) Complete(ctx context.Context) (sessiondto.CompleteOutput, error) {
	_, sess, doc, err := i.resolve(ctx)
	if err != nil {
		return sessiondto.CompleteOutput{}, err
	}
	i.svc.Complete(sess)
	if err := i.gateway.Replace(ctx, doc); err != nil {
		return sessiondto.CompleteOutput{}, err
	}
	if err := i.activeStore.ClearActive(ctx); err != nil {
		return sessiondto.CompleteOutput{}, err
	}
	return sessiondto.CompleteOutput{
		SessionID: sess.ID,
		Correct:   sess.Correct,
		Total:     sess.Total,
		Percent:   sess.Percent(),
	}, nil
}

func (i *Interactor) Status(ctx context.Context) (sessiondto.StatusOutput, error) {
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return sessiondto.StatusOutput{}, err
	}
	_, sess, _, err := i.resolve(ctx)
	if err != nil {
		return sessiondto.StatusOutput{}, err
	}
	return sessiondto.StatusOutput{
		SessionID:   sess.ID,
		ProgramID:   active.ProgramID,
		ProgramName: active.ProgramName,
		StartedAt:   active.StartedAt,
		Correct:     sess.Correct,
		Answered:    sess.Answered,
		Total:       sess.Total,
		Percent:     sess.Percent(),
	}, nil
}

// resolve dereferences the active pointer into live document state. A
// pointer left pointing at a deleted program or session is cleared and
// reported as no active session.
func (i *Interactor) resolve(ctx context.Context) (*trackerdomain.Program, *trackerdomain.Session, trackerdomain.Document, error) {
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return nil, nil, trackerdomain.Document{}, err
	}
	doc, err := i.gateway.Document(ctx)
	if err != nil {
		return nil, nil, trackerdomain.Document{}, err
	}
	program, ok := doc.Program(active.ProgramID)
	if !ok {
		_ = i.activeStore.ClearActive(ctx)
		return nil, nil, trackerdomain.Document{}, apperrors.ErrNoActiveSession
	}
	sess, ok := program.Session(active.SessionID)
	if !ok {
		_ = i.activeStore.ClearActive(ctx)
		return nil, nil, trackerdomain.Document{}, apperrors.ErrNoActiveSession
	}
	return program, sess, doc, nil
}
