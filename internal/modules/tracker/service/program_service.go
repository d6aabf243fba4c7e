package service

import (
	"context"
	"fmt"
	"strings"

	"ptrack/internal/modules/tracker/domain"
	trackerout "ptrack/internal/modules/tracker/port/out"
	"ptrack/internal/platform/clock"
	apperrors "ptrack/internal/platform/errors"
	"ptrack/internal/platform/id"
	"ptrack/internal/platform/palette"
)

type ProgramService struct {
	clock     clock.Clock
	idGen     id.Generator
	picker    palette.Picker
	store     trackerout.DocumentStore
	projector trackerout.ActivityProjector
}

func NewProgramService(clock clock.Clock, idGen id.Generator, picker palette.Picker, store trackerout.DocumentStore, projector trackerout.ActivityProjector) *ProgramService {
	return &ProgramService{clock: clock, idGen: idGen, picker: picker, store: store, projector: projector}
}

func (s *ProgramService) CreateProgram(ctx context.Context, name string, totalQuestions int) (domain.Program, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Program{}, fmt.Errorf("%w: program name is required", apperrors.ErrInvalidInput)
	}
	if totalQuestions < 1 {
		return domain.Program{}, fmt.Errorf("%w: total questions must be positive", apperrors.ErrInvalidInput)
	}
	doc, err := s.store.Load(ctx)
	if err != nil {
		return domain.Program{}, err
	}
	program := domain.Program{
		ID:             s.idGen.New(),
		Name:           name,
		TotalQuestions: totalQuestions,
		Color:          s.picker.Pick(),
		CreatedAt:      s.clock.Now(),
	}
	if err := program.Validate(); err != nil {
		return domain.Program{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	doc.Programs = append(doc.Programs, program)
	if err := s.persist(ctx, doc); err != nil {
		return domain.Program{}, err
	}
	return program, nil
}

// Cards derives every program's display state for today.
func (s *ProgramService) Cards(ctx context.Context) ([]domain.Card, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Cards(doc, domain.DateOf(s.clock.Now())), nil
}

func (s *ProgramService) GetProgram(ctx context.Context, programID string) (domain.Program, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return domain.Program{}, err
	}
	program, ok := doc.Program(programID)
	if !ok {
		return domain.Program{}, fmt.Errorf("%w: program %s", apperrors.ErrNotFound, programID)
	}
	return *program, nil
}

func (s *ProgramService) DeletePrograms(ctx context.Context, ids []string) (int, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return 0, err
	}
	removed := doc.RemovePrograms(ids)
	if removed == 0 {
		return 0, nil
	}
	if err := s.persist(ctx, doc); err != nil {
		return 0, err
	}
	return removed, nil
}

func (s *ProgramService) Document(ctx context.Context) (domain.Document, error) {
	return s.store.Load(ctx)
}

// Replace persists a document mutated elsewhere (the session module) and
// refreshes the activity index.
func (s *ProgramService) Replace(ctx context.Context, doc domain.Document) error {
	return s.persist(ctx, doc)
}

func (s *ProgramService) Reindex(ctx context.Context) error {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	return s.projector.Rebuild(ctx, doc)
}

func (s *ProgramService) persist(ctx context.Context, doc domain.Document) error {
	if err := s.store.Save(ctx, doc); err != nil {
		return err
	}
	if s.projector == nil {
		return nil
	}
	return s.projector.Rebuild(ctx, doc)
}
