package timetable

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/studymate/studymate/internal/event_bus"
	"github.com/studymate/studymate/internal/utils"
)

var ErrSlotNotFound = errors.New("slot not found")
var ErrNotStudySlot = errors.New("only study slots can be completed")

type Service interface {
	Generate(ctx context.Context, prefs Preferences) (Plan, error)
	Current(ctx context.Context) (Plan, error)
	SetCompleted(ctx context.Context, ref SlotRef, completed bool) (Plan, error)
}

type ServiceImpl struct {
	repo      Repository
	subjects  SubjectReader
	generator *Generator
	clock     utils.Clock
}

func NewService(repo Repository, subjects SubjectReader, generator *Generator, clock utils.Clock, eventBus *event_bus.EventBus) *ServiceImpl {
	service := &ServiceImpl{repo: repo, subjects: subjects, generator: generator, clock: clock}
	if eventBus != nil {
		event_bus.SubscribeTyped[event_bus.SubjectListChanged](
			eventBus,
			event_bus.SubjectsChanged,
			func(e event_bus.EventT[event_bus.SubjectListChanged]) error {
				log.Debugf("received subject change event: %d subjects", e.Data.Count)
				return service.markStale(e.Context())
			},
		)
	}
	return service
}

// Generate builds a new timetable from the session's subjects and replaces the
// stored plan. An empty subject list gives a week without sessions.
func (s *ServiceImpl) Generate(ctx context.Context, prefs Preferences) (Plan, error) {
	if err := prefs.Validate(); err != nil {
		return Plan{}, err
	}
	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return Plan{}, fmt.Errorf("failed to get subjects: %w", err)
	}

	timetable, tokens := s.generator.Generate(subjects, prefs)
	plan := Plan{
		Timetable:     timetable,
		Preferences:   prefs,
		GeneratedAt:   s.clock.Now(),
		SessionTokens: tokens,
		Completed:     map[SlotRef]bool{},
	}
	if err := s.repo.StorePlan(ctx, plan); err != nil {
		return Plan{}, fmt.Errorf("failed to store timetable: %w", err)
	}
	log.Infof("timetable generated: %d sessions placed, %d dropped", plan.Placed(), plan.Dropped())
	return plan, nil
}

func (s *ServiceImpl) Current(ctx context.Context) (Plan, error) {
	return s.repo.GetPlan(ctx)
}

func (s *ServiceImpl) SetCompleted(ctx context.Context, ref SlotRef, completed bool) (Plan, error) {
	return s.repo.UpdatePlan(ctx, func(plan *Plan) error {
		if ref.Day < 0 || ref.Day >= DaysPerWeek || ref.Index < 0 || ref.Index >= len(plan.Timetable[ref.Day]) {
			return ErrSlotNotFound
		}
		if plan.Timetable[ref.Day][ref.Index].Kind != Study {
			return ErrNotStudySlot
		}
		if plan.Completed == nil {
			plan.Completed = map[SlotRef]bool{}
		}
		if completed {
			plan.Completed[ref] = true
		} else {
			delete(plan.Completed, ref)
		}
		return nil
	})
}

func (s *ServiceImpl) markStale(ctx context.Context) error {
	_, err := s.repo.UpdatePlan(ctx, func(plan *Plan) error {
		plan.Stale = true
		return nil
	})
	if errors.Is(err, ErrNoTimetable) {
		return nil
	}
	return err
}
