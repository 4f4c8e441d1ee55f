package subject

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/studymate/studymate/internal/event_bus"
)

type Service interface {
	List(ctx context.Context) ([]Subject, error)
	Add(ctx context.Context, subject Subject) (Subject, error)
	Update(ctx context.Context, subject Subject) (Subject, error)
	Delete(ctx context.Context, id string) error
}

type ServiceImpl struct {
	repo     Repository
	eventBus *event_bus.EventBus
}

func NewService(repo Repository, eventBus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, eventBus: eventBus}
}

func (s *ServiceImpl) List(ctx context.Context) ([]Subject, error) {
	subjects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}
	return subjects, nil
}

func (s *ServiceImpl) Add(ctx context.Context, subject Subject) (Subject, error) {
	subject = normalize(subject)
	if err := subject.Validate(); err != nil {
		return Subject{}, err
	}
	subject.Id = uuid.NewString()

	added, err := s.repo.Add(ctx, subject)
	if err != nil {
		return Subject{}, fmt.Errorf("failed to add subject: %w", err)
	}
	log.Debugf("subject added: %s (%dh/week, %s)", added.Name, added.WeeklyHours, added.Difficulty)
	s.publishChanged(ctx)
	return added, nil
}

// Update changes the subject with changes.Id. Zero fields of changes keep the
// stored value.
func (s *ServiceImpl) Update(ctx context.Context, changes Subject) (Subject, error) {
	subjects, err := s.repo.List(ctx)
	if err != nil {
		return Subject{}, fmt.Errorf("failed to list subjects: %w", err)
	}
	idx := slices.IndexFunc(subjects, func(stored Subject) bool { return stored.Id == changes.Id })
	if idx < 0 {
		return Subject{}, ErrSubjectNotFound
	}

	subject := merge(subjects[idx], changes)
	if err := subject.Validate(); err != nil {
		return Subject{}, err
	}
	updated, err := s.repo.Update(ctx, subject)
	if err != nil {
		return Subject{}, err
	}
	s.publishChanged(ctx)
	return updated, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publishChanged(ctx)
	return nil
}

func (s *ServiceImpl) publishChanged(ctx context.Context) {
	if s.eventBus == nil {
		return
	}
	subjects, err := s.repo.List(ctx)
	if err != nil {
		log.Errorf("failed to count subjects after change: %v", err)
		return
	}
	event := event_bus.NewEvent(ctx, event_bus.SubjectsChanged, event_bus.SubjectListChanged{Count: len(subjects)})
	if err := s.eventBus.Publish(event); err != nil {
		log.Errorf("failed to publish subject change: %v", err)
	}
}

func merge(stored Subject, changes Subject) Subject {
	if name := strings.TrimSpace(changes.Name); name != "" {
		stored.Name = name
	}
	if changes.WeeklyHours != 0 {
		stored.WeeklyHours = changes.WeeklyHours
	}
	if changes.Difficulty != "" {
		stored.Difficulty = changes.Difficulty
	}
	if changes.Color != "" {
		stored.Color = changes.Color
	}
	if changes.ExamDate != "" {
		stored.ExamDate = changes.ExamDate
	}
	if changes.Notes != "" {
		stored.Notes = changes.Notes
	}
	return stored
}

func normalize(subject Subject) Subject {
	subject.Name = strings.TrimSpace(subject.Name)
	if subject.Difficulty == "" {
		subject.Difficulty = Medium
	}
	if subject.Color == "" {
		subject.Color = DefaultColor
	}
	return subject
}
