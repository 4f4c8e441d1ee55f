package session

import (
	"context"
	"slices"

	"github.com/studymate/studymate/pkg/subject"
	"github.com/studymate/studymate/pkg/timetable"
	"github.com/studymate/studymate/pkg/user"
)

// SubjectRepository serves the subject list of the session found in the context.
type SubjectRepository struct {
	store *Store
}

func NewSubjectRepository(store *Store) *SubjectRepository {
	return &SubjectRepository{store: store}
}

func (r *SubjectRepository) List(ctx context.Context) ([]subject.Subject, error) {
	state, err := current(ctx, r.store)
	if err != nil {
		return nil, err
	}
	return state.Subjects, nil
}

func (r *SubjectRepository) Add(ctx context.Context, s subject.Subject) (subject.Subject, error) {
	_, err := update(ctx, r.store, func(state *State) error {
		state.Subjects = append(state.Subjects, s)
		return nil
	})
	if err != nil {
		return subject.Subject{}, err
	}
	return s, nil
}

func (r *SubjectRepository) Update(ctx context.Context, s subject.Subject) (subject.Subject, error) {
	_, err := update(ctx, r.store, func(state *State) error {
		idx := indexOf(state.Subjects, s.Id)
		if idx < 0 {
			return subject.ErrSubjectNotFound
		}
		state.Subjects[idx] = s
		return nil
	})
	if err != nil {
		return subject.Subject{}, err
	}
	return s, nil
}

func (r *SubjectRepository) Delete(ctx context.Context, id string) error {
	_, err := update(ctx, r.store, func(state *State) error {
		idx := indexOf(state.Subjects, id)
		if idx < 0 {
			return subject.ErrSubjectNotFound
		}
		state.Subjects = slices.Delete(state.Subjects, idx, idx+1)
		return nil
	})
	return err
}

// TimetableRepository serves the plan of the session found in the context.
type TimetableRepository struct {
	store *Store
}

func NewTimetableRepository(store *Store) *TimetableRepository {
	return &TimetableRepository{store: store}
}

func (r *TimetableRepository) GetPlan(ctx context.Context) (timetable.Plan, error) {
	state, err := current(ctx, r.store)
	if err != nil {
		return timetable.Plan{}, err
	}
	if state.Plan == nil {
		return timetable.Plan{}, timetable.ErrNoTimetable
	}
	return *state.Plan, nil
}

func (r *TimetableRepository) StorePlan(ctx context.Context, plan timetable.Plan) error {
	_, err := update(ctx, r.store, func(state *State) error {
		stored := copyPlan(plan)
		state.Plan = &stored
		return nil
	})
	return err
}

func (r *TimetableRepository) UpdatePlan(ctx context.Context, fn func(plan *timetable.Plan) error) (timetable.Plan, error) {
	state, err := update(ctx, r.store, func(state *State) error {
		if state.Plan == nil {
			return timetable.ErrNoTimetable
		}
		return fn(state.Plan)
	})
	if err != nil {
		return timetable.Plan{}, err
	}
	return *state.Plan, nil
}

// UserRepository serves the login part of the session found in the context.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) GetLogin(ctx context.Context) (user.Login, error) {
	state, err := current(ctx, r.store)
	if err != nil {
		return user.Login{}, err
	}
	return user.Login{LoggedIn: state.LoggedIn, User: state.User}, nil
}

func (r *UserRepository) StoreLogin(ctx context.Context, login user.Login) error {
	_, err := update(ctx, r.store, func(state *State) error {
		state.LoggedIn = login.LoggedIn
		state.User = login.User
		return nil
	})
	return err
}

func (r *UserRepository) ResetSession(ctx context.Context) error {
	_, err := update(ctx, r.store, func(state *State) error {
		*state = NewState()
		return nil
	})
	return err
}

func current(ctx context.Context, store *Store) (State, error) {
	id, err := CurrentId(ctx)
	if err != nil {
		return State{}, err
	}
	return store.Get(id)
}

func update(ctx context.Context, store *Store, fn func(state *State) error) (State, error) {
	id, err := CurrentId(ctx)
	if err != nil {
		return State{}, err
	}
	return store.Update(id, fn)
}

func indexOf(subjects []subject.Subject, id string) int {
	return slices.IndexFunc(subjects, func(s subject.Subject) bool { return s.Id == id })
}
