package timetable

import (
	"context"
	"maps"
	"sync"
)

type RepositoryStub struct {
	mu   sync.Mutex
	plan *Plan
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{}
}

func (r *RepositoryStub) GetPlan(ctx context.Context) (Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.plan == nil {
		return Plan{}, ErrNoTimetable
	}
	return copyPlan(*r.plan), nil
}

func (r *RepositoryStub) StorePlan(ctx context.Context, plan Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := copyPlan(plan)
	r.plan = &stored
	return nil
}

func (r *RepositoryStub) UpdatePlan(ctx context.Context, fn func(plan *Plan) error) (Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.plan == nil {
		return Plan{}, ErrNoTimetable
	}
	updated := copyPlan(*r.plan)
	if err := fn(&updated); err != nil {
		return Plan{}, err
	}
	r.plan = &updated
	return copyPlan(updated), nil
}

func (r *RepositoryStub) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plan = nil
}

func copyPlan(plan Plan) Plan {
	plan.Completed = maps.Clone(plan.Completed)
	return plan
}
