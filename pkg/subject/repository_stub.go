package subject

import (
	"context"
	"slices"
	"sync"
)

type RepositoryStub struct {
	mu       sync.RWMutex
	subjects []Subject
	listErr  error
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{}
}

func (r *RepositoryStub) List(ctx context.Context) ([]Subject, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	return slices.Clone(r.subjects), nil
}

func (r *RepositoryStub) Add(ctx context.Context, subject Subject) (Subject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subjects = append(r.subjects, subject)
	return subject, nil
}

func (r *RepositoryStub) Update(ctx context.Context, subject Subject) (Subject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := slices.IndexFunc(r.subjects, func(s Subject) bool { return s.Id == subject.Id })
	if idx < 0 {
		return Subject{}, ErrSubjectNotFound
	}
	r.subjects[idx] = subject
	return subject, nil
}

func (r *RepositoryStub) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := slices.IndexFunc(r.subjects, func(s Subject) bool { return s.Id == id })
	if idx < 0 {
		return ErrSubjectNotFound
	}
	r.subjects = slices.Delete(r.subjects, idx, idx+1)
	return nil
}

// SetListError makes subsequent List calls fail with err.
func (r *RepositoryStub) SetListError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listErr = err
}

func (r *RepositoryStub) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subjects = nil
	r.listErr = nil
}
