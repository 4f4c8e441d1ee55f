package subject

import (
	"context"
	"errors"
)

var ErrSubjectNotFound = errors.New("subject not found")

// Repository keeps the subject list of the current session, in insertion order.
type Repository interface {
	List(ctx context.Context) ([]Subject, error)
	Add(ctx context.Context, subject Subject) (Subject, error)
	// Update replaces the subject with the same Id, keeping its position.
	Update(ctx context.Context, subject Subject) (Subject, error)
	Delete(ctx context.Context, id string) error
}
