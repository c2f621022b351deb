package contract

import (
	"context"
	"errors"

	"notes-app-be/internal/entity"
	"notes-app-be/internal/repository/specification"
)

// ErrNoteNotFound is returned by Delete when no row matched the id.
var ErrNoteNotFound = errors.New("note not found")

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id int64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
