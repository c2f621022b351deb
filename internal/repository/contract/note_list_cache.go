package contract

import (
	"context"

	"notes-app-be/internal/entity"
)

// NoteListCache holds the last full note listing. Writers must call
// Invalidate after every successful mutation.
type NoteListCache interface {
	Get(ctx context.Context) ([]*entity.Note, bool, error)
	Set(ctx context.Context, notes []*entity.Note) error
	Invalidate(ctx context.Context) error
}
