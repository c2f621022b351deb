package memory

import (
	"context"
	"time"

	"notes-app-be/internal/entity"
	"notes-app-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

const noteListKey = "notes:list"

type NoteListCache struct {
	cache *cache.Cache
}

// NewNoteListCache returns the no-op cache when ttl is not positive.
func NewNoteListCache(ttl time.Duration) contract.NoteListCache {
	if ttl <= 0 {
		return NopNoteListCache{}
	}
	// purge expired items every 2 TTLs
	c := cache.New(ttl, 2*ttl)
	return &NoteListCache{
		cache: c,
	}
}

func (r *NoteListCache) Get(ctx context.Context) ([]*entity.Note, bool, error) {
	if x, found := r.cache.Get(noteListKey); found {
		return copyNotes(x.([]entity.Note)), true, nil
	}
	return nil, false, nil
}

func (r *NoteListCache) Set(ctx context.Context, notes []*entity.Note) error {
	snapshot := make([]entity.Note, len(notes))
	for i, n := range notes {
		snapshot[i] = *n
	}
	r.cache.Set(noteListKey, snapshot, cache.DefaultExpiration)
	return nil
}

func (r *NoteListCache) Invalidate(ctx context.Context) error {
	r.cache.Delete(noteListKey)
	return nil
}

func copyNotes(snapshot []entity.Note) []*entity.Note {
	notes := make([]*entity.Note, len(snapshot))
	for i := range snapshot {
		n := snapshot[i]
		notes[i] = &n
	}
	return notes
}

// NopNoteListCache never stores anything; selected with CACHE_DRIVER=none.
type NopNoteListCache struct{}

func (NopNoteListCache) Get(ctx context.Context) ([]*entity.Note, bool, error) {
	return nil, false, nil
}

func (NopNoteListCache) Set(ctx context.Context, notes []*entity.Note) error { return nil }

func (NopNoteListCache) Invalidate(ctx context.Context) error { return nil }
