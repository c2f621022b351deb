package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"notes-app-be/internal/entity"
	"notes-app-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const RedisNoteListKey = "notes:list"

type cachedNote struct {
	Id        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// RedisNoteListCache shares the listing across API replicas.
type RedisNoteListCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisNoteListCache(rdb *redis.Client, ttl time.Duration) contract.NoteListCache {
	return &RedisNoteListCache{
		rdb: rdb,
		ttl: ttl,
	}
}

func (r *RedisNoteListCache) Get(ctx context.Context) ([]*entity.Note, bool, error) {
	raw, err := r.rdb.Get(ctx, RedisNoteListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	notes, err := decodeNoteList(raw)
	if err != nil {
		return nil, false, err
	}
	return notes, true, nil
}

func (r *RedisNoteListCache) Set(ctx context.Context, notes []*entity.Note) error {
	raw, err := encodeNoteList(notes)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, RedisNoteListKey, raw, r.ttl).Err()
}

func (r *RedisNoteListCache) Invalidate(ctx context.Context) error {
	return r.rdb.Del(ctx, RedisNoteListKey).Err()
}

func encodeNoteList(notes []*entity.Note) ([]byte, error) {
	cached := make([]cachedNote, len(notes))
	for i, n := range notes {
		cached[i] = cachedNote{Id: n.Id, Title: n.Title, Content: n.Content, CreatedAt: n.CreatedAt}
	}
	return json.Marshal(cached)
}

func decodeNoteList(raw []byte) ([]*entity.Note, error) {
	var cached []cachedNote
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, fmt.Errorf("decode cached note list: %w", err)
	}
	notes := make([]*entity.Note, len(cached))
	for i, c := range cached {
		notes[i] = &entity.Note{Id: c.Id, Title: c.Title, Content: c.Content, CreatedAt: c.CreatedAt}
	}
	return notes, nil
}
