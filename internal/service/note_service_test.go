package service

import (
	"context"
	"testing"
	"time"

	"notes-app-be/internal/dto"
	"notes-app-be/internal/model"
	"notes-app-be/internal/pkg/logger"
	"notes-app-be/internal/repository/memory"
	"notes-app-be/internal/repository/unitofwork"
	"notes-app-be/pkg/database"
	"notes-app-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingPublisher struct {
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.events = append(p.events, event)
	return p.err
}

func setupNoteService(t *testing.T) (INoteService, *gorm.DB, *recordingPublisher) {
	t.Helper()
	db, err := database.NewInMemorySQLite()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	pub := &recordingPublisher{}
	svc := NewNoteService(
		unitofwork.NewRepositoryFactory(db),
		memory.NewNoteListCache(time.Minute),
		pub,
		logger.NewNopLogger(),
	)
	return svc, db, pub
}

func TestNoteService_CreateThenList(t *testing.T) {
	svc, _, pub := setupNoteService(t)
	ctx := context.Background()

	before, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, before)

	created, err := svc.Create(ctx, &dto.CreateNoteRequest{Title: "Shopping", Content: "eggs"})
	require.NoError(t, err)
	assert.NotZero(t, created.Id)

	after, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, *created, after[0])

	require.Len(t, pub.events, 1)
	assert.Equal(t, events.NoteCreated, pub.events[0].EventType())
	assert.Equal(t, created.Id, pub.events[0].Payload()["note_id"])
}

func TestNoteService_DuplicateContentGetsDistinctIds(t *testing.T) {
	svc, _, _ := setupNoteService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, &dto.CreateNoteRequest{Title: "dup", Content: "dup"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, &dto.CreateNoteRequest{Title: "dup", Content: "dup"})
	require.NoError(t, err)

	assert.NotEqual(t, a.Id, b.Id)

	notes, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 2)
}

func TestNoteService_CreateRejectsBlankFields(t *testing.T) {
	svc, _, pub := setupNoteService(t)
	ctx := context.Background()

	for _, req := range []dto.CreateNoteRequest{
		{Title: "", Content: "c"},
		{Title: "t", Content: "   "},
	} {
		_, err := svc.Create(ctx, &req)
		assert.ErrorIs(t, err, ErrInvalidNote)
	}

	notes, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
	assert.Empty(t, pub.events)
}

func TestNoteService_DeleteRemovesExactlyOne(t *testing.T) {
	svc, _, pub := setupNoteService(t)
	ctx := context.Background()

	keep, err := svc.Create(ctx, &dto.CreateNoteRequest{Title: "keep", Content: "x"})
	require.NoError(t, err)
	drop, err := svc.Create(ctx, &dto.CreateNoteRequest{Title: "drop", Content: "x"})
	require.NoError(t, err)

	// prime the cache so the delete has to invalidate it
	_, err = svc.List(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, drop.Id))

	notes, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, keep.Id, notes[0].Id)

	last := pub.events[len(pub.events)-1]
	assert.Equal(t, events.NoteDeleted, last.EventType())
	assert.Equal(t, "drop", last.Payload()["title"])
}

func TestNoteService_DeleteMissingIsNotFound(t *testing.T) {
	svc, _, pub := setupNoteService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreateNoteRequest{Title: "t", Content: "c"})
	require.NoError(t, err)
	published := len(pub.events)

	err = svc.Delete(ctx, 999999)
	assert.ErrorIs(t, err, ErrNoteNotFound)

	notes, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 1)
	assert.Len(t, pub.events, published)
}

func TestNoteService_PublishFailureDoesNotFailCreate(t *testing.T) {
	svc, _, pub := setupNoteService(t)
	pub.err = assert.AnError

	created, err := svc.Create(context.Background(), &dto.CreateNoteRequest{Title: "t", Content: "c"})
	require.NoError(t, err)
	assert.NotZero(t, created.Id)
}

func TestNoteService_StoreFaultsAreWrapped(t *testing.T) {
	svc, db, _ := setupNoteService(t)
	ctx := context.Background()

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = svc.List(ctx)
	assert.ErrorContains(t, err, "list notes")

	_, err = svc.Create(ctx, &dto.CreateNoteRequest{Title: "t", Content: "c"})
	assert.ErrorContains(t, err, "create note")

	err = svc.Delete(ctx, 1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteService_NilPublisher(t *testing.T) {
	db, err := database.NewInMemorySQLite()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	svc := NewNoteService(unitofwork.NewRepositoryFactory(db), memory.NopNoteListCache{}, nil, logger.NewNopLogger())
	_, err = svc.Create(context.Background(), &dto.CreateNoteRequest{Title: "t", Content: "c"})
	assert.NoError(t, err)
}

func TestNoteService_InstancesSharingStoreSeeEachOthersWrites(t *testing.T) {
	db, err := database.NewInMemorySQLite()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	newInstance := func() INoteService {
		return NewNoteService(unitofwork.NewRepositoryFactory(db), memory.NopNoteListCache{}, nil, logger.NewNopLogger())
	}
	a, b := newInstance(), newInstance()
	ctx := context.Background()

	before, err := b.List(ctx)
	require.NoError(t, err)
	require.Empty(t, before)

	created, err := a.Create(ctx, &dto.CreateNoteRequest{Title: "shared", Content: "store"})
	require.NoError(t, err)

	after, err := b.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, created.Id, after[0].Id)

	require.NoError(t, b.Delete(ctx, created.Id))
	remaining, err := a.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
