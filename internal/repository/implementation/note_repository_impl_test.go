package implementation

import (
	"context"
	"testing"

	"notes-app-be/internal/entity"
	"notes-app-be/internal/model"
	"notes-app-be/internal/repository/contract"
	"notes-app-be/internal/repository/specification"
	"notes-app-be/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupNoteRepository(t *testing.T) contract.NoteRepository {
	t.Helper()
	db, err := database.NewInMemorySQLite()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))
	return NewNoteRepository(db)
}

func TestNoteRepository_CreateAssignsIds(t *testing.T) {
	repo := setupNoteRepository(t)
	ctx := context.Background()

	first := &entity.Note{Title: "Same", Content: "Body"}
	second := &entity.Note{Title: "Same", Content: "Body"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.NotZero(t, first.Id)
	assert.NotZero(t, second.Id)
	assert.NotEqual(t, first.Id, second.Id)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestNoteRepository_CreateIgnoresCallerId(t *testing.T) {
	repo := setupNoteRepository(t)
	ctx := context.Background()

	existing := &entity.Note{Title: "a", Content: "b"}
	require.NoError(t, repo.Create(ctx, existing))

	clash := &entity.Note{Id: existing.Id, Title: "c", Content: "d"}
	require.NoError(t, repo.Create(ctx, clash))
	assert.NotEqual(t, existing.Id, clash.Id)
}

func TestNoteRepository_FindAllOrdered(t *testing.T) {
	repo := setupNoteRepository(t)
	ctx := context.Background()

	for _, title := range []string{"one", "two", "three"} {
		require.NoError(t, repo.Create(ctx, &entity.Note{Title: title, Content: "x"}))
	}

	notes, err := repo.FindAll(ctx, specification.OrderBy{Field: "id"})
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "one", notes[0].Title)
	assert.Equal(t, "three", notes[2].Title)

	desc, err := repo.FindAll(ctx, specification.OrderBy{Field: "id", Desc: true})
	require.NoError(t, err)
	assert.Equal(t, "three", desc[0].Title)
}

func TestNoteRepository_FindOne(t *testing.T) {
	repo := setupNoteRepository(t)
	ctx := context.Background()

	note := &entity.Note{Title: "Groceries", Content: "milk"}
	require.NoError(t, repo.Create(ctx, note))

	found, err := repo.FindOne(ctx, specification.ByID{ID: note.Id})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Groceries", found.Title)

	missing, err := repo.FindOne(ctx, specification.ByID{ID: note.Id + 100})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestNoteRepository_Delete(t *testing.T) {
	repo := setupNoteRepository(t)
	ctx := context.Background()

	keep := &entity.Note{Title: "keep", Content: "x"}
	drop := &entity.Note{Title: "drop", Content: "x"}
	require.NoError(t, repo.Create(ctx, keep))
	require.NoError(t, repo.Create(ctx, drop))

	require.NoError(t, repo.Delete(ctx, drop.Id))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	err = repo.Delete(ctx, drop.Id)
	assert.ErrorIs(t, err, contract.ErrNoteNotFound)

	survivor, err := repo.FindOne(ctx, specification.ByID{ID: keep.Id})
	require.NoError(t, err)
	require.NotNil(t, survivor)
	assert.Equal(t, "keep", survivor.Title)
}
