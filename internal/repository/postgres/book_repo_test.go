package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/dom/book-catalog/internal/domain"
	"github.com/dom/book-catalog/internal/repository/postgres"
	"github.com/dom/book-catalog/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookRepository_CreateAndGetByID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewBookRepository(testDB.DB)
	ctx := context.Background()

	book := &domain.Book{
		ID:          uuid.New(),
		Title:       "The Go Programming Language",
		Author:      "Donovan and Kernighan",
		Description: "The definitive guide to Go.",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	require.NoError(t, repo.Create(ctx, book))

	got, err := repo.GetByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, book.Title, got.Title)
	assert.Equal(t, book.Author, got.Author)
	assert.Equal(t, book.Description, got.Description)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.Error(t, err)
}

func TestBookRepository_GetAll(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewBookRepository(testDB.DB)
	ctx := context.Background()

	books, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)

	testutil.NewBookBuilder().WithTitle("First Book").Build(t, testDB.DB)
	testutil.NewBookBuilder().WithTitle("Second Book").Build(t, testDB.DB)

	books, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 2)
}

func TestBookRepository_Update(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewBookRepository(testDB.DB)
	ctx := context.Background()

	book := testutil.NewBookBuilder().
		WithTitle("Original Title").
		Build(t, testDB.DB)

	book.Title = "Updated Title"
	book.Author = "Updated Author"
	book.Description = "Updated description."
	require.NoError(t, repo.Update(ctx, book))

	got, err := repo.GetByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated Title", got.Title)
	assert.Equal(t, "Updated Author", got.Author)
	assert.Equal(t, "Updated description.", got.Description)
	assert.Equal(t, book.ID, got.ID)
}

func TestBookRepository_Delete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewBookRepository(testDB.DB)
	ctx := context.Background()

	book := testutil.NewBookBuilder().Build(t, testDB.DB)

	tests := []struct {
		name        string
		id          uuid.UUID
		wantDeleted bool
	}{
		{
			name:        "existing book",
			id:          book.ID,
			wantDeleted: true,
		},
		{
			name:        "already deleted book",
			id:          book.ID,
			wantDeleted: false,
		},
		{
			name:        "non-existent book",
			id:          uuid.New(),
			wantDeleted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleted, err := repo.Delete(ctx, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDeleted, deleted)
		})
	}
}
