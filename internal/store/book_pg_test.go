package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"locallibrary/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookPG_CreateWithGenres(t *testing.T) {
	db := setupTestDB(t)
	books := NewBookPG(db)
	genres := NewGenrePG(db)
	ctx := context.Background()

	genre := &entity.Genre{Name: fmt.Sprintf("Test Genre %d", time.Now().UnixNano())}
	require.NoError(t, genres.Create(ctx, genre))

	book := &entity.Book{
		Title:   fmt.Sprintf("Test Book %d", time.Now().UnixNano()),
		Summary: "A book with a genre.",
		ISBN:    "9780000000002",
	}
	require.NoError(t, books.Create(ctx, book, []string{genre.ID}))

	got, err := books.Get(ctx, book.ID)
	require.NoError(t, err)
	require.Len(t, got.Genres, 1)
	assert.Equal(t, genre.Name, got.Genres[0].Name)
}

func TestBookPG_Update_FailedGenreReplaceRollsBack(t *testing.T) {
	db := setupTestDB(t)
	books := NewBookPG(db)
	genres := NewGenrePG(db)
	ctx := context.Background()

	genre := &entity.Genre{Name: fmt.Sprintf("Test Genre %d", time.Now().UnixNano())}
	require.NoError(t, genres.Create(ctx, genre))

	book := &entity.Book{
		Title:   fmt.Sprintf("Test Book %d", time.Now().UnixNano()),
		Summary: "A book with a genre.",
		ISBN:    "9780000000003",
	}
	require.NoError(t, books.Create(ctx, book, []string{genre.ID}))

	// Re-linking to a genre that does not exist fails the foreign key
	// check, so the whole update must roll back.
	updated := *book
	updated.Title = "Renamed"
	err := books.Update(ctx, &updated, []string{"00000000-0000-0000-0000-000000000000"})
	require.Error(t, err)

	got, err := books.Get(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, book.Title, got.Title, "title change must not survive a failed update")
	require.Len(t, got.Genres, 1, "old genre set must survive a failed update")
	assert.Equal(t, genre.Name, got.Genres[0].Name)
}
