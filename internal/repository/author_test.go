package repository

import (
	"context"
	"strconv"
	"testing"

	"github.com/inkwell/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorRepositoryLoadDisambiguatesIdentifier(t *testing.T) {
	gdb := setupRepositoryTestDB(t)
	repo := NewAuthorRepository(gdb)
	ctx := context.Background()

	author := seedAuthor(t, gdb, "Ana", "ana@x.com")

	byID, err := repo.Load(ctx, strconv.Itoa(int(author.ID)))
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "ana@x.com", byID.Email)

	byEmail, err := repo.Load(ctx, "ana@x.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, author.ID, byEmail.ID)

	missing, err := repo.Load(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	missingID, err := repo.Load(ctx, "999")
	require.NoError(t, err)
	assert.Nil(t, missingID)

	_, err = repo.Load(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAuthorRepositorySaveInsertsThenUpdates(t *testing.T) {
	gdb := setupRepositoryTestDB(t)
	repo := NewAuthorRepository(gdb)
	ctx := context.Background()

	bio := "writes about Go"
	author := &db.Author{Name: "Ana", Email: "ana@x.com", Bio: &bio}
	require.NoError(t, repo.Save(ctx, author))
	require.True(t, author.Persisted())
	assert.False(t, author.CreatedAt.IsZero())
	assert.False(t, author.UpdatedAt.IsZero())

	id := author.ID
	author.Name = "Ana Maria"
	author.Bio = nil
	require.NoError(t, repo.Save(ctx, author))
	assert.Equal(t, id, author.ID)
	assert.Equal(t, "Ana Maria", author.Name)
	assert.Nil(t, author.Bio)

	var count int64
	require.NoError(t, gdb.Model(&db.Author{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAuthorRepositorySaveRejectsDuplicateEmail(t *testing.T) {
	gdb := setupRepositoryTestDB(t)
	repo := NewAuthorRepository(gdb)
	seedAuthor(t, gdb, "Ana", "ana@x.com")

	err := repo.Save(context.Background(), &db.Author{Name: "Other", Email: "ana@x.com"})
	assert.Error(t, err)
}

func TestAuthorRepositoryEmailTaken(t *testing.T) {
	gdb := setupRepositoryTestDB(t)
	repo := NewAuthorRepository(gdb)
	ctx := context.Background()
	author := seedAuthor(t, gdb, "Ana", "ana@x.com")

	taken, err := repo.EmailTaken(ctx, "ana@x.com", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.EmailTaken(ctx, "ana@x.com", author.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.EmailTaken(ctx, "bia@x.com", 0)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestAuthorRepositoryDelete(t *testing.T) {
	gdb := setupRepositoryTestDB(t)
	repo := NewAuthorRepository(gdb)
	ctx := context.Background()

	assert.False(t, repo.Delete(ctx, &db.Author{Name: "Transient"}))

	withPost := seedAuthor(t, gdb, "Ana", "ana@x.com")
	category := seedCategory(t, gdb, "Notes")
	seedPost(t, gdb, "Hello", true, withPost, category)
	assert.False(t, repo.Delete(ctx, withPost), "author with posts must be kept")

	alone := seedAuthor(t, gdb, "Bia", "bia@x.com")
	assert.True(t, repo.Delete(ctx, alone))

	gone, err := repo.Load(ctx, "bia@x.com")
	require.NoError(t, err)
	assert.Nil(t, gone)

	assert.False(t, repo.Delete(ctx, alone), "second delete matches no rows")
}

func TestAuthorRepositoryListAllOrdersByName(t *testing.T) {
	gdb := setupRepositoryTestDB(t)
	seedAuthor(t, gdb, "Caio", "caio@x.com")
	seedAuthor(t, gdb, "Ana", "ana@x.com")
	seedAuthor(t, gdb, "Bia", "bia@x.com")

	authors, err := NewAuthorRepository(gdb).ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, authors, 3)
	assert.Equal(t, []string{"Ana", "Bia", "Caio"}, []string{authors[0].Name, authors[1].Name, authors[2].Name})
}
