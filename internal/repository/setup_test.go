package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/inkwell/internal/db"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepositoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repository-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(db.SQLiteDSN(dsn)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open test database")
	require.NoError(t, db.Migrate(gdb), "migrate test database")

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func seedAuthor(t *testing.T, gdb *gorm.DB, name, email string) *db.Author {
	t.Helper()
	author := &db.Author{Name: name, Email: email}
	require.NoError(t, NewAuthorRepository(gdb).Save(context.Background(), author))
	return author
}

func seedCategory(t *testing.T, gdb *gorm.DB, name string) *db.Category {
	t.Helper()
	category := &db.Category{Name: name}
	require.NoError(t, NewCategoryRepository(gdb).Save(context.Background(), category))
	return category
}

func seedTag(t *testing.T, gdb *gorm.DB, name string) *db.Tag {
	t.Helper()
	tag := &db.Tag{Name: name}
	require.NoError(t, NewTagRepository(gdb).Save(context.Background(), tag))
	return tag
}

func seedPost(t *testing.T, gdb *gorm.DB, title string, published bool, author *db.Author, category *db.Category) *db.Post {
	t.Helper()
	post := &db.Post{
		Title:      title,
		Content:    "<p>" + title + "</p>",
		Published:  published,
		AuthorID:   author.ID,
		CategoryID: category.ID,
	}
	require.NoError(t, NewPostRepository(gdb).Save(context.Background(), post))
	return post
}
