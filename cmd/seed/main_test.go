package main

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/inkwell/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:seed-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(db.SQLiteDSN(dsn)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func countRows(t *testing.T, gdb *gorm.DB, model any) int64 {
	t.Helper()
	var count int64
	require.NoError(t, gdb.Model(model).Count(&count).Error)
	return count
}

func TestSeedIsIdempotent(t *testing.T) {
	gdb := setupSeedTestDB(t)
	ctx := context.Background()

	require.NoError(t, seed(ctx, gdb))
	require.NoError(t, seed(ctx, gdb))

	assert.EqualValues(t, len(sampleAuthors), countRows(t, gdb, &db.Author{}))
	assert.EqualValues(t, len(sampleCategories), countRows(t, gdb, &db.Category{}))
	assert.EqualValues(t, len(sampleTags), countRows(t, gdb, &db.Tag{}))
	assert.EqualValues(t, len(samplePosts), countRows(t, gdb, &db.Post{}))

	var links int
	for _, post := range samplePosts {
		links += len(post.Tags)
	}
	assert.EqualValues(t, links, countRows(t, gdb, &db.PostTag{}))
}
