package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/internal/db"
	"github.com/inkwell/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouterTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:router-%d?mode=memory&cache=shared", time.Now().UnixNano())
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

func TestLoadTemplatesDefinesEveryPage(t *testing.T) {
	tmpl, err := LoadTemplates()
	require.NoError(t, err)

	for _, name := range []string{
		"index.html", "posts.html", "post.html", "category.html", "tag.html", "author.html",
		"create_post.html", "create_category.html", "create_tag.html", "error.html",
		"header", "footer", "post_card", "pagination",
	} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestSetupRouterPing(t *testing.T) {
	r, err := SetupRouter(setupRouterTestDB(t), "Test Blog")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
}

func TestSetupRouterUnknownPathRendersNotFound(t *testing.T) {
	r, err := SetupRouter(setupRouterTestDB(t), "Test Blog")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
	assert.Contains(t, w.Body.String(), "Test Blog")
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{name: "zero", input: time.Time{}, expected: ""},
		{name: "seconds", input: now.Add(-30 * time.Second), expected: "just now"},
		{name: "one minute", input: now.Add(-time.Minute), expected: "1 minute ago"},
		{name: "minutes", input: now.Add(-5 * time.Minute), expected: "5 minutes ago"},
		{name: "hours", input: now.Add(-2 * time.Hour), expected: "2 hours ago"},
		{name: "days", input: now.Add(-72 * time.Hour), expected: "3 days ago"},
		{name: "months", input: now.Add(-60 * 24 * time.Hour), expected: "2 months ago"},
		{name: "years", input: now.Add(-3 * 365 * 24 * time.Hour), expected: "3 years ago"},
		{name: "future", input: now.Add(2 * time.Minute), expected: "just now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatRelativeTime(now, tt.input))
		})
	}
}
