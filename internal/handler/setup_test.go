package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/internal/db"
	"github.com/inkwell/internal/repository"
	"github.com/inkwell/internal/router"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupHandlerTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
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

	r, err := router.SetupRouter(gdb, "Test Blog")
	require.NoError(t, err, "setup router")
	return gdb, r
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func submitForm(r *gin.Engine, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type fixture struct {
	author   *db.Author
	category *db.Category
}

func seedFixture(t *testing.T, gdb *gorm.DB) fixture {
	t.Helper()
	ctx := context.Background()

	bio := "Writes **Go** every day."
	author := &db.Author{Name: "Ana", Email: "ana@x.com", Bio: &bio}
	require.NoError(t, repository.NewAuthorRepository(gdb).Save(ctx, author))

	description := "Short notes"
	category := &db.Category{Name: "Notes", Description: &description}
	require.NoError(t, repository.NewCategoryRepository(gdb).Save(ctx, category))

	return fixture{author: author, category: category}
}

func seedPost(t *testing.T, gdb *gorm.DB, f fixture, title, content string, published bool) *db.Post {
	t.Helper()
	post := &db.Post{
		Title:      title,
		Content:    content,
		Published:  published,
		AuthorID:   f.author.ID,
		CategoryID: f.category.ID,
	}
	require.NoError(t, repository.NewPostRepository(gdb).Save(context.Background(), post))
	return post
}
