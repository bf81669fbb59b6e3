package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/inkwell/internal/db"
	"github.com/inkwell/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowIndexExcludesDrafts(t *testing.T) {
	gdb, r := setupHandlerTest(t)
	f := seedFixture(t, gdb)

	seedPost(t, gdb, f, "Published Post", "<p>visible</p>", true)
	seedPost(t, gdb, f, "Draft Post", "<p>hidden</p>", false)

	w := get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Published Post")
	assert.NotContains(t, body, "Draft Post")
	assert.Contains(t, body, "Notes</a> (1)", "category count only includes published posts")
	assert.Contains(t, body, "Test Blog")
}

func TestShowIndexLimitsLatestPosts(t *testing.T) {
	gdb, r := setupHandlerTest(t)
	f := seedFixture(t, gdb)

	for i := 1; i <= 8; i++ {
		seedPost(t, gdb, f, fmt.Sprintf("Entry %02d", i), "<p>body</p>", true)
	}

	body := get(r, "/").Body.String()
	assert.Contains(t, body, "Entry 08")
	assert.Contains(t, body, "Entry 03")
	assert.NotContains(t, body, "Entry 02")
	assert.NotContains(t, body, "Entry 01")
}

func TestShowPostsPaginates(t *testing.T) {
	gdb, r := setupHandlerTest(t)
	f := seedFixture(t, gdb)

	for i := 1; i <= 25; i++ {
		seedPost(t, gdb, f, fmt.Sprintf("Entry %02d", i), "<p>body</p>", true)
	}

	w := get(r, "/posts?page=2&limit=10")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Showing 11-20 of 25")
	assert.Contains(t, body, "Page 2 of 3")
	assert.Contains(t, body, "Entry 15")
	assert.NotContains(t, body, "Entry 25")
	assert.NotContains(t, body, "Entry 05")

	beyond := get(r, "/posts?page=4")
	require.Equal(t, http.StatusOK, beyond.Code)
	assert.Contains(t, beyond.Body.String(), "No posts on this page.")

	huge := get(r, "/posts?page=9223372036854775807")
	require.Equal(t, http.StatusOK, huge.Code)
	assert.Contains(t, huge.Body.String(), "No posts on this page.")
	assert.NotContains(t, huge.Body.String(), "Entry 25")
}

func TestShowPostRendersContentAndRelated(t *testing.T) {
	gdb, r := setupHandlerTest(t)
	f := seedFixture(t, gdb)

	post := seedPost(t, gdb, f, "Hello World", "<p><em>raw</em> body</p>", true)
	for i := 1; i <= 4; i++ {
		seedPost(t, gdb, f, fmt.Sprintf("Sibling %d", i), "<p>sibling</p>", true)
	}
	tags, err := repository.NewTagRepository(gdb).FindOrCreateByNames(context.Background(), []string{"Go"})
	require.NoError(t, err)
	require.NoError(t, repository.NewPostRepository(gdb).ReplaceTagAssociations(context.Background(), post.ID, []uint{tags[0].ID}))

	w := get(r, "/post/hello-world")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "<p><em>raw</em> body</p>")
	assert.Contains(t, body, `href="/tag/go"`)
	assert.Contains(t, body, "Related posts")
	assert.Equal(t, 3, strings.Count(body, "Sibling "), "at most three related posts")
}

func TestShowPostRejectsDraftAndUnknown(t *testing.T) {
	gdb, r := setupHandlerTest(t)
	f := seedFixture(t, gdb)
	draft := seedPost(t, gdb, f, "Secret Draft", "<p>draft</p>", false)

	assert.Equal(t, http.StatusNotFound, get(r, "/post/"+draft.Slug).Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/post/"+strconv.Itoa(int(draft.ID))).Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/post/missing").Code)
}

func TestShowCategory(t *testing.T) {
	gdb, r := setupHandlerTest(t)
	f := seedFixture(t, gdb)
	seedPost(t, gdb, f, "Visible", "<p>x</p>", true)
	seedPost(t, gdb, f, "Hidden", "<p>x</p>", false)

	w := get(r, "/category/notes")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Short notes")
	assert.Contains(t, body, "Visible")
	assert.NotContains(t, body, "Hidden")

	assert.Equal(t, http.StatusNotFound, get(r, "/category/unknown").Code)
}

func TestShowTag(t *testing.T) {
	gdb, r := setupHandlerTest(t)
	f := seedFixture(t, gdb)
	ctx := context.Background()

	tagged := seedPost(t, gdb, f, "Tagged", "<p>x</p>", true)
	seedPost(t, gdb, f, "Untagged", "<p>x</p>", true)
	tag := &db.Tag{Name: "Go"}
	require.NoError(t, repository.NewTagRepository(gdb).Save(ctx, tag))
	require.NoError(t, repository.NewPostRepository(gdb).ReplaceTagAssociations(ctx, tagged.ID, []uint{tag.ID}))

	w := get(r, "/tag/go")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "1 published post")
	assert.Contains(t, body, "Tagged")
	assert.NotContains(t, body, "Untagged")

	assert.Equal(t, http.StatusNotFound, get(r, "/tag/rust").Code)
}

func TestShowAuthorByIDAndEmail(t *testing.T) {
	gdb, r := setupHandlerTest(t)
	f := seedFixture(t, gdb)
	seedPost(t, gdb, f, "Public Thoughts", "<p>x</p>", true)
	seedPost(t, gdb, f, "Private Thoughts", "<p>x</p>", false)

	byID := get(r, "/author/"+strconv.Itoa(int(f.author.ID)))
	require.Equal(t, http.StatusOK, byID.Code)
	body := byID.Body.String()
	assert.Contains(t, body, "<strong>Go</strong>")
	assert.Contains(t, body, "Public Thoughts")
	assert.NotContains(t, body, "Private Thoughts")

	byEmail := get(r, "/author/ana@x.com")
	require.Equal(t, http.StatusOK, byEmail.Code)

	assert.Equal(t, http.StatusNotFound, get(r, "/author/nobody@x.com").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/author/1.5").Code)
}
