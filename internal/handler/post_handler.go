package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/internal/db"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const msgPostFailed = "internal error while creating the post"

// postFormOptions holds the choices offered by the post creation form.
type postFormOptions struct {
	Authors    []option
	Categories []option
	Tags       []option
}

// ShowCreatePost 展示文章创建表单。
func (a *API) ShowCreatePost(c *gin.Context) {
	a.renderPostForm(c, http.StatusOK, postForm{}, nil)
}

// CreatePost stores a new post, attaches its tags and redirects to it. Tags
// are either selected ids or a comma separated list of names, missing names
// are created.
func (a *API) CreatePost(c *gin.Context) {
	ctx := c.Request.Context()

	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderPostForm(c, http.StatusBadRequest, form, []string{"invalid form submission"})
		return
	}
	form.trim()
	if err := form.Validate(); err != nil {
		a.renderPostForm(c, http.StatusUnprocessableEntity, form, validationMessages(err))
		return
	}

	post := &db.Post{
		Title:      sanitizeText(form.Title),
		Content:    form.Content,
		Published:  form.published(),
		AuthorID:   form.authorID(),
		CategoryID: form.categoryID(),
	}
	if post.Title == "" {
		a.renderPostForm(c, http.StatusUnprocessableEntity, form, []string{"title is required"})
		return
	}

	if err := a.savePost(ctx, post, form); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("title", post.Title).Msg("create post failed")
		a.renderPostForm(c, http.StatusInternalServerError, form, []string{msgPostFailed})
		return
	}

	c.Redirect(http.StatusFound, "/post/"+post.Slug)
}

// savePost stores the post before resolving tag names, so a rejected post
// leaves no new tags behind.
func (a *API) savePost(ctx context.Context, post *db.Post, form postForm) error {
	if err := a.posts.Save(ctx, post); err != nil {
		return err
	}

	tagIDs := form.tagIDs()
	if names := form.tagNames(); len(names) > 0 {
		for i, name := range names {
			names[i] = sanitizeText(name)
		}
		tags, err := a.tags.FindOrCreateByNames(ctx, names)
		if err != nil {
			return err
		}
		for _, tag := range tags {
			tagIDs = append(tagIDs, tag.ID)
		}
	}

	if len(tagIDs) == 0 {
		return nil
	}
	return a.posts.ReplaceTagAssociations(ctx, post.ID, tagIDs)
}

// loadPostFormOptions fetches authors, categories and tags concurrently.
func (a *API) loadPostFormOptions(ctx context.Context) (postFormOptions, error) {
	var (
		options    postFormOptions
		authors    []db.Author
		categories []db.Category
		tags       []db.Tag
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		authors, err = a.authors.ListAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = a.categories.ListAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		tags, err = a.tags.ListAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return options, err
	}

	for _, author := range authors {
		options.Authors = append(options.Authors, option{ID: author.ID, Name: author.Name})
	}
	for _, category := range categories {
		options.Categories = append(options.Categories, option{ID: category.ID, Name: category.Name})
	}
	for _, tag := range tags {
		options.Tags = append(options.Tags, option{ID: tag.ID, Name: tag.Name})
	}
	return options, nil
}

func (a *API) renderPostForm(c *gin.Context, status int, form postForm, errs []string) {
	ctx := c.Request.Context()

	options, err := a.loadPostFormOptions(ctx)
	if err != nil {
		a.storageFailure(c, err, "failed to load the post form")
		return
	}

	a.renderHTML(c, status, "create_post.html", gin.H{
		"title":        "New post",
		"formData":     form,
		"published":    form.published(),
		"selectedTags": form.selectedTags(),
		"tagText":      form.tagText(),
		"options":      options,
		"errors":       errs,
	})
}
