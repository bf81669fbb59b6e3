package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/internal/repository"
)

// ShowIndex renders the home page: latest published posts, every category
// and the first tags, each with its published post count.
func (a *API) ShowIndex(c *gin.Context) {
	ctx := c.Request.Context()

	latest, err := a.posts.ListPublished(ctx, 1, indexPostLimit)
	if err != nil {
		a.storageFailure(c, err, "failed to load the home page")
		return
	}

	categories, err := a.categories.ListAll(ctx)
	if err != nil {
		a.storageFailure(c, err, "failed to load the home page")
		return
	}

	tags, err := a.tags.ListAll(ctx)
	if err != nil {
		a.storageFailure(c, err, "failed to load the home page")
		return
	}
	if len(tags) > indexTagLimit {
		tags = tags[:indexTagLimit]
	}

	a.renderHTML(c, http.StatusOK, "index.html", gin.H{
		"posts":      newPostCards(latest.Items, indexExcerptLength),
		"categories": newCategoryViews(categories),
		"tags":       newTagViews(tags),
	})
}

// ShowPosts renders the paginated list of published posts.
func (a *API) ShowPosts(c *gin.Context) {
	page, limit := paginationParams(c)

	result, err := a.posts.ListPublished(c.Request.Context(), page, limit)
	if err != nil {
		a.storageFailure(c, err, "failed to load posts")
		return
	}

	a.renderHTML(c, http.StatusOK, "posts.html", gin.H{
		"title":      "All posts",
		"posts":      newPostCards(result.Items, listExcerptLength),
		"pagination": newPaginationView(page, limit, result.TotalPages, result.Total),
	})
}

// ShowPost renders one published post with its related posts.
func (a *API) ShowPost(c *gin.Context) {
	ctx := c.Request.Context()

	post, err := a.posts.Load(ctx, c.Param("slug"))
	if err != nil && !errors.Is(err, repository.ErrInvalidArgument) {
		a.storageFailure(c, err, "failed to load the post")
		return
	}
	if post == nil || !post.Published {
		a.notFound(c, "Post not found")
		return
	}

	related, err := a.posts.Related(ctx, post, relatedPostLimit)
	if err != nil {
		a.storageFailure(c, err, "failed to load the post")
		return
	}

	a.renderHTML(c, http.StatusOK, "post.html", gin.H{
		"title":        post.Title,
		"post":         newPostDetail(post),
		"relatedPosts": newPostCards(related, relatedExcerptLength),
	})
}

// ShowCategory renders a category and its published posts.
func (a *API) ShowCategory(c *gin.Context) {
	ctx := c.Request.Context()
	page, limit := paginationParams(c)

	category, err := a.categories.Load(ctx, c.Param("slug"))
	if err != nil && !errors.Is(err, repository.ErrInvalidArgument) {
		a.storageFailure(c, err, "failed to load the category")
		return
	}
	if category == nil {
		a.notFound(c, "Category not found")
		return
	}

	result, err := a.posts.ListByCategory(ctx, category.Slug, page, limit)
	if err != nil {
		a.storageFailure(c, err, "failed to load the category")
		return
	}

	a.renderHTML(c, http.StatusOK, "category.html", gin.H{
		"title":      category.Name,
		"category":   newCategoryView(*category),
		"posts":      newPostCards(result.Items, categoryExcerptLength),
		"pagination": newPaginationView(page, limit, result.TotalPages, result.Total),
	})
}

// ShowTag renders a tag and the published posts carrying it.
func (a *API) ShowTag(c *gin.Context) {
	ctx := c.Request.Context()
	page, limit := paginationParams(c)

	tag, err := a.tags.Load(ctx, c.Param("slug"))
	if err != nil && !errors.Is(err, repository.ErrInvalidArgument) {
		a.storageFailure(c, err, "failed to load the tag")
		return
	}
	if tag == nil {
		a.notFound(c, "Tag not found")
		return
	}

	result, err := a.posts.ListByTag(ctx, tag.Slug, page, limit)
	if err != nil {
		a.storageFailure(c, err, "failed to load the tag")
		return
	}

	a.renderHTML(c, http.StatusOK, "tag.html", gin.H{
		"title":      "#" + tag.Name,
		"tag":        tagView{ID: tag.ID, Name: tag.Name, Slug: tag.Slug, PostsCount: int(result.Total)},
		"posts":      newPostCards(result.Items, categoryExcerptLength),
		"pagination": newPaginationView(page, limit, result.TotalPages, result.Total),
	})
}

// ShowAuthor renders an author, found by id or email, with the bio as
// markdown and the author's published posts.
func (a *API) ShowAuthor(c *gin.Context) {
	author, err := a.authors.Load(c.Request.Context(), c.Param("identifier"))
	if err != nil && !errors.Is(err, repository.ErrInvalidArgument) {
		a.storageFailure(c, err, "failed to load the author")
		return
	}
	if author == nil {
		a.notFound(c, "Author not found")
		return
	}

	bio, err := renderMarkdown(author.BioText())
	if err != nil {
		a.storageFailure(c, err, "failed to render the author bio")
		return
	}

	posts := publishedOnly(author.Posts)
	for i := range posts {
		posts[i].Author = author
	}

	a.renderHTML(c, http.StatusOK, "author.html", gin.H{
		"title":  author.Name,
		"author": authorView{ID: author.ID, Name: author.Name, Email: author.Email, Bio: bio},
		"posts":  newPostCards(posts, indexExcerptLength),
	})
}
