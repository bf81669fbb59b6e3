package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/internal/db"
	"github.com/inkwell/internal/slug"
	"github.com/rs/zerolog/log"
)

const (
	msgCategoryExists    = "a category with this name already exists"
	msgCategoryFailed    = "internal error while creating the category"
	msgNameNeedsWordChar = "name must contain letters or digits"
)

// ShowCreateCategory 展示分类创建表单。
func (a *API) ShowCreateCategory(c *gin.Context) {
	a.renderCategoryForm(c, http.StatusOK, categoryForm{}, nil)
}

// CreateCategory validates the form, rejects duplicate slugs and stores the
// category, then redirects to its page.
func (a *API) CreateCategory(c *gin.Context) {
	ctx := c.Request.Context()

	var form categoryForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderCategoryForm(c, http.StatusBadRequest, form, []string{"invalid form submission"})
		return
	}
	form.trim()
	if err := form.Validate(); err != nil {
		a.renderCategoryForm(c, http.StatusUnprocessableEntity, form, validationMessages(err))
		return
	}

	name := sanitizeText(form.Name)
	categorySlug := slug.Derive(name)
	if categorySlug == "" {
		a.renderCategoryForm(c, http.StatusUnprocessableEntity, form, []string{msgNameNeedsWordChar})
		return
	}

	taken, err := a.categories.SlugTaken(ctx, categorySlug)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("slug", categorySlug).Msg("category slug check failed")
		a.renderCategoryForm(c, http.StatusInternalServerError, form, []string{msgCategoryFailed})
		return
	}
	if taken {
		a.renderCategoryForm(c, http.StatusUnprocessableEntity, form, []string{msgCategoryExists})
		return
	}

	category := &db.Category{Name: name, Slug: categorySlug}
	if description := sanitizeText(form.Description); description != "" {
		category.Description = &description
	}
	if err := a.categories.Save(ctx, category); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("slug", categorySlug).Msg("create category failed")
		a.renderCategoryForm(c, http.StatusInternalServerError, form, []string{msgCategoryFailed})
		return
	}

	c.Redirect(http.StatusFound, "/category/"+category.Slug)
}

func (a *API) renderCategoryForm(c *gin.Context, status int, form categoryForm, errs []string) {
	a.renderHTML(c, status, "create_category.html", gin.H{
		"title":    "New category",
		"formData": form,
		"errors":   errs,
	})
}
