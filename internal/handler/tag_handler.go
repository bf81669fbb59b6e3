package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/internal/db"
	"github.com/inkwell/internal/slug"
	"github.com/rs/zerolog/log"
)

const (
	msgTagExists = "a tag with this name already exists"
	msgTagFailed = "internal error while creating the tag"
)

// ShowCreateTag 展示标签创建表单。
func (a *API) ShowCreateTag(c *gin.Context) {
	a.renderTagForm(c, http.StatusOK, tagForm{}, nil)
}

// CreateTag 创建新标签
func (a *API) CreateTag(c *gin.Context) {
	ctx := c.Request.Context()

	var form tagForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderTagForm(c, http.StatusBadRequest, form, []string{"invalid form submission"})
		return
	}
	form.trim()
	if err := form.Validate(); err != nil {
		a.renderTagForm(c, http.StatusUnprocessableEntity, form, validationMessages(err))
		return
	}

	name := sanitizeText(form.Name)
	tagSlug := slug.Derive(name)
	if tagSlug == "" {
		a.renderTagForm(c, http.StatusUnprocessableEntity, form, []string{msgNameNeedsWordChar})
		return
	}

	taken, err := a.tags.SlugTaken(ctx, tagSlug)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("slug", tagSlug).Msg("tag slug check failed")
		a.renderTagForm(c, http.StatusInternalServerError, form, []string{msgTagFailed})
		return
	}
	if taken {
		a.renderTagForm(c, http.StatusUnprocessableEntity, form, []string{msgTagExists})
		return
	}

	if err := a.tags.Save(ctx, &db.Tag{Name: name, Slug: tagSlug}); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("slug", tagSlug).Msg("create tag failed")
		a.renderTagForm(c, http.StatusInternalServerError, form, []string{msgTagFailed})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (a *API) renderTagForm(c *gin.Context, status int, form tagForm, errs []string) {
	a.renderHTML(c, status, "create_tag.html", gin.H{
		"title":    "New tag",
		"formData": form,
		"errors":   errs,
	})
}
