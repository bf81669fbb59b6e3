package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const defaultSiteName = "Inkwell"

// API bundles shared dependencies for HTTP handlers.
type API struct {
	authors    *repository.AuthorRepository
	categories *repository.CategoryRepository
	tags       *repository.TagRepository
	posts      *repository.PostRepository
	siteName   string
}

// NewAPI constructs a handler set with one repository per entity.
func NewAPI(gdb *gorm.DB, siteName string) *API {
	siteName = strings.TrimSpace(siteName)
	if siteName == "" {
		siteName = defaultSiteName
	}

	return &API{
		authors:    repository.NewAuthorRepository(gdb),
		categories: repository.NewCategoryRepository(gdb),
		tags:       repository.NewTagRepository(gdb),
		posts:      repository.NewPostRepository(gdb),
		siteName:   siteName,
	}
}

func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["siteName"]; !exists {
		payload["siteName"] = a.siteName
	}
	if _, exists := payload["year"]; !exists {
		payload["year"] = time.Now().Year()
	}
	if title, ok := payload["title"].(string); ok && title != "" {
		payload["pageTitle"] = title + " - " + a.siteName
	} else {
		payload["pageTitle"] = a.siteName
	}

	c.HTML(status, template, payload)
}

// RenderError 渲染统一的错误页面。
func (a *API) RenderError(c *gin.Context, status int, message string) {
	a.renderHTML(c, status, "error.html", gin.H{
		"title":   http.StatusText(status),
		"status":  status,
		"message": message,
	})
}

func (a *API) notFound(c *gin.Context, message string) {
	a.RenderError(c, http.StatusNotFound, message)
}

// storageFailure logs err against the request and answers with a generic 500.
func (a *API) storageFailure(c *gin.Context, err error, message string) {
	log.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.Request.URL.Path).Msg(message)
	_ = c.Error(err)
	a.RenderError(c, http.StatusInternalServerError, message)
}
