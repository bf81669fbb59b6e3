package router

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/internal/handler"
	"github.com/inkwell/internal/middleware"
	"github.com/inkwell/web"
	"gorm.io/gorm"
)

// FuncMap 返回模板中可用的自定义函数。
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"formatDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("Jan 2, 2006")
		},
		"timeAgo": func(t time.Time) string {
			return formatRelativeTime(time.Now(), t)
		},
		// post bodies are trusted author HTML
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	}
}

// formatRelativeTime renders t relative to now in coarse English units.
func formatRelativeTime(now, t time.Time) string {
	if t.IsZero() {
		return ""
	}

	diff := now.Sub(t)
	if diff < time.Minute {
		return "just now"
	}

	switch {
	case diff < time.Hour:
		return plural(int(diff/time.Minute), "minute")
	case diff < 24*time.Hour:
		return plural(int(diff/time.Hour), "hour")
	case diff < 30*24*time.Hour:
		return plural(int(diff/(24*time.Hour)), "day")
	case diff < 365*24*time.Hour:
		return plural(int(diff/(30*24*time.Hour)), "month")
	default:
		return plural(int(diff/(365*24*time.Hour)), "year")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// LoadTemplates parses the embedded page templates.
func LoadTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(FuncMap()).ParseFS(web.Templates, "template/*.html")
	if err != nil {
		return nil, fmt.Errorf("router: parse templates: %w", err)
	}
	return tmpl, nil
}

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(gdb *gorm.DB, siteName string) (*gin.Engine, error) {
	tmpl, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	api := handler.NewAPI(gdb, siteName)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(func(c *gin.Context) {
			api.RenderError(c, http.StatusInternalServerError, "Internal server error")
		}),
	)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	r.GET("/", api.ShowIndex)
	r.GET("/posts", api.ShowPosts)
	r.GET("/post/:slug", api.ShowPost)
	r.GET("/category/:slug", api.ShowCategory)
	r.GET("/tag/:slug", api.ShowTag)
	r.GET("/author/:identifier", api.ShowAuthor)

	create := r.Group("/create")
	{
		create.GET("/post", api.ShowCreatePost)
		create.POST("/post", api.CreatePost)
		create.GET("/category", api.ShowCreateCategory)
		create.POST("/category", api.CreateCategory)
		create.GET("/tag", api.ShowCreateTag)
		create.POST("/tag", api.CreateTag)
	}

	r.NoRoute(func(c *gin.Context) {
		api.RenderError(c, http.StatusNotFound, "Page not found")
	})

	return r, nil
}
