package db

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const excerptEllipsis = "..."

// Post 定义了文章模型。Content 按原样保存，可能包含作者编写的 HTML。
type Post struct {
	ID         uint      `gorm:"primaryKey"`
	Title      string    `gorm:"not null"`
	Slug       string    `gorm:"uniqueIndex;not null"`
	Content    string    `gorm:"type:text;not null"`
	Published  bool      `gorm:"not null;default:false;index"`
	AuthorID   uint      `gorm:"not null;index"`
	Author     *Author
	CategoryID uint      `gorm:"not null;index"`
	Category   *Category
	Tags       []Tag     `gorm:"many2many:post_tags;"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
}

// Persisted reports whether the record maps to a stored row.
func (p *Post) Persisted() bool {
	return p != nil && p.ID > 0
}

// Excerpt returns the content cut to limit runes followed by an ellipsis.
// Content that already fits is returned unchanged.
func (p *Post) Excerpt(limit int) string {
	if p == nil || p.Content == "" {
		return ""
	}
	if limit < 0 {
		limit = 0
	}
	if utf8.RuneCountInString(p.Content) <= limit {
		return p.Content
	}

	runes := []rune(p.Content)
	return strings.TrimRightFunc(string(runes[:limit]), unicode.IsSpace) + excerptEllipsis
}

// TagNames lists the names of the loaded tags in order.
func (p *Post) TagNames() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.Tags))
	for _, tag := range p.Tags {
		names = append(names, tag.Name)
	}
	return names
}
