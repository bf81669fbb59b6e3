package handler

import (
	"html/template"
	"time"

	"github.com/inkwell/internal/db"
)

const (
	indexExcerptLength    = 200
	listExcerptLength     = 300
	categoryExcerptLength = 250
	relatedExcerptLength  = 150
	relatedPostLimit      = 3
	indexPostLimit        = 6
	indexTagLimit         = 20
)

type tagView struct {
	ID         uint
	Name       string
	Slug       string
	PostsCount int
}

type categoryView struct {
	ID          uint
	Name        string
	Slug        string
	Description string
	PostsCount  int
}

// postCard 是列表页使用的文章摘要。
type postCard struct {
	ID           uint
	Title        string
	Slug         string
	Excerpt      string
	AuthorID     uint
	AuthorName   string
	CategoryName string
	CategorySlug string
	Tags         []tagView
	CreatedAt    time.Time
}

type postDetail struct {
	ID           uint
	Title        string
	Slug         string
	Content      string
	AuthorID     uint
	AuthorName   string
	CategoryName string
	CategorySlug string
	Tags         []tagView
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type authorView struct {
	ID    uint
	Name  string
	Email string
	Bio   template.HTML
}

// option is one entry of a select or checkbox list on the creation forms.
type option struct {
	ID   uint
	Name string
}

func newTagViews(tags []db.Tag) []tagView {
	views := make([]tagView, 0, len(tags))
	for _, tag := range tags {
		views = append(views, tagView{
			ID:         tag.ID,
			Name:       tag.Name,
			Slug:       tag.Slug,
			PostsCount: publishedCount(tag.Posts),
		})
	}
	return views
}

func newCategoryView(category db.Category) categoryView {
	return categoryView{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.DescriptionText(),
		PostsCount:  publishedCount(category.Posts),
	}
}

func newCategoryViews(categories []db.Category) []categoryView {
	views := make([]categoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, newCategoryView(category))
	}
	return views
}

func newPostCard(post db.Post, excerptLength int) postCard {
	card := postCard{
		ID:        post.ID,
		Title:     post.Title,
		Slug:      post.Slug,
		Excerpt:   post.Excerpt(excerptLength),
		AuthorID:  post.AuthorID,
		Tags:      newTagViews(post.Tags),
		CreatedAt: post.CreatedAt,
	}
	if post.Author != nil {
		card.AuthorName = post.Author.Name
	}
	if post.Category != nil {
		card.CategoryName = post.Category.Name
		card.CategorySlug = post.Category.Slug
	}
	return card
}

func newPostCards(posts []db.Post, excerptLength int) []postCard {
	cards := make([]postCard, 0, len(posts))
	for _, post := range posts {
		cards = append(cards, newPostCard(post, excerptLength))
	}
	return cards
}

// newPostDetail keeps the stored body as is. The template emits it unescaped.
func newPostDetail(post *db.Post) postDetail {
	detail := postDetail{
		ID:        post.ID,
		Title:     post.Title,
		Slug:      post.Slug,
		Content:   post.Content,
		AuthorID:  post.AuthorID,
		Tags:      newTagViews(post.Tags),
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
	if post.Author != nil {
		detail.AuthorName = post.Author.Name
	}
	if post.Category != nil {
		detail.CategoryName = post.Category.Name
		detail.CategorySlug = post.Category.Slug
	}
	return detail
}

func publishedCount(posts []db.Post) int {
	count := 0
	for _, post := range posts {
		if post.Published {
			count++
		}
	}
	return count
}

func publishedOnly(posts []db.Post) []db.Post {
	filtered := make([]db.Post, 0, len(posts))
	for _, post := range posts {
		if post.Published {
			filtered = append(filtered, post)
		}
	}
	return filtered
}
