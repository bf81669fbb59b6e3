package main

import (
	"context"
	"fmt"
	"os"

	"github.com/inkwell/internal/config"
	"github.com/inkwell/internal/db"
	"github.com/inkwell/internal/logger"
	"github.com/inkwell/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type seedAuthor struct {
	Name  string
	Email string
	Bio   string
}

type seedCategory struct {
	Name        string
	Slug        string
	Description string
}

type seedPost struct {
	Title       string
	Slug        string
	Content     string
	AuthorEmail string
	Category    string
	Tags        []string
}

var (
	sampleAuthors = []seedAuthor{
		{Name: "João Silva", Email: "joao@example.com", Bio: "Full stack developer with more than five years of **Go** and JavaScript."},
		{Name: "Maria Santos", Email: "maria@example.com", Bio: "UX/UI designer and front-end developer."},
	}

	sampleCategories = []seedCategory{
		{Name: "Programming", Slug: "programming", Description: "Articles about languages, frameworks and libraries."},
		{Name: "Design", Slug: "design", Description: "Design tips, UX/UI and tools for designers."},
		{Name: "Tutorials", Slug: "tutorials", Description: "Step by step programming tutorials."},
	}

	sampleTags = []string{"Go", "JavaScript", "TypeScript", "Tutorial", "Beginner", "Design", "UX", "SQL"}

	samplePosts = []seedPost{
		{
			Title:       "Introduction to TypeScript",
			Slug:        "introduction-to-typescript",
			Content:     "<p>TypeScript adds static types to JavaScript.</p><h3>What is TypeScript?</h3><p>A superset of JavaScript that compiles to plain JavaScript.</p>",
			AuthorEmail: "joao@example.com",
			Category:    "programming",
			Tags:        []string{"TypeScript", "JavaScript", "Tutorial", "Beginner"},
		},
		{
			Title:       "Core Principles of UX Design",
			Slug:        "core-principles-of-ux-design",
			Content:     "<p>Good UX starts with the people who use the product.</p><ul><li>Clarity</li><li>Consistency</li><li>Feedback</li></ul>",
			AuthorEmail: "maria@example.com",
			Category:    "design",
			Tags:        []string{"Design", "UX"},
		},
		{
			Title:       "Building a REST API in Go",
			Slug:        "building-a-rest-api-in-go",
			Content:     "<p>This tutorial builds a small HTTP API with routing, storage and tests.</p><pre><code>go mod init example.com/api</code></pre>",
			AuthorEmail: "joao@example.com",
			Category:    "tutorials",
			Tags:        []string{"Go", "Tutorial", "SQL"},
		},
	}
)

// 测试数据生成器
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	gdb, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}

	if err := seed(context.Background(), gdb); err != nil {
		log.Fatal().Err(err).Msg("seed database")
	}
	log.Info().
		Int("authors", len(sampleAuthors)).
		Int("categories", len(sampleCategories)).
		Int("tags", len(sampleTags)).
		Int("posts", len(samplePosts)).
		Msg("seed complete")
}

// seed inserts the sample rows that are missing, matching on email or slug.
// Running it again changes nothing.
func seed(ctx context.Context, gdb *gorm.DB) error {
	authors := repository.NewAuthorRepository(gdb)
	categories := repository.NewCategoryRepository(gdb)
	tags := repository.NewTagRepository(gdb)
	posts := repository.NewPostRepository(gdb)

	authorIDs := make(map[string]uint, len(sampleAuthors))
	for _, sample := range sampleAuthors {
		author, err := authors.Load(ctx, sample.Email)
		if err != nil {
			return fmt.Errorf("load author %s: %w", sample.Email, err)
		}
		if author == nil {
			bio := sample.Bio
			author = &db.Author{Name: sample.Name, Email: sample.Email, Bio: &bio}
			if err := authors.Save(ctx, author); err != nil {
				return fmt.Errorf("create author %s: %w", sample.Email, err)
			}
		}
		authorIDs[sample.Email] = author.ID
	}

	categoryIDs := make(map[string]uint, len(sampleCategories))
	for _, sample := range sampleCategories {
		category, err := categories.Load(ctx, sample.Slug)
		if err != nil {
			return fmt.Errorf("load category %s: %w", sample.Slug, err)
		}
		if category == nil {
			description := sample.Description
			category = &db.Category{Name: sample.Name, Slug: sample.Slug, Description: &description}
			if err := categories.Save(ctx, category); err != nil {
				return fmt.Errorf("create category %s: %w", sample.Slug, err)
			}
		}
		categoryIDs[sample.Slug] = category.ID
	}

	if _, err := tags.FindOrCreateByNames(ctx, sampleTags); err != nil {
		return fmt.Errorf("create tags: %w", err)
	}

	for _, sample := range samplePosts {
		post, err := posts.Load(ctx, sample.Slug)
		if err != nil {
			return fmt.Errorf("load post %s: %w", sample.Slug, err)
		}
		if post == nil {
			post = &db.Post{
				Title:      sample.Title,
				Slug:       sample.Slug,
				Content:    sample.Content,
				Published:  true,
				AuthorID:   authorIDs[sample.AuthorEmail],
				CategoryID: categoryIDs[sample.Category],
			}
			if err := posts.Save(ctx, post); err != nil {
				return fmt.Errorf("create post %s: %w", sample.Slug, err)
			}
		}

		postTags, err := tags.FindOrCreateByNames(ctx, sample.Tags)
		if err != nil {
			return fmt.Errorf("resolve tags for %s: %w", sample.Slug, err)
		}
		tagIDs := make([]uint, 0, len(postTags))
		for _, tag := range postTags {
			tagIDs = append(tagIDs, tag.ID)
		}
		if err := posts.ReplaceTagAssociations(ctx, post.ID, tagIDs); err != nil {
			return fmt.Errorf("attach tags to %s: %w", sample.Slug, err)
		}
	}

	return nil
}
