package repository

import (
	"context"
	"strings"

	"github.com/inkwell/internal/db"
	"github.com/inkwell/internal/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const postOrder = "posts.created_at desc, posts.id desc"

// PostRepository wraps post related database operations.
type PostRepository struct {
	db *gorm.DB
}

var _ Repository[db.Post] = (*PostRepository)(nil)

// NewPostRepository creates a PostRepository instance.
func NewPostRepository(gdb *gorm.DB) *PostRepository {
	return &PostRepository{db: gdb}
}

// Load fetches a post by numeric id or by slug with author, category and tags.
func (r *PostRepository) Load(ctx context.Context, identifier string) (*db.Post, error) {
	id, numeric, err := parseIdentifier(identifier)
	if err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Scopes(preloadPostRelations)
	if numeric {
		if id == 0 {
			return nil, nil
		}
		return findOne[db.Post](query.Where("posts.id = ?", id))
	}
	return findOne[db.Post](query.Where("posts.slug = ?", strings.TrimSpace(identifier)))
}

// Save inserts or updates a post. A missing slug is derived from the title.
// Tags are not touched here, see ReplaceTagAssociations.
func (r *PostRepository) Save(ctx context.Context, record *db.Post) error {
	if record == nil {
		return ErrInvalidArgument
	}
	if strings.TrimSpace(record.Slug) == "" && record.Title != "" {
		record.Slug = slug.Derive(record.Title)
	}

	tx := r.db.WithContext(ctx)
	if record.Persisted() {
		result := tx.Model(record).
			Omit(clause.Associations).
			Select("title", "slug", "content", "published", "author_id", "category_id", "updated_at").
			Updates(record)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
	} else if err := tx.Omit(clause.Associations).Create(record).Error; err != nil {
		return err
	}

	var fresh db.Post
	if err := tx.Scopes(preloadPostRelations).First(&fresh, record.ID).Error; err != nil {
		return err
	}
	*record = fresh
	return nil
}

// Delete removes a stored post together with its tag associations.
func (r *PostRepository) Delete(ctx context.Context, record *db.Post) bool {
	if !record.Persisted() {
		return false
	}

	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", record.ID).Delete(&db.PostTag{}).Error; err != nil {
			return err
		}
		deleted = deleteByID[db.Post](ctx, tx, "post", record.ID)
		if !deleted {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return err == nil && deleted
}

// ListAll returns every post, drafts included, newest first.
func (r *PostRepository) ListAll(ctx context.Context) ([]db.Post, error) {
	var posts []db.Post
	if err := r.db.WithContext(ctx).
		Scopes(preloadPostRelations).
		Order(postOrder).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListPaginated returns one page of all posts, drafts included.
func (r *PostRepository) ListPaginated(ctx context.Context, page, pageSize int) (*Page[db.Post], error) {
	return paginate[db.Post](ctx, r.db, page, pageSize, postOrder, nil, preloadPostRelations)
}

// ListPublished returns one page of published posts.
func (r *PostRepository) ListPublished(ctx context.Context, page, pageSize int) (*Page[db.Post], error) {
	return paginate[db.Post](ctx, r.db, page, pageSize, postOrder, publishedOnly, preloadPostRelations)
}

// ListByCategory returns one page of published posts in the category.
func (r *PostRepository) ListByCategory(ctx context.Context, categorySlug string, page, pageSize int) (*Page[db.Post], error) {
	filter := func(tx *gorm.DB) *gorm.DB {
		return publishedOnly(tx).
			Where("posts.category_id IN (SELECT categories.id FROM categories WHERE categories.slug = ?)", categorySlug)
	}
	return paginate[db.Post](ctx, r.db, page, pageSize, postOrder, filter, preloadPostRelations)
}

// ListByTag returns one page of published posts carrying the tag.
func (r *PostRepository) ListByTag(ctx context.Context, tagSlug string, page, pageSize int) (*Page[db.Post], error) {
	filter := func(tx *gorm.DB) *gorm.DB {
		return publishedOnly(tx).
			Where("posts.id IN (SELECT post_tags.post_id FROM post_tags JOIN tags ON tags.id = post_tags.tag_id WHERE tags.slug = ?)", tagSlug)
	}
	return paginate[db.Post](ctx, r.db, page, pageSize, postOrder, filter, preloadPostRelations)
}

// Related returns up to limit other published posts from the same category.
func (r *PostRepository) Related(ctx context.Context, post *db.Post, limit int) ([]db.Post, error) {
	if !post.Persisted() || post.CategoryID == 0 || limit <= 0 {
		return []db.Post{}, nil
	}

	var posts []db.Post
	if err := r.db.WithContext(ctx).
		Scopes(publishedOnly, preloadPostRelations).
		Where("posts.category_id = ? AND posts.id <> ?", post.CategoryID, post.ID).
		Order(postOrder).
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ReplaceTagAssociations swaps the post's whole tag set for tagIDs. The clear
// and the inserts share one transaction, so a failure keeps the old set.
func (r *PostRepository) ReplaceTagAssociations(ctx context.Context, postID uint, tagIDs []uint) error {
	if postID == 0 {
		return ErrInvalidState
	}

	seen := make(map[uint]struct{}, len(tagIDs))
	rows := make([]db.PostTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		if tagID == 0 {
			continue
		}
		if _, ok := seen[tagID]; ok {
			continue
		}
		seen[tagID] = struct{}{}
		rows = append(rows, db.PostTag{PostID: postID, TagID: tagID})
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&db.PostTag{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func publishedOnly(tx *gorm.DB) *gorm.DB {
	return tx.Where("posts.published = ?", true)
}

func preloadPostRelations(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Category").
		Preload("Tags", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("tags.name asc, tags.id asc")
		})
}
