package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/inkwell/internal/db"
	"github.com/inkwell/internal/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagRepository wraps tag related database operations.
type TagRepository struct {
	db *gorm.DB
}

var _ Repository[db.Tag] = (*TagRepository)(nil)

// NewTagRepository creates a TagRepository instance.
func NewTagRepository(gdb *gorm.DB) *TagRepository {
	return &TagRepository{db: gdb}
}

// Load fetches a tag by numeric id or by slug. Its posts come with author
// and category.
func (r *TagRepository) Load(ctx context.Context, identifier string) (*db.Tag, error) {
	id, numeric, err := parseIdentifier(identifier)
	if err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Preload("Posts", orderPostsNewestFirst).
		Preload("Posts.Author").
		Preload("Posts.Category")
	if numeric {
		if id == 0 {
			return nil, nil
		}
		return findOne[db.Tag](query.Where("id = ?", id))
	}
	return findOne[db.Tag](query.Where("slug = ?", strings.TrimSpace(identifier)))
}

// Save inserts or updates a tag. A missing slug is derived from the name.
func (r *TagRepository) Save(ctx context.Context, record *db.Tag) error {
	if record == nil {
		return ErrInvalidArgument
	}
	if strings.TrimSpace(record.Slug) == "" && record.Name != "" {
		record.Slug = slug.Derive(record.Name)
	}

	tx := r.db.WithContext(ctx)
	if record.Persisted() {
		result := tx.Model(record).
			Select("name", "slug", "updated_at").
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

	var fresh db.Tag
	if err := tx.First(&fresh, record.ID).Error; err != nil {
		return err
	}
	*record = fresh
	return nil
}

// Delete removes a stored tag. Tags still attached to posts are kept by the
// foreign key on post_tags and false is returned.
func (r *TagRepository) Delete(ctx context.Context, record *db.Tag) bool {
	if !record.Persisted() {
		return false
	}
	return deleteByID[db.Tag](ctx, r.db, "tag", record.ID)
}

// ListAll returns every tag ordered by name, with posts for counting.
func (r *TagRepository) ListAll(ctx context.Context) ([]db.Tag, error) {
	var tags []db.Tag
	if err := r.db.WithContext(ctx).
		Preload("Posts").
		Order("name asc, id asc").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// ListPaginated returns one page of tags ordered by name.
func (r *TagRepository) ListPaginated(ctx context.Context, page, pageSize int) (*Page[db.Tag], error) {
	return paginate[db.Tag](ctx, r.db, page, pageSize, "tags.name asc, tags.id asc", nil, preloadPosts)
}

// SlugTaken reports whether a tag already uses slug.
func (r *TagRepository) SlugTaken(ctx context.Context, value string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&db.Tag{}).Where("slug = ?", value).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindOrCreateByNames resolves each name to a tag, creating missing ones.
// Results follow the input order. Names without a usable slug are skipped.
// Each name is looked up and created on its own, not in one transaction.
func (r *TagRepository) FindOrCreateByNames(ctx context.Context, names []string) ([]db.Tag, error) {
	tags := make([]db.Tag, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		tagSlug := slug.Derive(name)
		if tagSlug == "" {
			continue
		}

		var tag db.Tag
		err := r.db.WithContext(ctx).Where("slug = ?", tagSlug).First(&tag).Error
		switch {
		case err == nil:
		case errors.Is(err, gorm.ErrRecordNotFound):
			tag = db.Tag{Name: name, Slug: tagSlug}
			if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&tag).Error; err != nil {
				return nil, err
			}
		default:
			return nil, err
		}

		tags = append(tags, tag)
	}
	return tags, nil
}
