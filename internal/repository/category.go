package repository

import (
	"context"
	"strings"

	"github.com/inkwell/internal/db"
	"github.com/inkwell/internal/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryRepository wraps category related database operations.
type CategoryRepository struct {
	db *gorm.DB
}

var _ Repository[db.Category] = (*CategoryRepository)(nil)

// NewCategoryRepository creates a CategoryRepository instance.
func NewCategoryRepository(gdb *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: gdb}
}

// Load fetches a category by numeric id or by slug, with its posts.
func (r *CategoryRepository) Load(ctx context.Context, identifier string) (*db.Category, error) {
	id, numeric, err := parseIdentifier(identifier)
	if err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Preload("Posts", orderPostsNewestFirst)
	if numeric {
		if id == 0 {
			return nil, nil
		}
		return findOne[db.Category](query.Where("id = ?", id))
	}
	return findOne[db.Category](query.Where("slug = ?", strings.TrimSpace(identifier)))
}

// Save inserts or updates a category. A missing slug is derived from the name.
func (r *CategoryRepository) Save(ctx context.Context, record *db.Category) error {
	if record == nil {
		return ErrInvalidArgument
	}
	if strings.TrimSpace(record.Slug) == "" && record.Name != "" {
		record.Slug = slug.Derive(record.Name)
	}

	tx := r.db.WithContext(ctx)
	if record.Persisted() {
		result := tx.Model(record).
			Select("name", "slug", "description", "updated_at").
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

	var fresh db.Category
	if err := tx.Preload("Posts", orderPostsNewestFirst).First(&fresh, record.ID).Error; err != nil {
		return err
	}
	*record = fresh
	return nil
}

// Delete removes a stored category. Categories still referenced by posts are
// kept by the foreign key and false is returned.
func (r *CategoryRepository) Delete(ctx context.Context, record *db.Category) bool {
	if !record.Persisted() {
		return false
	}
	return deleteByID[db.Category](ctx, r.db, "category", record.ID)
}

// ListAll returns every category ordered by name, with posts for counting.
func (r *CategoryRepository) ListAll(ctx context.Context) ([]db.Category, error) {
	var categories []db.Category
	if err := r.db.WithContext(ctx).
		Preload("Posts").
		Order("name asc, id asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ListPaginated returns one page of categories ordered by name.
func (r *CategoryRepository) ListPaginated(ctx context.Context, page, pageSize int) (*Page[db.Category], error) {
	return paginate[db.Category](ctx, r.db, page, pageSize, "categories.name asc, categories.id asc", nil, preloadPosts)
}

// SlugTaken reports whether a category already uses slug.
func (r *CategoryRepository) SlugTaken(ctx context.Context, value string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&db.Category{}).Where("slug = ?", value).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
