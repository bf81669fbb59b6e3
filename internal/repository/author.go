package repository

import (
	"context"
	"strings"

	"github.com/inkwell/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AuthorRepository wraps author related database operations.
type AuthorRepository struct {
	db *gorm.DB
}

var _ Repository[db.Author] = (*AuthorRepository)(nil)

// NewAuthorRepository creates an AuthorRepository instance.
func NewAuthorRepository(gdb *gorm.DB) *AuthorRepository {
	return &AuthorRepository{db: gdb}
}

// Load fetches an author by numeric id or, failing that, by email. Posts come
// newest first with their category.
func (r *AuthorRepository) Load(ctx context.Context, identifier string) (*db.Author, error) {
	id, numeric, err := parseIdentifier(identifier)
	if err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Preload("Posts", orderPostsNewestFirst).
		Preload("Posts.Category")
	if numeric {
		if id == 0 {
			return nil, nil
		}
		return findOne[db.Author](query.Where("id = ?", id))
	}
	return findOne[db.Author](query.Where("email = ?", strings.TrimSpace(identifier)))
}

// Save inserts a new author or updates name, email and bio of an existing one.
func (r *AuthorRepository) Save(ctx context.Context, record *db.Author) error {
	if record == nil {
		return ErrInvalidArgument
	}

	tx := r.db.WithContext(ctx)
	if record.Persisted() {
		result := tx.Model(record).
			Select("name", "email", "bio", "updated_at").
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

	var fresh db.Author
	if err := tx.Preload("Posts", orderPostsNewestFirst).First(&fresh, record.ID).Error; err != nil {
		return err
	}
	*record = fresh
	return nil
}

// Delete removes a stored author. Authors that still own posts are kept by
// the foreign key and false is returned.
func (r *AuthorRepository) Delete(ctx context.Context, record *db.Author) bool {
	if !record.Persisted() {
		return false
	}
	return deleteByID[db.Author](ctx, r.db, "author", record.ID)
}

// ListAll returns every author ordered by name.
func (r *AuthorRepository) ListAll(ctx context.Context) ([]db.Author, error) {
	var authors []db.Author
	if err := r.db.WithContext(ctx).
		Preload("Posts").
		Order("name asc, id asc").
		Find(&authors).Error; err != nil {
		return nil, err
	}
	return authors, nil
}

// ListPaginated returns one page of authors ordered by name.
func (r *AuthorRepository) ListPaginated(ctx context.Context, page, pageSize int) (*Page[db.Author], error) {
	return paginate[db.Author](ctx, r.db, page, pageSize, "authors.name asc, authors.id asc", nil, preloadPosts)
}

// EmailTaken reports whether another author already uses email.
// excludeID skips the author being edited; pass 0 when creating.
func (r *AuthorRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	query := r.db.WithContext(ctx).Model(&db.Author{}).Where("email = ?", strings.TrimSpace(email))
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func preloadPosts(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Posts")
}

func orderPostsNewestFirst(tx *gorm.DB) *gorm.DB {
	return tx.Order("posts.created_at desc, posts.id desc")
}
