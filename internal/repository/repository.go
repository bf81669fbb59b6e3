// Package repository holds the data-access layer: one repository per entity,
// all sharing the Repository contract and its pagination and identifier rules.
package repository

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DefaultPageSize is used when a caller passes a non-positive page size.
const DefaultPageSize = 10

var (
	// ErrInvalidArgument is returned by Load when the identifier is blank.
	ErrInvalidArgument = errors.New("identifier is required")
	// ErrInvalidState is returned when tags are attached to an unsaved post.
	ErrInvalidState = errors.New("post must be saved before tags are attached")
)

// Repository is the contract every entity repository implements.
//
// Load returns (nil, nil) when nothing matches. Delete reports false instead
// of returning storage errors; the cause is logged.
type Repository[T any] interface {
	Load(ctx context.Context, identifier string) (*T, error)
	Save(ctx context.Context, record *T) error
	Delete(ctx context.Context, record *T) bool
	ListAll(ctx context.Context) ([]T, error)
	ListPaginated(ctx context.Context, page, pageSize int) (*Page[T], error)
}

// Page is one slice of a paginated listing.
type Page[T any] struct {
	Items      []T
	Total      int64
	TotalPages int
	Page       int
	PageSize   int
}

// TotalPages is ceil(total / pageSize); zero rows give zero pages.
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return int((total-1)/int64(pageSize) + 1)
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

// parseIdentifier decides whether identifier addresses a row by numeric
// identity. Numeric input that cannot be a valid identity yields id 0, which
// matches no row.
func parseIdentifier(identifier string) (id uint, numeric bool, err error) {
	trimmed := strings.TrimSpace(identifier)
	if trimmed == "" {
		return 0, false, ErrInvalidArgument
	}

	value, parseErr := strconv.ParseFloat(trimmed, 64)
	if parseErr != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, false, nil
	}
	if value < 1 || value != math.Trunc(value) || value > math.MaxUint32 {
		return 0, true, nil
	}
	return uint(value), true, nil
}

type scope = func(*gorm.DB) *gorm.DB

func noScope(tx *gorm.DB) *gorm.DB { return tx }

// paginate counts the rows matched by filter, then loads one page of them.
func paginate[T any](ctx context.Context, gdb *gorm.DB, page, pageSize int, order string, filter, load scope) (*Page[T], error) {
	page, pageSize = normalizePage(page, pageSize)
	if filter == nil {
		filter = noScope
	}
	if load == nil {
		load = noScope
	}

	result := &Page[T]{Page: page, PageSize: pageSize, Items: []T{}}
	if err := gdb.WithContext(ctx).Model(new(T)).Scopes(filter).Count(&result.Total).Error; err != nil {
		return nil, err
	}
	result.TotalPages = TotalPages(result.Total, pageSize)

	// page*pageSize may overflow, so the range check works in pages
	if int64(page-1) >= int64(result.TotalPages) {
		return result, nil
	}
	offset := int64(page-1) * int64(pageSize)

	if err := gdb.WithContext(ctx).
		Model(new(T)).
		Scopes(filter, load).
		Order(order).
		Limit(pageSize).
		Offset(int(offset)).
		Find(&result.Items).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// findOne runs query into a fresh T and maps "no rows" to a nil record.
func findOne[T any](query *gorm.DB) (*T, error) {
	var record T
	if err := query.First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// deleteByID removes the row with the given id and reports success. Storage
// failures, including foreign key violations, are logged and reported as false.
func deleteByID[T any](ctx context.Context, gdb *gorm.DB, kind string, id uint) bool {
	result := gdb.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		log.Ctx(ctx).Error().Err(result.Error).Str("entity", kind).Uint("id", id).Msg("delete failed")
		return false
	}
	if result.RowsAffected == 0 {
		log.Ctx(ctx).Warn().Str("entity", kind).Uint("id", id).Msg("delete matched no rows")
		return false
	}
	return true
}
