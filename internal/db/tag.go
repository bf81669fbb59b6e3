package db

import "time"

// Tag 定义了标签模型
type Tag struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Slug      string `gorm:"uniqueIndex;not null"`
	Posts     []Post `gorm:"many2many:post_tags;"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Persisted reports whether the record maps to a stored row.
func (t *Tag) Persisted() bool {
	return t != nil && t.ID > 0
}

// PostTag is the join row between a post and a tag.
type PostTag struct {
	PostID    uint `gorm:"primaryKey"`
	TagID     uint `gorm:"primaryKey"`
	CreatedAt time.Time
}
