package db

import "time"

// Category 定义了分类模型
type Category struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"not null"`
	Slug        string  `gorm:"uniqueIndex;not null"`
	Description *string `gorm:"type:text"`
	Posts       []Post  `gorm:"constraint:OnDelete:RESTRICT"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Persisted reports whether the record maps to a stored row.
func (c *Category) Persisted() bool {
	return c != nil && c.ID > 0
}

// DescriptionText returns the description or an empty string.
func (c *Category) DescriptionText() string {
	if c == nil || c.Description == nil {
		return ""
	}
	return *c.Description
}
