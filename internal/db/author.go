package db

import "time"

// Author 定义了作者模型
type Author struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Bio       *string   `gorm:"type:text"`
	Posts     []Post    `gorm:"constraint:OnDelete:RESTRICT"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Persisted reports whether the record maps to a stored row.
func (a *Author) Persisted() bool {
	return a != nil && a.ID > 0
}

// BioText returns the biography or an empty string.
func (a *Author) BioText() string {
	if a == nil || a.Bio == nil {
		return ""
	}
	return *a.Bio
}
