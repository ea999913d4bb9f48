// Package model contain gorm model for recording data to database
package model

import "time"

// FixedExtension is a curated blockable extension. The set is small (at most
// 10 rows) and administrator controlled; entries start unblocked.
type FixedExtension struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Extension   string    `gorm:"size:20;not null;uniqueIndex" json:"extension"`
	IsBlocked   bool      `gorm:"not null;default:false" json:"is_blocked"`
	Description string    `gorm:"size:100" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CustomExtension is a user-added blockable extension. The set holds at most
// 200 rows and entries are blocked from the moment they are created.
type CustomExtension struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Extension string    `gorm:"size:20;not null;uniqueIndex" json:"extension"`
	IsBlocked bool      `gorm:"not null;default:true" json:"is_blocked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
