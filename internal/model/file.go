package model

import "time"

// UploadedFile holds the metadata of a file accepted by the upload pipeline.
// The bytes themselves live on disk at FilePath; StoredFilename is the
// collision-resistant name under the upload root, distinct from the name the
// client supplied.
type UploadedFile struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	OriginalFilename string    `gorm:"size:255;not null" json:"original_filename"`
	StoredFilename   string    `gorm:"size:512;not null;uniqueIndex" json:"stored_filename"`
	FileSize         int64     `gorm:"not null" json:"file_size"`
	ContentType      string    `gorm:"size:100" json:"content_type"`
	FilePath         string    `gorm:"size:1024;not null" json:"file_path"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
