package models

import (
	"time"

	"github.com/google/uuid"
)

// Storage buckets
const (
	BucketImages  = "images"
	BucketAvatars = "avatars"
)

// ImageDB represents an uploaded-or-generated asset row in the database.
type ImageDB struct {
	ImageID     uuid.UUID `json:"id" db:"image_id"`               // Primary key
	UserID      uuid.UUID `json:"user_id" db:"user_id"`           // Owning profile
	OriginalURL string    `json:"original_url" db:"original_url"` // Public URL of the uploaded original
	EditedURL   *string   `json:"edited_url" db:"edited_url"`     // Public URL of the generated result, optional
	StoragePath string    `json:"storage_path" db:"storage_path"` // Object path of the generated result
	FileName    string    `json:"file_name" db:"file_name"`       // Original file name as uploaded
	FileSize    int64     `json:"file_size" db:"file_size"`       // Original file size in bytes
	Metadata    []byte    `json:"metadata" db:"metadata"`         // Free-form JSON metadata
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
}

// ImageMetadata is the structured part of an image's metadata bag.
type ImageMetadata struct {
	JewelryType  string `json:"jewelryType,omitempty"`
	Gender       string `json:"gender,omitempty"`
	Mode         string `json:"mode,omitempty"`
	PresetID     string `json:"presetId,omitempty"`
	OriginalPath string `json:"originalPath,omitempty"`
	ResultSize   int64  `json:"resultSize,omitempty"` // Generated result size in bytes
}
