package models

import (
	"time"

	"github.com/google/uuid"
)

// Generation statuses
const (
	GenerationPending    = "pending"
	GenerationProcessing = "processing"
	GenerationCompleted  = "completed"
	GenerationFailed     = "failed"
)

// Generation modes
const (
	ModeQuick     = "quick"
	ModeSelective = "selective"
	ModeAdvanced  = "advanced"
)

// AIGenerationDB represents one inference call, persisted both as an audit
// log and as the rate limiter's counting source.
type AIGenerationDB struct {
	GenerationID   uuid.UUID  `json:"id" db:"generation_id"`                // Primary key
	UserID         uuid.UUID  `json:"user_id" db:"user_id"`                 // Owning profile
	ImageID        *uuid.UUID `json:"image_id" db:"image_id"`               // Linked image row, optional
	ModelName      string     `json:"model_name" db:"model_name"`           // Inference model identifier
	Prompt         string     `json:"prompt" db:"prompt"`                   // Full prompt text
	NegativePrompt *string    `json:"negative_prompt" db:"negative_prompt"` // Negative prompt text, optional
	Parameters     []byte     `json:"parameters" db:"parameters"`           // JSON parameter bag
	Status         string     `json:"status" db:"status"`                   // pending, processing, completed, failed
	InferenceTime  *float64   `json:"inference_time" db:"inference_time"`   // Inference duration in seconds, optional
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`           // Creation timestamp
}

// GenerationParams is the structured parameter bag stored with a generation.
type GenerationParams struct {
	Strength      float64 `json:"strength"`
	GuidanceScale float64 `json:"guidanceScale"`
	Seed          int64   `json:"seed"`
	Mode          string  `json:"mode"`
	PresetID      string  `json:"presetId,omitempty"`
}

// GenerationEvent is the audit event published to Kafka after a completed
// generation.
type GenerationEvent struct {
	GenerationID  string  `json:"generation_id"`  // GenerationID identifies the ai_generations row.
	UserID        string  `json:"user_id"`        // UserID is the identifier of the requesting user.
	Timestamp     int64   `json:"timestamp"`      // Timestamp is the Unix timestamp (in seconds) of completion.
	ModelName     string  `json:"model_name"`     // ModelName is the inference model used.
	Mode          string  `json:"mode"`           // Mode is one of quick, selective, advanced.
	InferenceTime float64 `json:"inference_time"` // InferenceTime is the reported inference duration in seconds.
}
