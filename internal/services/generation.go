package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/jewelshot/jewelshot-api/internal/facades"
	"github.com/jewelshot/jewelshot-api/internal/logger"
	"github.com/jewelshot/jewelshot-api/internal/models"
	"github.com/jewelshot/jewelshot-api/internal/prompts"
	"github.com/jewelshot/jewelshot-api/internal/validation"
)

// Error variables
var (
	ErrRateLimited      = errors.New("rate limit exceeded")
	ErrInvalidUpload    = errors.New("invalid upload")
	ErrInvalidPrompt    = errors.New("invalid prompt")
	ErrGenerationFailed = errors.New("generation produced no image")
)

// ImageGenerator abstracts the inference facade.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, opts facades.GenerateImageOptions) (*facades.GenerationResult, error)
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// ImageUploader stores image bytes and enforces quota.
type ImageUploader interface {
	UploadImage(ctx context.Context, userID *uuid.UUID, fileName, contentType string, data []byte) (string, string, error)
}

// RateChecker decides whether a user may run one more generation.
type RateChecker interface {
	Check(ctx context.Context, userID uuid.UUID) RateLimitResult
}

// CreditDeducter takes one credit from a profile.
type CreditDeducter interface {
	Deduct(ctx context.Context, userID uuid.UUID) (int64, error)
}

// ImageSaver persists image rows.
type ImageSaver interface {
	Save(ctx context.Context, image models.ImageDB) (uuid.UUID, error)
}

// GenerationSaver persists generation rows.
type GenerationSaver interface {
	Save(ctx context.Context, gen models.AIGenerationDB) (uuid.UUID, error)
}

// GenerationLister lists a user's generation history.
type GenerationLister interface {
	ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.AIGenerationDB, error)
}

// ProfileCounter bumps the lifetime generation counter.
type ProfileCounter interface {
	IncrementGenerationCount(ctx context.Context, profileID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// GenerateRequest carries everything one generation needs.
type GenerateRequest struct {
	UserID *uuid.UUID // nil for anonymous trials

	FileName    string
	ContentType string
	Data        []byte

	Mode    string // quick, selective, advanced
	Options prompts.Options

	Strength      float64 // 0 means the model default
	GuidanceScale float64 // 0 means the model default
	Seed          int64   // 0 means random
}

// GenerateResult is the outcome of a successful generation.
type GenerateResult struct {
	ImageID       *uuid.UUID      `json:"image_id,omitempty"`
	GenerationID  *uuid.UUID      `json:"generation_id,omitempty"`
	OriginalURL   string          `json:"original_url"`
	ResultURL     string          `json:"result_url"`
	InferenceTime float64         `json:"inference_time"`
	Seed          int64           `json:"seed"`
	Credits       int64           `json:"credits"`
	RateLimit     RateLimitResult `json:"-"`
}

// GenerationService orchestrates the full pipeline: validation, rate limit,
// credit deduction, original upload, inference, result upload, persistence
// and the audit event. Anonymous requests skip everything tied to a profile.
type GenerationService struct {
	generator   ImageGenerator
	uploader    ImageUploader
	limiter     RateChecker
	credits     CreditDeducter
	images      ImageSaver
	generations GenerationSaver
	history     GenerationLister
	counter     ProfileCounter
	cache       ProfileCache
	kafkaWriter KafkaWriter
}

// NewGenerationService creates a new GenerationService.
func NewGenerationService(
	generator ImageGenerator,
	uploader ImageUploader,
	limiter RateChecker,
	credits CreditDeducter,
	images ImageSaver,
	generations GenerationSaver,
	history GenerationLister,
	counter ProfileCounter,
	cache ProfileCache,
	kafkaWriter KafkaWriter,
) *GenerationService {
	return &GenerationService{
		generator:   generator,
		uploader:    uploader,
		limiter:     limiter,
		credits:     credits,
		images:      images,
		generations: generations,
		history:     history,
		counter:     counter,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// buildPrompt validates advanced-mode text and assembles the prompt pair.
func buildPrompt(req GenerateRequest) (prompts.Prompt, error) {
	switch req.Mode {
	case models.ModeSelective:
		return prompts.BuildSelective(req.Options), nil
	case models.ModeAdvanced:
		if custom := req.Options.CustomPrompt; custom != "" {
			if res := validation.ValidatePrompt(custom); !res.Valid {
				return prompts.Prompt{}, fmt.Errorf("%w: %s", ErrInvalidPrompt, res.Error)
			}
			req.Options.CustomPrompt = validation.SanitizePrompt(custom)
		}
		if negative := req.Options.NegativePrompt; negative != "" {
			if res := validation.ValidateNegativePrompt(negative); !res.Valid {
				return prompts.Prompt{}, fmt.Errorf("%w: %s", ErrInvalidPrompt, res.Error)
			}
			req.Options.NegativePrompt = validation.SanitizePrompt(negative)
		}
		return prompts.BuildAdvanced(req.Options), nil
	default:
		return prompts.BuildQuick(req.Options), nil
	}
}

// Generate runs one image generation end to end.
func (svc *GenerationService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if res := validation.ValidateFileUpload(req.FileName, req.ContentType, int64(len(req.Data))); !res.Valid {
		return nil, fmt.Errorf("%w: %s", ErrInvalidUpload, res.Error)
	}

	prompt, err := buildPrompt(req)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{}

	if req.UserID != nil {
		result.RateLimit = svc.limiter.Check(ctx, *req.UserID)
		if !result.RateLimit.Allowed {
			minutes := int(time.Until(result.RateLimit.ResetAt).Minutes()) + 1
			return nil, fmt.Errorf("%w: try again in %d minutes", ErrRateLimited, minutes)
		}

		// Deducted up front: a failed inference costs the credit. Refunds
		// would let a client farm free retries by aborting requests.
		remaining, err := svc.credits.Deduct(ctx, *req.UserID)
		if err != nil {
			return nil, err
		}
		result.Credits = remaining
	}

	originalPath := ""
	if req.UserID != nil {
		path, url, err := svc.uploader.UploadImage(ctx, req.UserID, req.FileName, req.ContentType, req.Data)
		if err != nil {
			svc.recordFailure(ctx, req, prompt, err)
			return nil, err
		}
		originalPath = path
		result.OriginalURL = url
	} else {
		// Anonymous originals still go to the store so the inference
		// service has a fetchable URL, but nothing is persisted.
		_, url, err := svc.uploader.UploadImage(ctx, nil, req.FileName, req.ContentType, req.Data)
		if err != nil {
			return nil, err
		}
		result.OriginalURL = url
	}

	genResult, err := svc.generator.GenerateImage(ctx, facades.GenerateImageOptions{
		ImageURL:       result.OriginalURL,
		Prompt:         prompt.Prompt,
		NegativePrompt: prompt.NegativePrompt,
		Strength:       req.Strength,
		GuidanceScale:  req.GuidanceScale,
		Seed:           req.Seed,
	})
	if err != nil {
		logger.Log.Errorw("inference failed", "mode", req.Mode, "err", err)
		svc.recordFailure(ctx, req, prompt, err)
		return nil, err
	}
	if len(genResult.Images) == 0 {
		svc.recordFailure(ctx, req, prompt, ErrGenerationFailed)
		return nil, ErrGenerationFailed
	}

	result.InferenceTime = genResult.Timings.Inference
	result.Seed = genResult.Seed
	result.ResultURL = genResult.Images[0].URL

	if req.UserID == nil {
		return result, nil
	}

	// Re-host the result: inference URLs expire.
	data, err := svc.generator.FetchImage(ctx, genResult.Images[0].URL)
	if err != nil {
		logger.Log.Errorw("failed to fetch generated image", "err", err)
		svc.recordFailure(ctx, req, prompt, err)
		return nil, err
	}

	resultPath, resultURL, err := svc.uploader.UploadImage(ctx, req.UserID, "result.png", "image/png", data)
	if err != nil {
		svc.recordFailure(ctx, req, prompt, err)
		return nil, err
	}
	result.ResultURL = resultURL

	metadata, _ := json.Marshal(models.ImageMetadata{
		JewelryType:  req.Options.JewelryType,
		Gender:       req.Options.Gender,
		Mode:         req.Mode,
		PresetID:     req.Options.PresetID,
		OriginalPath: originalPath,
		ResultSize:   int64(len(data)),
	})

	imageID, err := svc.images.Save(ctx, models.ImageDB{
		UserID:      *req.UserID,
		OriginalURL: result.OriginalURL,
		EditedURL:   &resultURL,
		StoragePath: resultPath,
		FileName:    req.FileName,
		FileSize:    int64(len(req.Data)),
		Metadata:    metadata,
	})
	if err != nil {
		logger.Log.Errorw("failed to save image row", "userID", *req.UserID, "err", err)
		return nil, err
	}
	result.ImageID = &imageID

	params, _ := json.Marshal(models.GenerationParams{
		Strength:      genOrDefault(req.Strength, 0.75),
		GuidanceScale: genOrDefault(req.GuidanceScale, 7.5),
		Seed:          genResult.Seed,
		Mode:          req.Mode,
		PresetID:      req.Options.PresetID,
	})

	inference := genResult.Timings.Inference
	generationID, err := svc.generations.Save(ctx, models.AIGenerationDB{
		UserID:         *req.UserID,
		ImageID:        &imageID,
		ModelName:      facades.ModelFluxPro,
		Prompt:         prompt.Prompt,
		NegativePrompt: &prompt.NegativePrompt,
		Parameters:     params,
		Status:         models.GenerationCompleted,
		InferenceTime:  &inference,
	})
	if err != nil {
		logger.Log.Errorw("failed to save generation row", "userID", *req.UserID, "err", err)
		return nil, err
	}
	result.GenerationID = &generationID

	if err := svc.counter.IncrementGenerationCount(ctx, *req.UserID); err != nil {
		logger.Log.Errorw("failed to bump generation count", "userID", *req.UserID, "err", err)
		return nil, err
	}

	svc.publishEvent(ctx, models.GenerationEvent{
		GenerationID:  generationID.String(),
		UserID:        req.UserID.String(),
		Timestamp:     time.Now().Unix(),
		ModelName:     facades.ModelFluxPro,
		Mode:          req.Mode,
		InferenceTime: inference,
	})

	if svc.cache != nil {
		if err := svc.cache.Invalidate(ctx, *req.UserID); err != nil {
			logger.Log.Warnw("failed to invalidate profile cache", "userID", *req.UserID, "err", err)
		}
	}

	return result, nil
}

// History returns the user's most recent generations.
func (svc *GenerationService) History(ctx context.Context, userID uuid.UUID, limit int) ([]models.AIGenerationDB, error) {
	gens, err := svc.history.ListByUserID(ctx, userID, limit)
	if err != nil {
		logger.Log.Errorw("failed to list generations", "userID", userID, "err", err)
		return nil, err
	}
	return gens, nil
}

// recordFailure persists a failed generation row so the attempt still counts
// against the rate limit window. Persistence errors are only logged.
func (svc *GenerationService) recordFailure(ctx context.Context, req GenerateRequest, prompt prompts.Prompt, cause error) {
	if req.UserID == nil {
		return
	}

	params, _ := json.Marshal(models.GenerationParams{
		Strength:      genOrDefault(req.Strength, 0.75),
		GuidanceScale: genOrDefault(req.GuidanceScale, 7.5),
		Seed:          req.Seed,
		Mode:          req.Mode,
		PresetID:      req.Options.PresetID,
	})

	if _, err := svc.generations.Save(ctx, models.AIGenerationDB{
		UserID:         *req.UserID,
		ModelName:      facades.ModelFluxPro,
		Prompt:         prompt.Prompt,
		NegativePrompt: &prompt.NegativePrompt,
		Parameters:     params,
		Status:         models.GenerationFailed,
	}); err != nil {
		logger.Log.Errorw("failed to record failed generation", "userID", *req.UserID, "cause", cause, "err", err)
	}
}

// publishEvent publishes a completed generation to Kafka.
func (svc *GenerationService) publishEvent(ctx context.Context, event models.GenerationEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "generation_id", event.GenerationID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal generation event for Kafka", "generation_id", event.GenerationID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.GenerationID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish generation event to Kafka", "generation_id", event.GenerationID, "error", err)
	} else {
		logger.Log.Infow("Generation event published to Kafka", "generation_id", event.GenerationID)
	}
}

func genOrDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
