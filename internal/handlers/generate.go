package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jewelshot/jewelshot-api/internal/apperrors"
	"github.com/jewelshot/jewelshot-api/internal/logger"
	"github.com/jewelshot/jewelshot-api/internal/prompts"
	"github.com/jewelshot/jewelshot-api/internal/services"
	"github.com/jewelshot/jewelshot-api/internal/validation"
)

// maxGenerateForm bounds the multipart form in memory. The image itself is
// capped separately by validation.MaxFileSize.
const maxGenerateForm = validation.MaxFileSize + 1<<20

// Generator defines the interface that the service must implement.
type Generator interface {
	Generate(ctx context.Context, req services.GenerateRequest) (*services.GenerateResult, error)
}

// GenerateResponse represents a successful generation response
// swagger:model GenerateResponse
type GenerateResponse struct {
	// Image row id, absent for anonymous requests
	ImageID string `json:"image_id,omitempty"`

	// Generation row id, absent for anonymous requests
	GenerationID string `json:"generation_id,omitempty"`

	// Public URL of the uploaded original
	OriginalURL string `json:"original_url"`

	// Public URL of the generated image
	ResultURL string `json:"result_url"`

	// Inference time in seconds
	InferenceTime float64 `json:"inference_time"`

	// Seed used by the model
	Seed int64 `json:"seed"`

	// Remaining credits, absent for anonymous requests
	Credits *int64 `json:"credits,omitempty"`
}

// GenerateErrorResponse represents an error response for generation
// swagger:model GenerateErrorResponse
type GenerateErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewGenerateHandler returns an HTTP handler for image generation.
// Requests without a token run as anonymous trials: no rate limit, no
// credits and nothing persisted.
// @Summary Generate a jewelry photo
// @Description Uploads a jewelry image and transforms it with the configured inference model. Authenticated requests consume one credit and are rate limited.
// @Tags generation
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Jewelry image (JPEG, PNG or WebP, max 10MB)"
// @Param mode formData string false "quick, selective or advanced"
// @Param jewelryType formData string false "ring, necklace, earring or bracelet"
// @Param gender formData string false "women or men"
// @Param presetId formData string false "Quick-mode preset id"
// @Success 200 {object} handlers.GenerateResponse "Generated"
// @Failure 400 {object} handlers.GenerateErrorResponse "Invalid upload or prompt"
// @Failure 402 {object} handlers.GenerateErrorResponse "Insufficient credits"
// @Failure 429 {object} handlers.GenerateErrorResponse "Rate limit exceeded"
// @Router /generate [post]
// @Security BearerAuth
func NewGenerateHandler(svc Generator, tokenGetter Tokener, env string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var userID *uuid.UUID
		if tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r); err == nil {
			claims, err := tokenGetter.GetClaims(ctx, tokenStr)
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(GenerateErrorResponse{Error: "Unauthorized"})
				return
			}
			userID = &claims.UserID
		}

		if err := r.ParseMultipartForm(maxGenerateForm); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GenerateErrorResponse{Error: "Invalid multipart form"})
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GenerateErrorResponse{Error: "Image file is required"})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			logger.Log.Errorw("failed to read uploaded file", "err", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GenerateErrorResponse{Error: "Could not read image file"})
			return
		}

		req := services.GenerateRequest{
			UserID:      userID,
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
			Mode:        r.FormValue("mode"),
			Options: prompts.Options{
				JewelryType:    r.FormValue("jewelryType"),
				Gender:         r.FormValue("gender"),
				AspectRatio:    r.FormValue("aspectRatio"),
				PresetID:       r.FormValue("presetId"),
				Model:          r.FormValue("model"),
				Location:       r.FormValue("location"),
				Mood:           r.FormValue("mood"),
				CustomPrompt:   r.FormValue("prompt"),
				NegativePrompt: r.FormValue("negativePrompt"),
			},
			Strength:      parseFloat(r.FormValue("strength")),
			GuidanceScale: parseFloat(r.FormValue("guidanceScale")),
			Seed:          parseInt(r.FormValue("seed")),
		}

		result, err := svc.Generate(ctx, req)
		if err != nil {
			var limitErr *services.StorageLimitError
			switch {
			case errors.Is(err, services.ErrInvalidUpload),
				errors.Is(err, services.ErrInvalidPrompt):
				w.WriteHeader(http.StatusBadRequest)
			case errors.As(err, &limitErr):
				w.WriteHeader(http.StatusBadRequest)
			case errors.Is(err, services.ErrInsufficientCredits):
				w.WriteHeader(http.StatusPaymentRequired)
			case errors.Is(err, services.ErrRateLimited):
				w.WriteHeader(http.StatusTooManyRequests)
			default:
				logger.Log.Errorw("generation failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
			}
			json.NewEncoder(w).Encode(GenerateErrorResponse{Error: apperrors.Sanitize(err, env)})
			return
		}

		resp := GenerateResponse{
			OriginalURL:   result.OriginalURL,
			ResultURL:     result.ResultURL,
			InferenceTime: result.InferenceTime,
			Seed:          result.Seed,
		}
		if result.ImageID != nil {
			resp.ImageID = result.ImageID.String()
		}
		if result.GenerationID != nil {
			resp.GenerationID = result.GenerationID.String()
		}
		if userID != nil {
			credits := result.Credits
			resp.Credits = &credits
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseInt(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}
