package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/jewelshot/jewelshot-api/internal/logger"
)

// ModelFluxPro is the image-to-image model used for all generations.
const ModelFluxPro = "fal-ai/flux-pro/v1.1-ultra"

const defaultFalBaseURL = "https://fal.run"

// GenerateImageOptions are the inputs for one inference call.
type GenerateImageOptions struct {
	ImageURL       string  // Public URL of the source image
	Prompt         string  // Positive prompt
	NegativePrompt string  // Optional negative prompt
	Strength       float64 // 0-1, how much to transform; defaults to 0.75
	GuidanceScale  float64 // 1-20, prompt adherence; defaults to 7.5
	NumImages      int     // Defaults to 1
	Seed           int64   // Defaults to a random seed
}

// GeneratedImage is one result image returned by the inference service.
type GeneratedImage struct {
	URL         string `json:"url"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ContentType string `json:"content_type"`
}

// GenerationResult is the inference service's response.
type GenerationResult struct {
	Images  []GeneratedImage `json:"images"`
	Timings struct {
		Inference float64 `json:"inference"`
	} `json:"timings"`
	Seed            int64  `json:"seed"`
	HasNSFWConcepts []bool `json:"has_nsfw_concepts"`
}

// QueueStatus is the polling response for a queued request. Polling is
// available but unused in the synchronous path.
type QueueStatus struct {
	Status        string `json:"status"`
	QueuePosition int    `json:"queue_position"`
}

type falRequest struct {
	Prompt         string  `json:"prompt"`
	ImageURL       string  `json:"image_url"`
	NegativePrompt string  `json:"negative_prompt,omitempty"`
	Strength       float64 `json:"strength"`
	GuidanceScale  float64 `json:"guidance_scale"`
	NumImages      int     `json:"num_images"`
	Seed           int64   `json:"seed"`
}

// FalClient is an HTTP facade for the FAL.AI inference service.
type FalClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewFalClient creates a new inference facade. A nil httpClient falls back
// to a client with a generous timeout: inference calls run tens of seconds.
func NewFalClient(baseURL, apiKey string, httpClient *http.Client) *FalClient {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultFalBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	return &FalClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// GenerateImage submits a synchronous image-to-image generation request.
func (c *FalClient) GenerateImage(ctx context.Context, opts GenerateImageOptions) (*GenerationResult, error) {
	if opts.ImageURL == "" {
		return nil, errors.New("image url is empty")
	}
	if opts.Prompt == "" {
		return nil, errors.New("prompt is empty")
	}

	req := falRequest{
		Prompt:         opts.Prompt,
		ImageURL:       opts.ImageURL,
		NegativePrompt: opts.NegativePrompt,
		Strength:       opts.Strength,
		GuidanceScale:  opts.GuidanceScale,
		NumImages:      opts.NumImages,
		Seed:           opts.Seed,
	}
	if req.Strength == 0 {
		req.Strength = 0.75
	}
	if req.GuidanceScale == 0 {
		req.GuidanceScale = 7.5
	}
	if req.NumImages == 0 {
		req.NumImages = 1
	}
	if req.Seed == 0 {
		req.Seed = rand.Int63n(1000000)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, ModelFluxPro)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Key "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Log.Errorw("inference request failed", "model", ModelFluxPro, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("inference returned non-OK status",
			"model", ModelFluxPro, "status", resp.StatusCode, "body", truncate(string(respBody), 512))
		return nil, fmt.Errorf("inference failed with status %d", resp.StatusCode)
	}

	var result GenerationResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("decode inference response: %w", err)
	}

	logger.Log.Infow("inference completed",
		"model", ModelFluxPro,
		"images", len(result.Images),
		"inference_time", result.Timings.Inference,
		"round_trip", time.Since(start),
	)

	return &result, nil
}

// GetQueueStatus polls the status of a queued request.
func (c *FalClient) GetQueueStatus(ctx context.Context, requestID string) (*QueueStatus, error) {
	url := fmt.Sprintf("%s/%s/requests/%s/status", c.baseURL, ModelFluxPro, requestID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Key "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("queue status failed with status %d", resp.StatusCode)
	}

	var status QueueStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, err
	}
	return &status, nil
}

// FetchImage downloads result bytes from a URL returned by the inference
// service.
func (c *FalClient) FetchImage(ctx context.Context, url string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch generated image: status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
