package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jewelshot/jewelshot-api/internal/logger"
)

// StorageClient is an HTTP facade for the object-storage service. It speaks
// the supabase-storage REST surface: path-based put/delete and public-URL
// derivation per bucket.
type StorageClient struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// NewStorageClient creates a new object-storage facade.
func NewStorageClient(baseURL, serviceKey string, httpClient *http.Client) *StorageClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &StorageClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: httpClient,
	}
}

// Upload writes data to bucket at path. With upsert set an existing object
// at the same path is replaced instead of rejected.
func (c *StorageClient) Upload(ctx context.Context, bucket, path, contentType string, data []byte, upsert bool) error {
	if bucket == "" || path == "" {
		return errors.New("bucket and path are required")
	}

	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, bucket, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Cache-Control", "3600")
	if upsert {
		req.Header.Set("x-upsert", "true")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("storage upload failed", "bucket", bucket, "path", path, "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		logger.Log.Errorw("storage upload returned non-OK status",
			"bucket", bucket, "path", path, "status", resp.StatusCode, "body", truncate(string(body), 512))
		return fmt.Errorf("storage upload failed with status %d", resp.StatusCode)
	}

	logger.Log.Infow("object uploaded", "bucket", bucket, "path", path, "size", len(data))
	return nil
}

// Remove deletes objects from bucket by path.
func (c *StorageClient) Remove(ctx context.Context, bucket string, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	body, err := json.Marshal(map[string][]string{"prefixes": paths})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/storage/v1/object/%s", c.baseURL, bucket)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("storage delete failed", "bucket", bucket, "paths", paths, "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("storage delete failed with status %d", resp.StatusCode)
	}

	logger.Log.Infow("objects removed", "bucket", bucket, "count", len(paths))
	return nil
}

// PublicURL derives the public URL for an object.
func (c *StorageClient) PublicURL(bucket, path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, bucket, path)
}
