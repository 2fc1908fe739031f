package facades

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageClient_Upload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/storage/v1/object/images/uploads/u_1_abc.jpg", r.URL.Path)
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		assert.Equal(t, "image/jpeg", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("x-upsert"))

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, []byte("jpeg-bytes"), body)

		json.NewEncoder(w).Encode(map[string]string{"Key": "images/uploads/u_1_abc.jpg"})
	}))
	defer ts.Close()

	client := NewStorageClient(ts.URL, "service-key", ts.Client())

	err := client.Upload(context.Background(), "images", "uploads/u_1_abc.jpg", "image/jpeg", []byte("jpeg-bytes"), false)
	require.NoError(t, err)
}

func TestStorageClient_Upload_Upsert(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.Header.Get("x-upsert"))
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewStorageClient(ts.URL, "service-key", ts.Client())

	err := client.Upload(context.Background(), "avatars", "avatars/u-1.png", "image/png", []byte("png"), true)
	require.NoError(t, err)
}

func TestStorageClient_Upload_Errors(t *testing.T) {
	client := NewStorageClient("http://localhost:1", "key", nil)
	assert.Error(t, client.Upload(context.Background(), "", "p", "image/png", nil, false))
	assert.Error(t, client.Upload(context.Background(), "b", "", "image/png", nil, false))

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"Duplicate"}`))
	}))
	defer ts.Close()

	client = NewStorageClient(ts.URL, "key", ts.Client())
	err := client.Upload(context.Background(), "images", "uploads/dup.png", "image/png", []byte("x"), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "409")
}

func TestStorageClient_Remove(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/storage/v1/object/images", r.URL.Path)

		var body map[string][]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"uploads/a.jpg", "uploads/b.png"}, body["prefixes"])

		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewStorageClient(ts.URL, "service-key", ts.Client())

	err := client.Remove(context.Background(), "images", []string{"uploads/a.jpg", "uploads/b.png"})
	require.NoError(t, err)
}

func TestStorageClient_Remove_Empty(t *testing.T) {
	// No paths means no request at all
	client := NewStorageClient("http://localhost:1", "key", nil)
	assert.NoError(t, client.Remove(context.Background(), "images", nil))
}

func TestStorageClient_PublicURL(t *testing.T) {
	client := NewStorageClient("https://proj.supabase.co/", "key", nil)
	assert.Equal(t,
		"https://proj.supabase.co/storage/v1/object/public/images/uploads/a.jpg",
		client.PublicURL("images", "uploads/a.jpg"),
	)
}
