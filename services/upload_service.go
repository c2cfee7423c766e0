package services

import (
	"context"
	"ecomshop_server/lib"
	"ecomshop_server/structs"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
)

// UploadService forwards images to the ImgBB hosting API and returns the
// public URLs. The HTTP client is injectable so tests can point it at a
// stub server.
type UploadService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *http.Client
}

func NewUploadService(logger *gecho.Logger, cfg *structs.Config) *UploadService {
	return &UploadService{
		logger: logger,
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetClient swaps the underlying HTTP client. Used by tests.
func (us *UploadService) SetClient(client *http.Client) {
	us.client = client
}

type imgbbResponse struct {
	Success bool `json:"success"`
	Data    struct {
		DisplayURL string `json:"display_url"`
		URL        string `json:"url"`
		DeleteURL  string `json:"delete_url"`
		Thumb      struct {
			URL string `json:"url"`
		} `json:"thumb"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Status int `json:"status"`
}

// Upload validates a single image and pushes it to the image host.
func (us *UploadService) Upload(ctx context.Context, filename, contentType string, data []byte) (*structs.UploadResult, error) {
	if us.cfg.Upload.ImgBBAPIKey == "" {
		return nil, lib.ErrUploadNotConfigured
	}
	if int64(len(data)) > us.cfg.Upload.MaxFileSize {
		return nil, lib.ErrFileTooLarge
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, lib.ErrUnsupportedFileType
	}

	form := url.Values{}
	form.Set("key", us.cfg.Upload.ImgBBAPIKey)
	form.Set("image", base64.StdEncoding.EncodeToString(data))
	form.Set("name", filename)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, us.cfg.Upload.ImgBBURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := us.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image host unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload response: %w", err)
	}

	var parsed imgbbResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("unexpected upload response: %w", err)
	}

	if !parsed.Success {
		msg := parsed.Error.Message
		if msg == "" {
			msg = fmt.Sprintf("upload rejected with status %d", resp.StatusCode)
		}
		us.logger.Warn("Image upload rejected", gecho.Field("file", filename), gecho.Field("reason", msg))
		return &structs.UploadResult{Success: false, Error: msg}, nil
	}

	result := &structs.UploadResult{
		Success:   true,
		URL:       parsed.Data.DisplayURL,
		Thumbnail: parsed.Data.Thumb.URL,
		DeleteURL: parsed.Data.DeleteURL,
	}
	if result.URL == "" {
		result.URL = parsed.Data.URL
	}

	us.logger.Info("Image uploaded", gecho.Field("file", filename), gecho.Field("size", len(data)))
	return result, nil
}

// UploadMany pushes a batch of images, collecting per-file outcomes. One
// bad file does not abort the rest of the batch.
func (us *UploadService) UploadMany(ctx context.Context, files []UploadInput) ([]structs.MultiUploadResult, error) {
	if len(files) > us.cfg.Upload.MaxFiles {
		return nil, fmt.Errorf("%w: at most %d files per request", lib.ErrFileTooLarge, us.cfg.Upload.MaxFiles)
	}

	results := make([]structs.MultiUploadResult, 0, len(files))
	for _, f := range files {
		entry := structs.MultiUploadResult{OriginalName: f.Filename}

		res, err := us.Upload(ctx, f.Filename, f.ContentType, f.Data)
		if err != nil {
			entry.Success = false
			entry.Error = err.Error()
		} else {
			entry.UploadResult = *res
		}
		results = append(results, entry)
	}
	return results, nil
}

// UploadInput is one file pulled out of a multipart request.
type UploadInput struct {
	Filename    string
	ContentType string
	Data        []byte
}
