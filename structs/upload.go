package structs

// UploadResult maps the image host's response for one stored image.
type UploadResult struct {
	Success   bool   `json:"success"`
	URL       string `json:"url,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
	DeleteURL string `json:"deleteUrl,omitempty"`
	Error     string `json:"error,omitempty"`
}

// MultiUploadResult is the per-file outcome of a batch upload.
type MultiUploadResult struct {
	OriginalName string `json:"originalName"`
	UploadResult
}
