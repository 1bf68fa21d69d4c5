package dto

type PresignUploadRequest struct {
	Kind        string `json:"kind"` // "category-icon" or "pickup-photo"
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
}

type PresignUploadResponse struct {
	UploadURL string `json:"upload_url"`
	ObjectKey string `json:"object_key"`
	ExpiresIn int64  `json:"expires_in_seconds"`
}

type PresignDownloadResponse struct {
	DownloadURL string `json:"download_url"`
	ExpiresIn   int64  `json:"expires_in_seconds"`
}
