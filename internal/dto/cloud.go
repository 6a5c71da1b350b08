package dto

// ── cloud file browser ──

// CloudFile is one entry from the external file-storage service, passed
// through to the dashboard unchanged apart from field naming.
type CloudFile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type,omitempty"`
	URL      string `json:"url,omitempty"`
}

// CloudFileListResponse is the listing payload.
type CloudFileListResponse struct {
	Files []CloudFile `json:"files"`
}
