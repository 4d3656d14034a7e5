package dto

import "career-passport/internal/domain"

// ResourceEntry describes one document served by the content host.
type ResourceEntry struct {
	Resource domain.Resource `json:"resource"`
	File     string          `json:"file"`
	Path     string          `json:"path"`
}

// ResourceIndex lists the documents served by the content host.
type ResourceIndex struct {
	Source    string          `json:"source"`
	Resources []ResourceEntry `json:"resources"`
}

// ResourceHealth is the load outcome of one document.
type ResourceHealth struct {
	Resource domain.Resource `json:"resource"`
	File     string          `json:"file"`
	Bytes    int             `json:"bytes"`
	OK       bool            `json:"ok"`
	Error    string          `json:"error,omitempty"`
}

// HealthResponse reports "ok" when every document loads and validates,
// "degraded" otherwise.
type HealthResponse struct {
	Status    string           `json:"status"`
	Version   string           `json:"version"`
	Source    string           `json:"source"`
	Resources []ResourceHealth `json:"resources"`
}

// BookmarkExport is the --json form of an export.
type BookmarkExport struct {
	FileName string `json:"fileName"`
	Count    int    `json:"count"`
	CSV      string `json:"csv"`
}
