package model

// RecentFile points at a plain file on disk that was recently opened or saved.
// It is unrelated to library documents.
type RecentFile struct {
	Path       string `json:"path"`
	Name       string `json:"name"`
	LastOpened int64  `json:"lastOpened"`
}
