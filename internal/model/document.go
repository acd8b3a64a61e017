package model

// Document is a user-authored note stored in the library.
// Timestamps are milliseconds since the Unix epoch; FolderID is nil when the
// document is not filed in any folder.
type Document struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	FolderID  *string `json:"folderId"`
	CreatedAt int64   `json:"createdAt"`
	UpdatedAt int64   `json:"updatedAt"`
}

// DocumentPatch is a partial update. Nil pointers and unset optionals are left untouched.
type DocumentPatch struct {
	Title    *string        `json:"title,omitempty"`
	Content  *string        `json:"content,omitempty"`
	FolderID OptionalString `json:"folderId"`
}

// IsEmpty reports whether the patch changes nothing.
func (p DocumentPatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && !p.FolderID.Set
}
