package model

// Folder groups documents. ParentID is nil for top-level folders.
type Folder struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ParentID  *string `json:"parentId"`
	CreatedAt int64   `json:"createdAt"`
}

// FolderPatch renames and/or moves a folder.
type FolderPatch struct {
	Name     *string        `json:"name,omitempty"`
	ParentID OptionalString `json:"parentId"`
}

// IsEmpty reports whether the patch changes nothing.
func (p FolderPatch) IsEmpty() bool {
	return p.Name == nil && !p.ParentID.Set
}

// Tag is a label attached to any number of documents. Names are unique.
type Tag struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Color     *string `json:"color"`
	CreatedAt int64   `json:"createdAt"`
}
