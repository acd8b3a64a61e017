package repository

import (
	"context"

	"mdlib/internal/model"
)

// DocumentRepository defines data access for documents using SQL queries only.
// No business logic here, strictly persistence operations.
type DocumentRepository interface {
	// Create inserts a new document with a generated id and createdAt == updatedAt.
	// folderID must reference an existing folder when set.
	Create(ctx context.Context, title, content string, folderID *string) (*model.Document, error)

	// FindByID returns a document by its ID, or nil when it does not exist.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// List returns every document, most recently modified first.
	List(ctx context.Context) ([]model.Document, error)

	// Update applies the fields present in patch. An empty patch returns the
	// stored row untouched. Returns nil when the document does not exist.
	Update(ctx context.Context, id string, patch model.DocumentPatch) (*model.Document, error)

	// Delete removes a document and reports whether a row was removed.
	Delete(ctx context.Context, id string) (bool, error)

	// Search runs a full-text query over title and content, best match first.
	Search(ctx context.Context, query string) ([]model.Document, error)

	// ListByFolder returns the documents filed in folderID, or the unfiled
	// documents when folderID is nil.
	ListByFolder(ctx context.Context, folderID *string) ([]model.Document, error)

	// Reindex rebuilds the full-text index from the documents table.
	Reindex(ctx context.Context) error
}
