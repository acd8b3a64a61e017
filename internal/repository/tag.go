package repository

import (
	"context"

	"mdlib/internal/model"
)

// TagRepository defines data access for tags and their document associations.
type TagRepository interface {
	Create(ctx context.Context, name string, color *string) (*model.Tag, error)
	FindByID(ctx context.Context, id string) (*model.Tag, error)
	List(ctx context.Context) ([]model.Tag, error)
	Delete(ctx context.Context, id string) (bool, error)

	// Attach links a tag to a document. Attaching twice is not an error.
	Attach(ctx context.Context, documentID, tagID string) error

	// Detach unlinks a tag and reports whether a link existed.
	Detach(ctx context.Context, documentID, tagID string) (bool, error)

	ListForDocument(ctx context.Context, documentID string) ([]model.Tag, error)
	ListDocuments(ctx context.Context, tagID string) ([]model.Document, error)
}
