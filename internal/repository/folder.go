package repository

import (
	"context"

	"mdlib/internal/model"
)

// FolderRepository defines data access for the folder tree.
type FolderRepository interface {
	Create(ctx context.Context, name string, parentID *string) (*model.Folder, error)
	FindByID(ctx context.Context, id string) (*model.Folder, error)
	List(ctx context.Context) ([]model.Folder, error)

	// ListChildren returns the direct children of parentID, or the top-level
	// folders when parentID is nil.
	ListChildren(ctx context.Context, parentID *string) ([]model.Folder, error)

	// Update renames and/or moves a folder. Moving a folder under itself or one
	// of its descendants fails with ErrConstraintViolation.
	Update(ctx context.Context, id string, patch model.FolderPatch) (*model.Folder, error)

	// Delete removes the folder and its descendants. Documents filed in them
	// become unfiled.
	Delete(ctx context.Context, id string) (bool, error)
}
