package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"mdlib/internal/logging"
	"mdlib/internal/model"
	"mdlib/internal/repository"
)

var ErrNameRequired = errors.New("name is required")

// FolderService manages the folder tree.
type FolderService interface {
	Create(ctx context.Context, name string, parentID *string) (*model.Folder, error)
	Get(ctx context.Context, id string) (*model.Folder, error)
	List(ctx context.Context) ([]model.Folder, error)
	ListChildren(ctx context.Context, parentID *string) ([]model.Folder, error)
	Update(ctx context.Context, id string, patch model.FolderPatch) (*model.Folder, error)
	// Delete removes a folder with its subfolders. Their documents are kept, unfiled.
	Delete(ctx context.Context, id string) (bool, error)
}

type folderService struct {
	repo repository.FolderRepository
	log  zerolog.Logger
}

// NewFolderService constructs a new FolderService.
func NewFolderService(repo repository.FolderRepository, log zerolog.Logger) FolderService {
	return &folderService{repo: repo, log: logging.Component(log, "folders")}
}

func (s *folderService) Create(ctx context.Context, name string, parentID *string) (*model.Folder, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	f, err := s.repo.Create(ctx, name, optionalID(parentID))
	if err != nil {
		return nil, fail(s.log, "folders.create", err)
	}
	return f, nil
}

func (s *folderService) Get(ctx context.Context, id string) (*model.Folder, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fail(s.log, "folders.get", err)
	}
	return f, nil
}

func (s *folderService) List(ctx context.Context) ([]model.Folder, error) {
	folders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fail(s.log, "folders.list", err)
	}
	return folders, nil
}

func (s *folderService) ListChildren(ctx context.Context, parentID *string) ([]model.Folder, error) {
	folders, err := s.repo.ListChildren(ctx, optionalID(parentID))
	if err != nil {
		return nil, fail(s.log, "folders.listChildren", err)
	}
	return folders, nil
}

func (s *folderService) Update(ctx context.Context, id string, patch model.FolderPatch) (*model.Folder, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, ErrNameRequired
	}
	patch.ParentID = optionalPatchID(patch.ParentID)

	f, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fail(s.log, "folders.update", err)
	}
	return f, nil
}

func (s *folderService) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrIDRequired
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fail(s.log, "folders.delete", err)
	}
	return deleted, nil
}
