package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"mdlib/internal/logging"
	"mdlib/internal/model"
	"mdlib/internal/repository"
)

// TagService manages tags and which documents carry them.
type TagService interface {
	Create(ctx context.Context, name string, color *string) (*model.Tag, error)
	Get(ctx context.Context, id string) (*model.Tag, error)
	List(ctx context.Context) ([]model.Tag, error)
	Delete(ctx context.Context, id string) (bool, error)
	Attach(ctx context.Context, documentID, tagID string) error
	Detach(ctx context.Context, documentID, tagID string) (bool, error)
	ListForDocument(ctx context.Context, documentID string) ([]model.Tag, error)
	ListDocuments(ctx context.Context, tagID string) ([]model.Document, error)
}

type tagService struct {
	repo repository.TagRepository
	log  zerolog.Logger
}

// NewTagService constructs a new TagService.
func NewTagService(repo repository.TagRepository, log zerolog.Logger) TagService {
	return &tagService{repo: repo, log: logging.Component(log, "tags")}
}

func (s *tagService) Create(ctx context.Context, name string, color *string) (*model.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	t, err := s.repo.Create(ctx, name, optionalID(color))
	if err != nil {
		return nil, fail(s.log, "tags.create", err)
	}
	return t, nil
}

func (s *tagService) Get(ctx context.Context, id string) (*model.Tag, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fail(s.log, "tags.get", err)
	}
	return t, nil
}

func (s *tagService) List(ctx context.Context) ([]model.Tag, error) {
	tags, err := s.repo.List(ctx)
	if err != nil {
		return nil, fail(s.log, "tags.list", err)
	}
	return tags, nil
}

func (s *tagService) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrIDRequired
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fail(s.log, "tags.delete", err)
	}
	return deleted, nil
}

func (s *tagService) Attach(ctx context.Context, documentID, tagID string) error {
	if documentID == "" || tagID == "" {
		return ErrIDRequired
	}
	if err := s.repo.Attach(ctx, documentID, tagID); err != nil {
		return fail(s.log, "tags.attach", err)
	}
	return nil
}

func (s *tagService) Detach(ctx context.Context, documentID, tagID string) (bool, error) {
	if documentID == "" || tagID == "" {
		return false, ErrIDRequired
	}
	removed, err := s.repo.Detach(ctx, documentID, tagID)
	if err != nil {
		return false, fail(s.log, "tags.detach", err)
	}
	return removed, nil
}

func (s *tagService) ListForDocument(ctx context.Context, documentID string) ([]model.Tag, error) {
	if documentID == "" {
		return nil, ErrIDRequired
	}
	tags, err := s.repo.ListForDocument(ctx, documentID)
	if err != nil {
		return nil, fail(s.log, "tags.listForDocument", err)
	}
	return tags, nil
}

func (s *tagService) ListDocuments(ctx context.Context, tagID string) ([]model.Document, error) {
	if tagID == "" {
		return nil, ErrIDRequired
	}
	docs, err := s.repo.ListDocuments(ctx, tagID)
	if err != nil {
		return nil, fail(s.log, "tags.listDocuments", err)
	}
	return docs, nil
}
