package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"mdlib/internal/frontmatter"
	"mdlib/internal/logging"
	"mdlib/internal/model"
	"mdlib/internal/repository"
	"mdlib/internal/storage"
)

var (
	ErrIDRequired    = errors.New("id is required")
	ErrTitleRequired = errors.New("title is required")
	ErrQueryRequired = errors.New("search query is required")
	ErrPathRequired  = errors.New("path is required")
	ErrKeyRequired   = errors.New("export key is required")
)

// LibraryService is the boundary the command surface talks to for documents.
// Absent documents come back as nil (or false for Delete) without an error;
// an error always means the operation failed.
type LibraryService interface {
	Create(ctx context.Context, title, content string, folderID *string) (*model.Document, error)
	GetAll(ctx context.Context) ([]model.Document, error)
	Get(ctx context.Context, id string) (*model.Document, error)
	Update(ctx context.Context, id string, patch model.DocumentPatch) (*model.Document, error)
	Delete(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, query string) ([]model.Document, error)

	// GetByFolder lists the documents of one folder; nil lists unfiled documents.
	GetByFolder(ctx context.Context, folderID *string) ([]model.Document, error)

	// Reindex rebuilds the full-text index from the stored documents.
	Reindex(ctx context.Context) error

	// Import reads a Markdown file from disk and stores it as a new document.
	// The title comes from the front matter, the first "# " heading or the
	// file name, in that order.
	Import(ctx context.Context, path string, folderID *string) (*model.Document, error)
}

// libraryService is a concrete implementation of LibraryService.
type libraryService struct {
	repo     repository.DocumentRepository
	log      zerolog.Logger
	readFile func(string) ([]byte, error)
}

// NewLibraryService constructs a new LibraryService.
func NewLibraryService(repo repository.DocumentRepository, log zerolog.Logger) LibraryService {
	return &libraryService{
		repo:     repo,
		log:      logging.Component(log, "library"),
		readFile: os.ReadFile,
	}
}

// fail logs a failed store call and returns it wrapped with the operation name.
func fail(log zerolog.Logger, op string, err error) error {
	ev := log.Error()
	switch {
	case errors.Is(err, repository.ErrConstraintViolation), errors.Is(err, repository.ErrInvalidQuery),
		errors.Is(err, fs.ErrNotExist), errors.Is(err, storage.ErrInvalidKey):
		ev = log.Warn()
	}
	ev.Str("op", op).Err(err).Msg("operation failed")
	return fmt.Errorf("%s: %w", op, err)
}

var tracer = otel.Tracer("mdlib/internal/service")

// endSpan records err, if any, and ends the span.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// optionalID maps an empty id to "no reference".
func optionalID(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}

func optionalPatchID(o model.OptionalString) model.OptionalString {
	if o.Set {
		o.Value = optionalID(o.Value)
	}
	return o
}

func (s *libraryService) Create(ctx context.Context, title, content string, folderID *string) (*model.Document, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}
	doc, err := s.repo.Create(ctx, title, content, optionalID(folderID))
	if err != nil {
		return nil, fail(s.log, "library.create", err)
	}
	s.log.Debug().Str("op", "library.create").Str("document_id", doc.ID).Msg("document created")
	return doc, nil
}

func (s *libraryService) GetAll(ctx context.Context) ([]model.Document, error) {
	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fail(s.log, "library.getAll", err)
	}
	return docs, nil
}

func (s *libraryService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fail(s.log, "library.get", err)
	}
	return doc, nil
}

func (s *libraryService) Update(ctx context.Context, id string, patch model.DocumentPatch) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, ErrTitleRequired
	}
	patch.FolderID = optionalPatchID(patch.FolderID)

	doc, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fail(s.log, "library.update", err)
	}
	return doc, nil
}

func (s *libraryService) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrIDRequired
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fail(s.log, "library.delete", err)
	}
	if deleted {
		s.log.Debug().Str("op", "library.delete").Str("document_id", id).Msg("document deleted")
	}
	return deleted, nil
}

func (s *libraryService) Search(ctx context.Context, query string) (docs []model.Document, err error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrQueryRequired
	}
	ctx, span := tracer.Start(ctx, "library.search", trace.WithAttributes(attribute.Int("search.query_length", len(query))))
	defer func() { endSpan(span, err) }()

	docs, err = s.repo.Search(ctx, query)
	if err != nil {
		return nil, fail(s.log, "library.search", err)
	}
	span.SetAttributes(attribute.Int("search.results", len(docs)))
	return docs, nil
}

func (s *libraryService) GetByFolder(ctx context.Context, folderID *string) ([]model.Document, error) {
	docs, err := s.repo.ListByFolder(ctx, optionalID(folderID))
	if err != nil {
		return nil, fail(s.log, "library.getByFolder", err)
	}
	return docs, nil
}

func (s *libraryService) Reindex(ctx context.Context) error {
	if err := s.repo.Reindex(ctx); err != nil {
		return fail(s.log, "library.reindex", err)
	}
	s.log.Info().Str("op", "library.reindex").Msg("search index rebuilt")
	return nil
}

func (s *libraryService) Import(ctx context.Context, path string, folderID *string) (doc *model.Document, err error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrPathRequired
	}
	ctx, span := tracer.Start(ctx, "library.import", trace.WithAttributes(attribute.String("file.path", path)))
	defer func() { endSpan(span, err) }()

	data, err := s.readFile(path)
	if err != nil {
		return nil, fail(s.log, "library.import", err)
	}
	note, err := frontmatter.Parse(data)
	if err != nil {
		return nil, fail(s.log, "library.import", err)
	}

	base := filepath.Base(path)
	title := note.Title(strings.TrimSuffix(base, filepath.Ext(base)))
	if title == "" {
		title = base
	}

	doc, err = s.repo.Create(ctx, title, note.Body, optionalID(folderID))
	if err != nil {
		return nil, fail(s.log, "library.import", err)
	}
	s.log.Info().Str("op", "library.import").Str("path", path).Str("document_id", doc.ID).Msg("file imported")
	return doc, nil
}
