package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mdlib/internal/model"
	"mdlib/internal/repository"
)

const tagColumns = `id, name, color, created_at`

// TagStore is a SQLite implementation of repository.TagRepository.
type TagStore struct {
	db   *sql.DB
	opts options
}

// NewTagStore creates a new TagStore.
func NewTagStore(db *sql.DB, opts ...Option) *TagStore {
	return &TagStore{db: db, opts: buildOptions(opts)}
}

var _ repository.TagRepository = (*TagStore)(nil)

func scanTag(s scanner) (*model.Tag, error) {
	var (
		t     model.Tag
		color sql.NullString
	)
	if err := s.Scan(&t.ID, &t.Name, &color, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.Color = stringPtr(color)
	return &t, nil
}

func (s *TagStore) queryTags(ctx context.Context, op, q string, args ...any) ([]model.Tag, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]model.Tag, 0)
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// Create inserts a tag. Tag names are unique.
func (s *TagStore) Create(ctx context.Context, name string, color *string) (*model.Tag, error) {
	t := &model.Tag{
		ID:        s.opts.newID(),
		Name:      name,
		Color:     color,
		CreatedAt: s.opts.now().UnixMilli(),
	}
	const q = `INSERT INTO tags (id, name, color, created_at) VALUES (?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, q, t.ID, t.Name, nullString(t.Color), t.CreatedAt); err != nil {
		return nil, writeErr("insert tag", err)
	}
	return t, nil
}

// FindByID returns a tag or nil when it does not exist.
func (s *TagStore) FindByID(ctx context.Context, id string) (*model.Tag, error) {
	q := `SELECT ` + tagColumns + ` FROM tags WHERE id = ?`
	t, err := scanTag(s.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find tag: %w", err)
	}
	return t, nil
}

// List returns all tags ordered by name.
func (s *TagStore) List(ctx context.Context) ([]model.Tag, error) {
	q := `SELECT ` + tagColumns + ` FROM tags ORDER BY name COLLATE NOCASE, id`
	return s.queryTags(ctx, "list tags", q)
}

// Delete removes a tag and, through the foreign key, all of its links.
func (s *TagStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tags WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete tag: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete tag: %w", err)
	}
	return n > 0, nil
}

// Attach links a tag to a document. OR IGNORE covers the existing link; an
// unknown document or tag still fails its foreign key.
func (s *TagStore) Attach(ctx context.Context, documentID, tagID string) error {
	const q = `INSERT OR IGNORE INTO document_tags (document_id, tag_id) VALUES (?, ?)`
	if _, err := s.db.ExecContext(ctx, q, documentID, tagID); err != nil {
		return writeErr("attach tag", err)
	}
	return nil
}

// Detach unlinks a tag from a document.
func (s *TagStore) Detach(ctx context.Context, documentID, tagID string) (bool, error) {
	const q = `DELETE FROM document_tags WHERE document_id = ? AND tag_id = ?`
	res, err := s.db.ExecContext(ctx, q, documentID, tagID)
	if err != nil {
		return false, fmt.Errorf("detach tag: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("detach tag: %w", err)
	}
	return n > 0, nil
}

// ListForDocument returns the tags attached to a document.
func (s *TagStore) ListForDocument(ctx context.Context, documentID string) ([]model.Tag, error) {
	const q = `
		SELECT t.id, t.name, t.color, t.created_at
		FROM tags t
		JOIN document_tags dt ON dt.tag_id = t.id
		WHERE dt.document_id = ?
		ORDER BY t.name COLLATE NOCASE, t.id
	`
	return s.queryTags(ctx, "list document tags", q, documentID)
}

// ListDocuments returns the documents carrying a tag, most recently modified first.
func (s *TagStore) ListDocuments(ctx context.Context, tagID string) ([]model.Document, error) {
	const q = `
		SELECT d.id, d.title, d.content, d.folder_id, d.created_at, d.updated_at
		FROM documents d
		JOIN document_tags dt ON dt.document_id = d.id
		WHERE dt.tag_id = ?
		ORDER BY d.updated_at DESC, d.created_at DESC, d.id
	`
	rows, err := s.db.QueryContext(ctx, q, tagID)
	if err != nil {
		return nil, fmt.Errorf("list tagged documents: %w", err)
	}
	items, err := collectDocuments(rows)
	if err != nil {
		return nil, fmt.Errorf("list tagged documents: %w", err)
	}
	return items, nil
}
