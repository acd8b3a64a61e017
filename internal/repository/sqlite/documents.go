package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mdlib/internal/model"
	"mdlib/internal/repository"
)

const documentColumns = `id, title, content, folder_id, created_at, updated_at`

// DocumentStore is a SQLite implementation of repository.DocumentRepository.
// The documents_fts index is maintained by triggers inside the same
// statement, so a write and its index change commit together.
type DocumentStore struct {
	db   *sql.DB
	opts options
}

// NewDocumentStore creates a new DocumentStore on an open library handle.
func NewDocumentStore(db *sql.DB, opts ...Option) *DocumentStore {
	return &DocumentStore{db: db, opts: buildOptions(opts)}
}

var _ repository.DocumentRepository = (*DocumentStore)(nil)

func scanDocument(s scanner) (*model.Document, error) {
	var (
		d      model.Document
		folder sql.NullString
	)
	if err := s.Scan(&d.ID, &d.Title, &d.Content, &folder, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	d.FolderID = stringPtr(folder)
	return &d, nil
}

func collectDocuments(rows *sql.Rows) ([]model.Document, error) {
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new document row and returns the stored record.
func (s *DocumentStore) Create(ctx context.Context, title, content string, folderID *string) (*model.Document, error) {
	now := s.opts.now().UnixMilli()
	doc := &model.Document{
		ID:        s.opts.newID(),
		Title:     title,
		Content:   content,
		FolderID:  folderID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	const q = `
		INSERT INTO documents (id, title, content, folder_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	if _, err := s.db.ExecContext(ctx, q,
		doc.ID,
		doc.Title,
		doc.Content,
		nullString(doc.FolderID),
		doc.CreatedAt,
		doc.UpdatedAt,
	); err != nil {
		return nil, writeErr("insert document", err)
	}
	return doc, nil
}

// FindByID fetches a single document by its ID.
func (s *DocumentStore) FindByID(ctx context.Context, id string) (*model.Document, error) {
	q := `SELECT ` + documentColumns + ` FROM documents WHERE id = ?`
	d, err := scanDocument(s.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find document: %w", err)
	}
	return d, nil
}

// List returns every document, most recently modified first.
func (s *DocumentStore) List(ctx context.Context) ([]model.Document, error) {
	q := `SELECT ` + documentColumns + ` FROM documents ORDER BY updated_at DESC, created_at DESC, id`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	items, err := collectDocuments(rows)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return items, nil
}

// Update applies a partial update in one transaction.
// updatedAt always moves forward, even when the clock has not.
func (s *DocumentStore) Update(ctx context.Context, id string, patch model.DocumentPatch) (*model.Document, error) {
	if patch.IsEmpty() {
		return s.FindByID(ctx, id)
	}

	var out *model.Document
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		q := `SELECT ` + documentColumns + ` FROM documents WHERE id = ?`
		cur, err := scanDocument(tx.QueryRowContext(ctx, q, id))
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("load document: %w", err)
		}

		if patch.Title != nil {
			cur.Title = *patch.Title
		}
		if patch.Content != nil {
			cur.Content = *patch.Content
		}
		if patch.FolderID.Set {
			cur.FolderID = patch.FolderID.Value
		}
		cur.UpdatedAt = max(s.opts.now().UnixMilli(), cur.UpdatedAt+1)

		const uq = `
			UPDATE documents
			SET title = ?, content = ?, folder_id = ?, updated_at = ?
			WHERE id = ?
		`
		if _, err := tx.ExecContext(ctx, uq,
			cur.Title,
			cur.Content,
			nullString(cur.FolderID),
			cur.UpdatedAt,
			cur.ID,
		); err != nil {
			return writeErr("update document", err)
		}
		out = cur
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a document. Tag links go with it through the foreign key and
// the index entry through the delete trigger.
func (s *DocumentStore) Delete(ctx context.Context, id string) (bool, error) {
	const q = `DELETE FROM documents WHERE id = ?`
	res, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, fmt.Errorf("delete document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete document: %w", err)
	}
	return n > 0, nil
}

// Search matches query against title and content using FTS5 syntax and
// orders hits by bm25 relevance, best first.
func (s *DocumentStore) Search(ctx context.Context, query string) ([]model.Document, error) {
	const q = `
		SELECT d.id, d.title, d.content, d.folder_id, d.created_at, d.updated_at
		FROM documents_fts
		JOIN documents d ON d.rowid = documents_fts.rowid
		WHERE documents_fts MATCH ?
		ORDER BY bm25(documents_fts), d.updated_at DESC
	`
	rows, err := s.db.QueryContext(ctx, q, query)
	if err != nil {
		return nil, searchErr(err)
	}
	items, err := collectDocuments(rows)
	if err != nil {
		return nil, searchErr(err)
	}
	return items, nil
}

// ListByFolder returns the documents in folderID; nil selects unfiled ones.
func (s *DocumentStore) ListByFolder(ctx context.Context, folderID *string) ([]model.Document, error) {
	q := `SELECT ` + documentColumns + ` FROM documents WHERE folder_id IS ? ORDER BY updated_at DESC, created_at DESC, id`
	rows, err := s.db.QueryContext(ctx, q, nullString(folderID))
	if err != nil {
		return nil, fmt.Errorf("list documents by folder: %w", err)
	}
	items, err := collectDocuments(rows)
	if err != nil {
		return nil, fmt.Errorf("list documents by folder: %w", err)
	}
	return items, nil
}

// Reindex drops and rebuilds the full-text index from the documents table.
func (s *DocumentStore) Reindex(ctx context.Context) error {
	const q = `INSERT INTO documents_fts (documents_fts) VALUES ('rebuild')`
	if _, err := s.db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("rebuild search index: %w", err)
	}
	return nil
}
