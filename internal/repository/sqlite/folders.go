package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mdlib/internal/model"
	"mdlib/internal/repository"
)

const folderColumns = `id, name, parent_id, created_at`

// FolderStore is a SQLite implementation of repository.FolderRepository.
type FolderStore struct {
	db   *sql.DB
	opts options
}

// NewFolderStore creates a new FolderStore.
func NewFolderStore(db *sql.DB, opts ...Option) *FolderStore {
	return &FolderStore{db: db, opts: buildOptions(opts)}
}

var _ repository.FolderRepository = (*FolderStore)(nil)

func scanFolder(s scanner) (*model.Folder, error) {
	var (
		f      model.Folder
		parent sql.NullString
	)
	if err := s.Scan(&f.ID, &f.Name, &parent, &f.CreatedAt); err != nil {
		return nil, err
	}
	f.ParentID = stringPtr(parent)
	return &f, nil
}

func (s *FolderStore) queryFolders(ctx context.Context, op, q string, args ...any) ([]model.Folder, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]model.Folder, 0)
	for rows.Next() {
		f, err := scanFolder(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// Create inserts a folder. parentID must reference an existing folder when set.
func (s *FolderStore) Create(ctx context.Context, name string, parentID *string) (*model.Folder, error) {
	f := &model.Folder{
		ID:        s.opts.newID(),
		Name:      name,
		ParentID:  parentID,
		CreatedAt: s.opts.now().UnixMilli(),
	}
	const q = `INSERT INTO folders (id, name, parent_id, created_at) VALUES (?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, q, f.ID, f.Name, nullString(f.ParentID), f.CreatedAt); err != nil {
		return nil, writeErr("insert folder", err)
	}
	return f, nil
}

// FindByID returns a folder or nil when it does not exist.
func (s *FolderStore) FindByID(ctx context.Context, id string) (*model.Folder, error) {
	q := `SELECT ` + folderColumns + ` FROM folders WHERE id = ?`
	f, err := scanFolder(s.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find folder: %w", err)
	}
	return f, nil
}

// List returns all folders ordered by name.
func (s *FolderStore) List(ctx context.Context) ([]model.Folder, error) {
	q := `SELECT ` + folderColumns + ` FROM folders ORDER BY name COLLATE NOCASE, id`
	return s.queryFolders(ctx, "list folders", q)
}

// ListChildren returns the direct children of parentID ordered by name.
func (s *FolderStore) ListChildren(ctx context.Context, parentID *string) ([]model.Folder, error) {
	q := `SELECT ` + folderColumns + ` FROM folders WHERE parent_id IS ? ORDER BY name COLLATE NOCASE, id`
	return s.queryFolders(ctx, "list child folders", q, nullString(parentID))
}

// Update renames and/or moves a folder.
func (s *FolderStore) Update(ctx context.Context, id string, patch model.FolderPatch) (*model.Folder, error) {
	if patch.IsEmpty() {
		return s.FindByID(ctx, id)
	}

	var out *model.Folder
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		q := `SELECT ` + folderColumns + ` FROM folders WHERE id = ?`
		cur, err := scanFolder(tx.QueryRowContext(ctx, q, id))
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("load folder: %w", err)
		}

		if patch.Name != nil {
			cur.Name = *patch.Name
		}
		if patch.ParentID.Set {
			if p := patch.ParentID.Value; p != nil {
				cyclic, err := isSelfOrDescendant(ctx, tx, id, *p)
				if err != nil {
					return err
				}
				if cyclic {
					return fmt.Errorf("move folder: %w: %s is %s or one of its descendants",
						repository.ErrConstraintViolation, *p, id)
				}
			}
			cur.ParentID = patch.ParentID.Value
		}

		const uq = `UPDATE folders SET name = ?, parent_id = ? WHERE id = ?`
		if _, err := tx.ExecContext(ctx, uq, cur.Name, nullString(cur.ParentID), cur.ID); err != nil {
			return writeErr("update folder", err)
		}
		out = cur
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// isSelfOrDescendant reports whether candidate lies in the subtree rooted at id.
func isSelfOrDescendant(ctx context.Context, tx *sql.Tx, id, candidate string) (bool, error) {
	const q = `
		WITH RECURSIVE subtree(id) AS (
			SELECT ?
			UNION
			SELECT f.id FROM folders f JOIN subtree s ON f.parent_id = s.id
		)
		SELECT COUNT(*) FROM subtree WHERE id = ?
	`
	var n int
	if err := tx.QueryRowContext(ctx, q, id, candidate).Scan(&n); err != nil {
		return false, fmt.Errorf("walk folder tree: %w", err)
	}
	return n > 0, nil
}

// Delete removes a folder. Child folders cascade and documents filed under the
// removed folders are set to unfiled by the schema's foreign keys.
func (s *FolderStore) Delete(ctx context.Context, id string) (bool, error) {
	const q = `DELETE FROM folders WHERE id = ?`
	res, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, fmt.Errorf("delete folder: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete folder: %w", err)
	}
	return n > 0, nil
}
