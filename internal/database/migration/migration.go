package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"mdlib/internal/logging"
)

type migrationStep struct {
	Name string
	SQL  string
}

// steps is the complete library schema. Every statement is conditional so the
// whole list can be replayed against an existing database.
var steps = []migrationStep{
	{
		Name: "create_table_folders",
		SQL: `CREATE TABLE IF NOT EXISTS folders (
  id         TEXT    PRIMARY KEY,
  name       TEXT    NOT NULL,
  parent_id  TEXT,
  created_at INTEGER NOT NULL,
  FOREIGN KEY (parent_id) REFERENCES folders(id) ON DELETE CASCADE
);`,
	},
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE IF NOT EXISTS documents (
  id         TEXT    PRIMARY KEY,
  title      TEXT    NOT NULL,
  content    TEXT    NOT NULL,
  folder_id  TEXT,
  created_at INTEGER NOT NULL,
  updated_at INTEGER NOT NULL,
  FOREIGN KEY (folder_id) REFERENCES folders(id) ON DELETE SET NULL
);`,
	},
	{
		Name: "create_table_tags",
		SQL: `CREATE TABLE IF NOT EXISTS tags (
  id         TEXT    PRIMARY KEY,
  name       TEXT    NOT NULL UNIQUE,
  color      TEXT,
  created_at INTEGER NOT NULL
);`,
	},
	{
		Name: "create_table_document_tags",
		SQL: `CREATE TABLE IF NOT EXISTS document_tags (
  document_id TEXT NOT NULL,
  tag_id      TEXT NOT NULL,
  PRIMARY KEY (document_id, tag_id),
  FOREIGN KEY (document_id) REFERENCES documents(id) ON DELETE CASCADE,
  FOREIGN KEY (tag_id) REFERENCES tags(id) ON DELETE CASCADE
);`,
	},
	{
		Name: "create_index_documents_folder",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_folder ON documents (folder_id);`,
	},
	{
		Name: "create_index_documents_updated",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_updated ON documents (updated_at DESC);`,
	},
	{
		Name: "create_index_folders_parent",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_folders_parent ON folders (parent_id);`,
	},
	{
		Name: "create_index_document_tags_document",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_document_tags_document ON document_tags (document_id);`,
	},
	{
		Name: "create_index_document_tags_tag",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_document_tags_tag ON document_tags (tag_id);`,
	},
	{
		Name: "create_virtual_table_documents_fts",
		SQL: `CREATE VIRTUAL TABLE IF NOT EXISTS documents_fts USING fts5(
  title,
  content,
  content='documents',
  content_rowid='rowid'
);`,
	},
	{
		Name: "create_trigger_documents_ai",
		SQL: `CREATE TRIGGER IF NOT EXISTS documents_ai AFTER INSERT ON documents BEGIN
  INSERT INTO documents_fts (rowid, title, content) VALUES (new.rowid, new.title, new.content);
END;`,
	},
	{
		// External-content FTS5 tables need the old values to drop stale tokens.
		Name: "create_trigger_documents_au",
		SQL: `CREATE TRIGGER IF NOT EXISTS documents_au AFTER UPDATE ON documents BEGIN
  INSERT INTO documents_fts (documents_fts, rowid, title, content) VALUES ('delete', old.rowid, old.title, old.content);
  INSERT INTO documents_fts (rowid, title, content) VALUES (new.rowid, new.title, new.content);
END;`,
	},
	{
		Name: "create_trigger_documents_ad",
		SQL: `CREATE TRIGGER IF NOT EXISTS documents_ad AFTER DELETE ON documents BEGIN
  INSERT INTO documents_fts (documents_fts, rowid, title, content) VALUES ('delete', old.rowid, old.title, old.content);
END;`,
	},
}

// StepNames lists the schema steps in execution order.
func StepNames() []string {
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name
	}
	return names
}

// EnsureSchema creates every missing table, index, search table and trigger.
// It is safe to call on every start.
func EnsureSchema(ctx context.Context, db *sql.DB, log zerolog.Logger) error {
	start := time.Now()
	log = logging.Component(log, "database")

	log.Info().Str("event", "db_migration_start").Str("status", "in_progress").Msg("ensuring schema")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().
				Str("event", "db_migration_failed").
				Str("status", "error").
				Str("migration_step", step.Name).
				Err(err).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Msg("schema step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Debug().
			Str("event", "db_migration_step").
			Str("status", "success").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Msg("schema step applied")
	}

	log.Info().
		Str("event", "db_migration_success").
		Str("status", "success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("schema ready")

	return nil
}
