package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdlib/internal/model"
	"mdlib/internal/repository"
)

func newDocumentStore(t *testing.T) (*DocumentStore, *FolderStore) {
	t.Helper()
	db := openTestDB(t)
	clock := newTestClock(time.Millisecond)
	return NewDocumentStore(db, WithClock(clock.now)),
		NewFolderStore(db, WithClock(clock.now))
}

func TestDocumentStore_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	store, folders := newDocumentStore(t)

	t.Run("round trip", func(t *testing.T) {
		doc, err := store.Create(ctx, "Notes", "# Hi", nil)
		require.NoError(t, err)
		assert.NotEmpty(t, doc.ID)
		assert.Equal(t, doc.CreatedAt, doc.UpdatedAt)
		assert.Nil(t, doc.FolderID)

		got, err := store.FindByID(ctx, doc.ID)
		require.NoError(t, err)
		if diff := cmp.Diff(doc, got); diff != "" {
			t.Fatalf("stored document mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty content", func(t *testing.T) {
		doc, err := store.Create(ctx, "Blank", "", nil)
		require.NoError(t, err)
		assert.Equal(t, "", doc.Content)
	})

	t.Run("in folder", func(t *testing.T) {
		f, err := folders.Create(ctx, "Work", nil)
		require.NoError(t, err)

		doc, err := store.Create(ctx, "Plan", "q3", &f.ID)
		require.NoError(t, err)

		got, err := store.FindByID(ctx, doc.ID)
		require.NoError(t, err)
		require.NotNil(t, got.FolderID)
		assert.Equal(t, f.ID, *got.FolderID)
	})

	t.Run("unknown folder", func(t *testing.T) {
		doc, err := store.Create(ctx, "Orphan", "", strPtr("missing-folder"))
		assert.ErrorIs(t, err, repository.ErrConstraintViolation)
		assert.Nil(t, doc)
	})

	t.Run("absent", func(t *testing.T) {
		got, err := store.FindByID(ctx, "missing")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestDocumentStore_GeneratedIDs(t *testing.T) {
	db := openTestDB(t)
	store := NewDocumentStore(db, WithIDGenerator(sequentialIDs("doc")))

	a, err := store.Create(context.Background(), "a", "", nil)
	require.NoError(t, err)
	b, err := store.Create(context.Background(), "b", "", nil)
	require.NoError(t, err)

	assert.Equal(t, "doc-001", a.ID)
	assert.Equal(t, "doc-002", b.ID)
}

func TestDocumentStore_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps other fields", func(t *testing.T) {
		store, _ := newDocumentStore(t)
		doc, err := store.Create(ctx, "Title", "body", nil)
		require.NoError(t, err)

		got, err := store.Update(ctx, doc.ID, model.DocumentPatch{Content: strPtr("new body")})
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.Equal(t, "Title", got.Title)
		assert.Equal(t, "new body", got.Content)
		assert.Equal(t, doc.CreatedAt, got.CreatedAt)
		assert.Greater(t, got.UpdatedAt, doc.UpdatedAt)

		stored, err := store.FindByID(ctx, doc.ID)
		require.NoError(t, err)
		if diff := cmp.Diff(got, stored); diff != "" {
			t.Fatalf("stored document mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("timestamp advances with a stopped clock", func(t *testing.T) {
		db := openTestDB(t)
		frozen := time.UnixMilli(1_700_000_000_000)
		store := NewDocumentStore(db, WithClock(func() time.Time { return frozen }))

		doc, err := store.Create(ctx, "t", "c", nil)
		require.NoError(t, err)

		first, err := store.Update(ctx, doc.ID, model.DocumentPatch{Title: strPtr("t2")})
		require.NoError(t, err)
		second, err := store.Update(ctx, doc.ID, model.DocumentPatch{Title: strPtr("t3")})
		require.NoError(t, err)

		assert.Equal(t, doc.UpdatedAt+1, first.UpdatedAt)
		assert.Equal(t, doc.UpdatedAt+2, second.UpdatedAt)
	})

	t.Run("empty patch is a read", func(t *testing.T) {
		store, _ := newDocumentStore(t)
		doc, err := store.Create(ctx, "Title", "body", nil)
		require.NoError(t, err)

		got, err := store.Update(ctx, doc.ID, model.DocumentPatch{})
		require.NoError(t, err)
		if diff := cmp.Diff(doc, got); diff != "" {
			t.Fatalf("empty patch changed the document (-want +got):\n%s", diff)
		}
	})

	t.Run("move and unfile", func(t *testing.T) {
		store, folders := newDocumentStore(t)
		f, err := folders.Create(ctx, "Inbox", nil)
		require.NoError(t, err)
		doc, err := store.Create(ctx, "Title", "body", nil)
		require.NoError(t, err)

		moved, err := store.Update(ctx, doc.ID, model.DocumentPatch{FolderID: model.Some(f.ID)})
		require.NoError(t, err)
		require.NotNil(t, moved.FolderID)
		assert.Equal(t, f.ID, *moved.FolderID)

		unfiled, err := store.Update(ctx, doc.ID, model.DocumentPatch{FolderID: model.Null()})
		require.NoError(t, err)
		assert.Nil(t, unfiled.FolderID)
		assert.Equal(t, "Title", unfiled.Title)
	})

	t.Run("unknown folder", func(t *testing.T) {
		store, _ := newDocumentStore(t)
		doc, err := store.Create(ctx, "Title", "body", nil)
		require.NoError(t, err)

		got, err := store.Update(ctx, doc.ID, model.DocumentPatch{FolderID: model.Some("nope")})
		assert.ErrorIs(t, err, repository.ErrConstraintViolation)
		assert.Nil(t, got)

		stored, err := store.FindByID(ctx, doc.ID)
		require.NoError(t, err)
		assert.Equal(t, doc.UpdatedAt, stored.UpdatedAt)
	})

	t.Run("absent", func(t *testing.T) {
		store, _ := newDocumentStore(t)
		got, err := store.Update(ctx, "missing", model.DocumentPatch{Title: strPtr("x")})
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestDocumentStore_Delete(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	store := NewDocumentStore(db)
	tags := NewTagStore(db)

	doc, err := store.Create(ctx, "Doomed", "searchable words", nil)
	require.NoError(t, err)
	tag, err := tags.Create(ctx, "todo", nil)
	require.NoError(t, err)
	require.NoError(t, tags.Attach(ctx, doc.ID, tag.ID))

	deleted, err := store.Delete(ctx, doc.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := store.FindByID(ctx, doc.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	hits, err := store.Search(ctx, "searchable")
	require.NoError(t, err)
	assert.Empty(t, hits)

	var links int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM document_tags`).Scan(&links))
	assert.Zero(t, links)

	deleted, err = store.Delete(ctx, doc.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDocumentStore_ListOrder(t *testing.T) {
	ctx := context.Background()
	store, _ := newDocumentStore(t)

	empty, err := store.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	a, err := store.Create(ctx, "a", "", nil)
	require.NoError(t, err)
	b, err := store.Create(ctx, "b", "", nil)
	require.NoError(t, err)
	c, err := store.Create(ctx, "c", "", nil)
	require.NoError(t, err)

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{c.ID, b.ID, a.ID}, documentIDs(all))

	_, err = store.Update(ctx, a.ID, model.DocumentPatch{Content: strPtr("touched")})
	require.NoError(t, err)

	all, err = store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID, c.ID, b.ID}, documentIDs(all))
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i-1].UpdatedAt, all[i].UpdatedAt)
	}
}

func TestDocumentStore_ListByFolder(t *testing.T) {
	ctx := context.Background()
	store, folders := newDocumentStore(t)

	work, err := folders.Create(ctx, "Work", nil)
	require.NoError(t, err)
	home, err := folders.Create(ctx, "Home", nil)
	require.NoError(t, err)

	loose, err := store.Create(ctx, "loose", "", nil)
	require.NoError(t, err)
	w1, err := store.Create(ctx, "w1", "", &work.ID)
	require.NoError(t, err)
	w2, err := store.Create(ctx, "w2", "", &work.ID)
	require.NoError(t, err)
	_, err = store.Create(ctx, "h1", "", &home.ID)
	require.NoError(t, err)

	unfiled, err := store.ListByFolder(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{loose.ID}, documentIDs(unfiled))

	inWork, err := store.ListByFolder(ctx, &work.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{w2.ID, w1.ID}, documentIDs(inWork))

	none, err := store.ListByFolder(ctx, strPtr("unknown"))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDocumentStore_Search(t *testing.T) {
	ctx := context.Background()
	store, _ := newDocumentStore(t)

	strong, err := store.Create(ctx, "Apple pie", "apple apple apple", nil)
	require.NoError(t, err)
	weak, err := store.Create(ctx, "Fruit salad",
		"banana cherry grape melon apple kiwi mango orange pear plum peach lime lemon", nil)
	require.NoError(t, err)
	other, err := store.Create(ctx, "Vegetables", "carrot leek onion", nil)
	require.NoError(t, err)

	t.Run("ranked by relevance", func(t *testing.T) {
		hits, err := store.Search(ctx, "apple")
		require.NoError(t, err)
		assert.Equal(t, []string{strong.ID, weak.ID}, documentIDs(hits))
	})

	t.Run("tokens are ANDed", func(t *testing.T) {
		hits, err := store.Search(ctx, "apple banana")
		require.NoError(t, err)
		assert.Equal(t, []string{weak.ID}, documentIDs(hits))
	})

	t.Run("prefix", func(t *testing.T) {
		hits, err := store.Search(ctx, "carr*")
		require.NoError(t, err)
		assert.Equal(t, []string{other.ID}, documentIDs(hits))
	})

	t.Run("title only", func(t *testing.T) {
		hits, err := store.Search(ctx, "vegetables")
		require.NoError(t, err)
		assert.Equal(t, []string{other.ID}, documentIDs(hits))
	})

	t.Run("no hits", func(t *testing.T) {
		hits, err := store.Search(ctx, "zucchini")
		require.NoError(t, err)
		assert.NotNil(t, hits)
		assert.Empty(t, hits)
	})

	t.Run("follows updates", func(t *testing.T) {
		_, err := store.Update(ctx, other.ID, model.DocumentPatch{Content: strPtr("potato")})
		require.NoError(t, err)

		stale, err := store.Search(ctx, "carrot")
		require.NoError(t, err)
		assert.Empty(t, stale)

		fresh, err := store.Search(ctx, "potato")
		require.NoError(t, err)
		assert.Equal(t, []string{other.ID}, documentIDs(fresh))
	})

	t.Run("syntax error", func(t *testing.T) {
		hits, err := store.Search(ctx, `"unterminated`)
		assert.ErrorIs(t, err, repository.ErrInvalidQuery)
		assert.Nil(t, hits)
	})
}

func TestDocumentStore_Reindex(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	store := NewDocumentStore(db)

	doc, err := store.Create(ctx, "Recovered", "needle in the haystack", nil)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO documents_fts (documents_fts) VALUES ('delete-all')`)
	require.NoError(t, err)

	lost, err := store.Search(ctx, "needle")
	require.NoError(t, err)
	assert.Empty(t, lost)

	require.NoError(t, store.Reindex(ctx))

	found, err := store.Search(ctx, "needle")
	require.NoError(t, err)
	assert.Equal(t, []string{doc.ID}, documentIDs(found))
}

func TestDocumentStore_Scenario(t *testing.T) {
	ctx := context.Background()
	store, _ := newDocumentStore(t)

	doc, err := store.Create(ctx, "Notes", "# Hi", nil)
	require.NoError(t, err)

	all, err := store.List(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff([]model.Document{*doc}, all); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	_, err = store.Update(ctx, doc.ID, model.DocumentPatch{Content: strPtr("# Hi there")})
	require.NoError(t, err)

	hits, err := store.Search(ctx, "there")
	require.NoError(t, err)
	assert.Equal(t, []string{doc.ID}, documentIDs(hits))

	deleted, err := store.Delete(ctx, doc.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	all, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDocumentStore_DriverFailures(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewDocumentStore(db)

	t.Run("list query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents ORDER BY").WillReturnError(errors.New("disk I/O error"))

		docs, err := store.List(ctx)
		assert.ErrorContains(t, err, "list documents: disk I/O error")
		assert.Nil(t, docs)
	})

	t.Run("find scan error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("x").
			WillReturnError(errors.New("boom"))

		doc, err := store.FindByID(ctx, "x")
		assert.ErrorContains(t, err, "find document: boom")
		assert.Nil(t, doc)
	})

	t.Run("update rolls back on write error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("x").
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "folder_id", "created_at", "updated_at"}).
				AddRow("x", "t", "c", nil, int64(1), int64(1)))
		mock.ExpectExec("UPDATE documents").WillReturnError(errors.New("database is locked"))
		mock.ExpectRollback()

		doc, err := store.Update(ctx, "x", model.DocumentPatch{Title: strPtr("t2")})
		assert.ErrorContains(t, err, "update document: database is locked")
		assert.NotErrorIs(t, err, repository.ErrConstraintViolation)
		assert.Nil(t, doc)
	})

	t.Run("update begin error", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("busy"))

		doc, err := store.Update(ctx, "x", model.DocumentPatch{Title: strPtr("t2")})
		assert.ErrorContains(t, err, "begin txn: busy")
		assert.Nil(t, doc)
	})

	t.Run("search driver error is not a query error", func(t *testing.T) {
		mock.ExpectQuery("FROM documents_fts").
			WithArgs("x").
			WillReturnError(errors.New("disk I/O error"))

		docs, err := store.Search(ctx, "x")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrInvalidQuery)
		assert.Nil(t, docs)
	})

	t.Run("delete error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM documents").WithArgs("x").WillReturnError(errors.New("readonly"))

		deleted, err := store.Delete(ctx, "x")
		assert.ErrorContains(t, err, "delete document: readonly")
		assert.False(t, deleted)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
