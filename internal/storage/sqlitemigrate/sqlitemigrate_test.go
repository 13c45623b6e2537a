package sqlitemigrate

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestUpSection(t *testing.T) {
	assert.Equal(t, "\nA;\n", UpSection("-- +migrate Up\nA;\n-- +migrate Down\nB;\n"))
	assert.Equal(t, "\nA;\n", UpSection("-- +migrate Up\nA;\n"))
	assert.Equal(t, "A;", UpSection("A;"))
}

func TestApply_RunsOnce(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	fsys := fstest.MapFS{
		"001_a.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE a (id TEXT);\nINSERT INTO a VALUES ('x');\n-- +migrate Down\nDROP TABLE a;\n")},
		"002_b.sql": {Data: []byte("CREATE TABLE b (id TEXT);")},
		"notes.txt": {Data: []byte("ignored")},
	}

	require.NoError(t, Apply(ctx, db, fsys, ""))
	require.NoError(t, Apply(ctx, db, fsys, "."))

	var rows int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM a`).Scan(&rows))
	assert.Equal(t, 1, rows)

	var applied int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied))
	assert.Equal(t, 2, applied)
}

func TestApply_RequiresDB(t *testing.T) {
	assert.Error(t, Apply(context.Background(), nil, fstest.MapFS{}, ""))
}
