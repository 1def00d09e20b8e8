package dbx

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS prefs (key TEXT PRIMARY KEY, value BLOB)`)
	require.NoError(t, err)
	return db
}

func TestIsNoRows(t *testing.T) {
	db := setupDB(t)
	var v []byte
	err := db.QueryRow(`SELECT value FROM prefs WHERE key = 'missing'`).Scan(&v)
	assert.True(t, IsNoRows(err))
	assert.True(t, IsNoRows(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsNoRows(errors.New("other")))
}
