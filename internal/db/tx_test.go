package db

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	_, err = db.Exec(`CREATE TABLE prefs (id INTEGER PRIMARY KEY, theme TEXT)`)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM prefs`).Scan(&n))
	return n
}

func TestWithTx_Commits(t *testing.T) {
	db := setupTestDB(t)

	err := WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO prefs (theme) VALUES (?)`, "dark")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countRows(t, db))
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	boom := errors.New("boom")

	err := WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO prefs (theme) VALUES (?)`, "dark"); err != nil {
			return err
		}
		if _, err := tx.Exec(`INSERT INTO prefs (theme) VALUES (?)`, "light"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countRows(t, db))
}

func TestValue(t *testing.T) {
	assert.Equal(t, 42, Value(sql.Null[int]{V: 42, Valid: true}))
	assert.Zero(t, Value(sql.Null[int]{V: 42}))
	assert.Equal(t, "light", Value(sql.Null[string]{V: "light", Valid: true}))
	assert.Empty(t, Value(sql.Null[string]{V: "light"}))
}

func TestValue_ScansNull(t *testing.T) {
	db := setupTestDB(t)
	_, err := db.Exec(`INSERT INTO prefs (id, theme) VALUES (1, NULL)`)
	require.NoError(t, err)

	var theme sql.Null[string]
	require.NoError(t, db.QueryRow(`SELECT theme FROM prefs WHERE id = 1`).Scan(&theme))
	assert.False(t, theme.Valid)
	assert.Empty(t, Value(theme))
}
