package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path)
	require.NoError(t, err)

	return j, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name = 'calculations'`).Scan(&name)
	assert.NoError(t, err)
	assert.Equal(t, "calculations", name)
}

func TestSQLiteRecordCalculation(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)

	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	rec := testRecord(t, "C1", at)
	assert.NoError(t, j.RecordCalculation(rec))
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var (
		id        string
		created   time.Time
		kind      string
		direction string
		posUSD    float64
		profit    float64
		report    string
	)
	err = db.QueryRow(`
		SELECT id, created_at, kind, direction, position_size_usd, total_profit, report
		FROM calculations LIMIT 1`).Scan(&id, &created, &kind, &direction, &posUSD, &profit, &report)
	require.NoError(t, err)

	assert.Equal(t, "C1", id)
	assert.True(t, created.Equal(at))
	assert.Equal(t, "profit", kind)
	assert.Equal(t, "Long", direction)
	assert.InDelta(t, 4000.0, posUSD, 1e-6)
	assert.InDelta(t, 300.0, profit, 1e-6)
	assert.Equal(t, rec.Report, report)
}

func TestSQLiteDuplicateID(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, j.RecordCalculation(testRecord(t, "DUP", at)))
	assert.Error(t, j.RecordCalculation(testRecord(t, "DUP", at)))
}
