package sqlite_test

import (
	"context"
	"testing"

	"lexdoc/sqlite"

	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory database for testing.
func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		// Verify tables exist by querying them
		ctx := context.Background()

		var docCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM documents").Scan(&docCount)
		require.NoError(t, err)

		var kwCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM document_keywords").Scan(&kwCount)
		require.NoError(t, err)

		var msgCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chat_messages").Scan(&msgCount)
		require.NoError(t, err)
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		err := db.Open()
		require.Error(t, err)
	})
}
