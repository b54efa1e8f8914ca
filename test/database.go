package test

import (
	"path/filepath"
	"testing"

	"github.com/fund-split/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TmpFile returns the path of a new, not yet existing file in a directory
// that is removed when the test ends.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), uuid.NewString()+".db")
}

// Connect connects models.DB to a fresh sqlite database for the test.
// The connection is closed when the test ends.
func Connect(t *testing.T) {
	require.NoError(t, models.Connect(TmpFile(t)), "database initialization failed")

	db := models.DB
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
}

// CloseDB closes the connection of models.DB so that the handling of
// database errors can be tested.
func CloseDB(t *testing.T) {
	sqlDB, err := models.DB.DB()
	require.NoError(t, err, "database handle unavailable")
	require.NoError(t, sqlDB.Close())
}
