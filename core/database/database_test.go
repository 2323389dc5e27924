package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "finaid",
			TimeoutSeconds: 1,
		}

		// Connect should fail (timeout or refused)
		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	// We cannot test a successful connection without a real database; the
	// probe behavior on a live connection is covered with sqlmock below.
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestMissingTables(t *testing.T) {
	t.Run("NilConnection", func(t *testing.T) {
		missing, err := MissingTables(nil, []string{"Users"})
		assert.Error(t, err)
		assert.Nil(t, missing)
	})

	// The mysql migrator resolves the current schema before counting, so
	// each HasTable call issues two queries.
	expectHasTable := func(mock sqlmock.Sqlmock, count int) {
		mock.ExpectQuery("SELECT DATABASE").
			WillReturnRows(sqlmock.NewRows([]string{"DATABASE()"}).AddRow("finaid"))
		mock.ExpectQuery("SELECT count").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
	}

	t.Run("AllPresent", func(t *testing.T) {
		db, mock := setupMockDB(t)
		expectHasTable(mock, 1)
		expectHasTable(mock, 1)

		missing, err := MissingTables(db, []string{"Users", "Documents"})
		require.NoError(t, err)
		assert.Empty(t, missing)
	})

	t.Run("OneMissing", func(t *testing.T) {
		db, mock := setupMockDB(t)
		expectHasTable(mock, 1)
		expectHasTable(mock, 0)

		missing, err := MissingTables(db, []string{"Users", "Documents"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Documents"}, missing)
	})
}
