package database

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanline/cruise-admin-backend/internal/models"
)

// mockDatabase adapts a sqlmock-backed connection to the DB interface
type mockDatabase struct {
	db *sqlx.DB
}

func (m *mockDatabase) Get(dest interface{}, query string, args ...interface{}) error {
	return m.db.Get(dest, query, args...)
}

func (m *mockDatabase) Select(dest interface{}, query string, args ...interface{}) error {
	return m.db.Select(dest, query, args...)
}

func (m *mockDatabase) Exec(query string, args ...interface{}) (sql.Result, error) {
	return m.db.Exec(query, args...)
}

func (m *mockDatabase) QueryRow(query string, args ...interface{}) *sql.Row {
	return m.db.QueryRow(query, args...)
}

func (m *mockDatabase) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return m.db.Query(query, args...)
}

func (m *mockDatabase) Ping() error  { return m.db.Ping() }
func (m *mockDatabase) Close() error { return m.db.Close() }

func newMockDB(t *testing.T) (*mockDatabase, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &mockDatabase{db: sqlx.NewDb(db, "sqlmock")}, mock
}

func TestAdminRepositoryGetByEmail(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewAdminRepository(mockDB)

		adminID := uuid.New()
		now := time.Now()
		mock.ExpectQuery(`SELECT (.+) FROM admins`).
			WithArgs("admin@cruise.com").
			WillReturnRows(sqlmock.NewRows(
				[]string{"id", "email", "password_hash", "last_login_at", "created_at", "updated_at"}).
				AddRow(adminID, "admin@cruise.com", "hashed", nil, now, now))

		admin, err := repo.GetByEmail("admin@cruise.com")
		require.NoError(t, err)
		require.NotNil(t, admin)
		assert.Equal(t, adminID, admin.ID)
		assert.Equal(t, "admin@cruise.com", admin.Email)
		assert.Nil(t, admin.LastLoginAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User Not Found", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewAdminRepository(mockDB)

		mock.ExpectQuery(`SELECT (.+) FROM admins`).
			WithArgs("missing@cruise.com").
			WillReturnError(sql.ErrNoRows)

		admin, err := repo.GetByEmail("missing@cruise.com")
		assert.NoError(t, err)
		assert.Nil(t, admin)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewAdminRepository(mockDB)

		mock.ExpectQuery(`SELECT (.+) FROM admins`).
			WithArgs("admin@cruise.com").
			WillReturnError(errors.New("connection refused"))

		admin, err := repo.GetByEmail("admin@cruise.com")
		assert.Error(t, err)
		assert.Nil(t, admin)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAdminRepositoryCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewAdminRepository(mockDB)

		now := time.Now()
		mock.ExpectQuery(`INSERT INTO admins`).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		admin := &models.Admin{Email: "admin@cruise.com", PasswordHash: "hashed"}
		err := repo.Create(admin)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, admin.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAdminRepositoryUpdatePassword(t *testing.T) {
	adminID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewAdminRepository(mockDB)

		mock.ExpectExec(`UPDATE admins SET password_hash`).
			WithArgs("newhash", adminID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdatePassword(adminID, "newhash"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User Not Found", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewAdminRepository(mockDB)

		mock.ExpectExec(`UPDATE admins SET password_hash`).
			WithArgs("newhash", adminID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdatePassword(adminID, "newhash"), sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAdminRepositoryGetRecentSessions(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewAdminRepository(mockDB)

		adminID := uuid.New()
		mock.ExpectQuery(`SELECT (.+) FROM admin_sessions`).
			WithArgs(adminID, 20).
			WillReturnRows(sqlmock.NewRows(
				[]string{"id", "admin_id", "ip_address", "device_type", "os", "browser", "user_agent", "created_at"}).
				AddRow(uuid.New(), adminID, "203.0.113.9", "Desktop", "Linux", "Firefox", "Mozilla/5.0", time.Now()).
				AddRow(uuid.New(), adminID, "203.0.113.9", "Mobile", "Android", "Chrome", "Mozilla/5.0", time.Now()))

		sessions, err := repo.GetRecentSessions(adminID, 20)
		require.NoError(t, err)
		assert.Len(t, sessions, 2)
		assert.Equal(t, "Desktop", sessions[0].DeviceType)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
