package remote

import (
	"context"
	"errors"
	"testing"

	"depot-planner/core/database"
	"depot-planner/feature/depot"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	s := NewGormStore(db, "")
	require.NoError(t, s.Migrate())
	return s
}

func TestGormStore_UpsertAndSelect(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, "u1", []depot.Record{{MaterialID: "B", Stock: 2}, {MaterialID: "A", Stock: 1}}))
	require.NoError(t, s.Upsert(ctx, "u1", []depot.Record{{MaterialID: "A", Stock: 7}}))
	require.NoError(t, s.Upsert(ctx, "u2", []depot.Record{{MaterialID: "A", Stock: 100}}))

	rows, err := s.Select(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []depot.Record{{MaterialID: "A", Stock: 7}, {MaterialID: "B", Stock: 2}}, rows)

	users, err := s.Users(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, users)
}

func TestGormStore_UpsertEmpty(t *testing.T) {
	s := setupStore(t)
	assert.NoError(t, s.Upsert(context.Background(), "u1", nil))
}

func TestGormStore_DeleteScopedByUser(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	require.NoError(t, s.Upsert(ctx, "u1", []depot.Record{{MaterialID: "Z", Stock: 1}, {MaterialID: "A", Stock: 1}}))
	require.NoError(t, s.Upsert(ctx, "u2", []depot.Record{{MaterialID: "Z", Stock: 5}}))

	require.NoError(t, s.Delete(ctx, "u1", []string{"Z"}))

	rows, err := s.Select(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []depot.Record{{MaterialID: "A", Stock: 1}}, rows)

	rows, err = s.Select(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, []depot.Record{{MaterialID: "Z", Stock: 5}}, rows, "other users keep their rows")

	assert.NoError(t, s.Delete(ctx, "u1", nil))
}

func TestGormStore_Verify(t *testing.T) {
	s := setupStore(t)
	assert.NoError(t, s.Verify())

	require.NoError(t, s.db.Exec("CREATE TABLE legacy_depot (material_id TEXT, stock INTEGER)").Error)
	err := NewGormStore(s.db, "legacy_depot").Verify()
	assert.ErrorContains(t, err, "user_id")
}

func TestGormStore_CustomTable(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	s := NewGormStore(db, "planner_depot")
	require.NoError(t, s.Migrate())

	require.NoError(t, s.Upsert(context.Background(), "u1", []depot.Record{{MaterialID: "A", Stock: 3}}))
	assert.True(t, db.Migrator().HasTable("planner_depot"))
}

func TestGormStore_Errors(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}),
		&gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	s := NewGormStore(db, "depot")
	ctx := context.Background()

	mock.ExpectQuery("SELECT \\* FROM `depot` WHERE user_id = \\?").
		WithArgs("u1").
		WillReturnError(errors.New("connection reset"))
	_, err = s.Select(ctx, "u1")
	assert.ErrorContains(t, err, "connection reset")

	mock.ExpectExec("INSERT INTO `depot`").
		WillReturnError(errors.New("deadlock"))
	err = s.Upsert(ctx, "u1", []depot.Record{{MaterialID: "A", Stock: 1}})
	assert.ErrorContains(t, err, "deadlock")

	mock.ExpectExec("DELETE FROM `depot` WHERE user_id = \\? AND material_id IN \\(\\?\\)").
		WithArgs("u1", "Z").
		WillReturnError(errors.New("lock wait timeout"))
	err = s.Delete(ctx, "u1", []string{"Z"})
	assert.ErrorContains(t, err, "lock wait timeout")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_ImplementsRemote(t *testing.T) {
	var _ depot.Remote = (*GormStore)(nil)
}
