package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE depot (user_id TEXT, material_id TEXT, stock INTEGER)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "depot")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}
	assert.Equal(t, "text", colMap["material_id"])
	assert.Equal(t, "integer", colMap["stock"])

	// PRAGMA table_info returns an empty result for unknown tables
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE depot (material_id TEXT, stock INTEGER)").Error)

	missing, err := MissingColumns(db, "depot", "user_id", "material_id", "stock")
	assert.NoError(t, err)
	assert.Equal(t, []string{"user_id"}, missing)
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery("SHOW COLUMNS FROM `depot`").
		WillReturnRows(sqlmock.NewRows([]string{"Field", "Type"}).
			AddRow("MATERIAL_ID", "VARCHAR(64)").
			AddRow("stock", "BIGINT"))

	columns, err := GetTableColumns(db, "depot")
	assert.NoError(t, err)
	assert.Equal(t, []ColumnInfo{{Field: "material_id", Type: "varchar(64)"}, {Field: "stock", Type: "bigint"}}, columns)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTableColumns_NilDB(t *testing.T) {
	_, err := GetTableColumns(nil, "depot")
	assert.Error(t, err)
}
