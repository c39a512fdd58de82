package cmd

import (
	"errors"
	"testing"

	"depot-planner/core/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuntimeAbort_ClosesDatabase(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Ping())

	rt := &runtime{db: db}
	got, err := rt.abort(errors.New("missing columns"))

	assert.Nil(t, got)
	assert.EqualError(t, err, "missing columns")
	assert.Error(t, sqlDB.Ping(), "database handle is released")
}

func TestRuntimeAbort_WithoutDatabase(t *testing.T) {
	rt := &runtime{}
	got, err := rt.abort(errors.New("bad config"))

	assert.Nil(t, got)
	assert.EqualError(t, err, "bad config")
}
