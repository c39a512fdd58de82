// Package remote stores depot rows in a SQL table through gorm.
//
// Rows are keyed by (user_id, material_id). Every query is scoped by user, so
// one table serves every planner account. Postgres, MySQL and SQLite are
// supported through core/database.
package remote
