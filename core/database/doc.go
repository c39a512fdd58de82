// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL, PostgreSQL or SQLite connections from the application
// configuration. PostgreSQL is the default since the hosted depot tables live there; SQLite
// backs tests and single-user installs.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns let stores verify that a table carries the columns they
// write before serving requests.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "depot", "user_id", "material_id", "stock")
package database
