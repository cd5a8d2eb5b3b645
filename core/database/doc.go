// Package database handles database connections for the catalog.
//
// It provides a wrapper around GORM to configure MySQL connections (the
// production store) or SQLite (local runs and tests) from the application's
// configuration.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//	err = database.Migrate(db, &tags.Tag{}, &tags.MediaTag{})
package database
