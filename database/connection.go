// backend/database/connection.go
package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite" // pure-Go sqlite driver
)

var DB *sql.DB

// InitDB opens the boolder.db dataset read-only. The file ships with the app
// and is never written, so a single connection pool with no write
// configuration is all that is needed.
func InitDB(path string) error {
	var err error
	DB, err = sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", path, err)
	}

	if err = DB.Ping(); err != nil {
		DB.Close()
		return fmt.Errorf("failed to ping database %s: %w", path, err)
	}

	log.Printf("Database: Connected to %s (read-only).\n", path)
	return nil
}

// CloseDB closes the connection pool. Called on shutdown.
func CloseDB() {
	if DB != nil {
		DB.Close()
		log.Println("Database: Connection closed.")
	}
}
