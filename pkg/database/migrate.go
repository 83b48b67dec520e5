package database

import (
	"database/sql"
	"fmt"
	"os"
)

// Migrate applies the schema file at schemaPath (idempotent DDL).
func Migrate(db *sql.DB, schemaPath string) error {
	b, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", schemaPath, err)
	}

	if _, err := db.Exec(string(b)); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// DefaultSchemaPath is where the api-server and tools expect the DDL
// relative to the repo root.
const DefaultSchemaPath = "docs/schema.sql"
