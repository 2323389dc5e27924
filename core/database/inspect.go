package database

import (
	"fmt"

	"gorm.io/gorm"
)

// MissingTables reports which of the given tables are absent from the
// connected database, preserving input order.
func MissingTables(db *gorm.DB, tables []string) ([]string, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	var missing []string
	migrator := db.Migrator()
	for _, table := range tables {
		if !migrator.HasTable(table) {
			missing = append(missing, table)
		}
	}
	return missing, nil
}
