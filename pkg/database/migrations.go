package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express.
//
// Manual tasks are deduplicated per originating condition: repeated triggers
// for the same (source_system, source_id) must collapse to a single open
// record. Resolved records are excluded so the condition can reopen later.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS manualtask_source_open
		ON manual_tasks (source_system, source_id)
		WHERE status = 'open'`)
	if err != nil {
		return fmt.Errorf("failed to create open manual task index: %w", err)
	}

	return nil
}
