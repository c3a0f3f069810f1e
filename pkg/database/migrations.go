package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express:
//   - one active stage row per (task, stage type); retried stages keep their
//     archived predecessors as history rows
//   - one active summary version per (task, summary type); regeneration
//     archives the previous version
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS taskstage_task_id_stage_type_active
		ON task_stages (task_id, stage_type)
		WHERE is_active`)
	if err != nil {
		return fmt.Errorf("failed to create active stage index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS summary_task_id_summary_type_active
		ON summaries (task_id, summary_type)
		WHERE is_active`)
	if err != nil {
		return fmt.Errorf("failed to create active summary index: %w", err)
	}

	return nil
}
