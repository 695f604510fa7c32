// Package migration applies the documents schema on first boot. The
// documents table doubles as the sentinel: when it already exists the
// whole run is skipped, so every statement must be safe to re-apply.
package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE IF NOT EXISTS documents (
  id          UUID        PRIMARY KEY,
  envelope_id UUID        NOT NULL UNIQUE,
  share_link  TEXT,
  status      TEXT        NOT NULL,
  created_by  TEXT        NOT NULL,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  payload     JSONB       NOT NULL
);`,
	},
	{
		Name: "create_index_documents_share_link",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_documents_share_link ON documents (share_link) WHERE share_link IS NOT NULL;`,
	},
	{
		Name: "create_index_documents_created_by",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_created_by ON documents (created_by);`,
	},
	{
		Name: "create_index_documents_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_status ON documents (status);`,
	},
	{
		Name: "create_index_documents_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_created_at ON documents (created_at);`,
	},
}

// EnsureMigrated applies the schema steps unless the documents table
// already exists.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()
	logStep := func(event, status string, extra map[string]any) {
		entry := map[string]any{
			"component":   "database",
			"event":       event,
			"status":      status,
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		}
		for k, v := range extra {
			entry[k] = v
		}
		logJSON(loc, entry)
	}

	logStep("db_migration_check", "starting", nil)

	var exists bool
	err := db.QueryRowContext(ctx, "SELECT to_regclass('public.documents') IS NOT NULL").Scan(&exists)
	if err != nil {
		logStep("db_migration_failed", "error", map[string]any{"error_message": err.Error()})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}
	if exists {
		logStep("db_migration_skip", "success", map[string]any{"msg": "schema already exists, skipping migration"})
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			logStep("db_migration_failed", "error", map[string]any{
				"migration_step": step.Name,
				"error_message":  err.Error(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		logStep("db_migration_step", "success", map[string]any{
			"migration_step":   step.Name,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logStep("db_migration_success", "success", nil)
	return nil
}

// logJSON emits one JSON line matching the request logger's shape.
func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
