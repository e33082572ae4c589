package migrations

import (
	"github.com/NeuralTrust/RiskGate/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20241002_create_security_events_table",
		Name: "Create security_events table",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS security_events (
					id                  UUID PRIMARY KEY,
					ip_address          TEXT NOT NULL,
					user_id             TEXT,
					event_type          TEXT NOT NULL,
					severity            TEXT NOT NULL CHECK (severity IN ('low', 'medium', 'high')),
					description         TEXT NOT NULL DEFAULT '',
					data                JSONB,
					requests_per_minute BIGINT NOT NULL DEFAULT 0,
					requests_per_hour   BIGINT NOT NULL DEFAULT 0,
					requests_per_day    BIGINT NOT NULL DEFAULT 0,
					bot_indicators      JSONB,
					timestamp           TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			// Alert deduplication looks up (event_type, user_id, timestamp).
			if err := db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_security_events_type_user_ts
				ON security_events (event_type, user_id, timestamp);
			`).Error; err != nil {
				return err
			}
			return db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_security_events_ts
				ON security_events (timestamp);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS security_events;`).Error
		},
	})
}
